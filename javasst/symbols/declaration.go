package symbols

import "github.com/dhamidi/sst/javasst/token"

type Kind int

const (
	KindClass Kind = iota
	KindProcedure
	KindVariable
	KindConstant
)

var kindNames = map[Kind]string{
	KindClass:     "class",
	KindProcedure: "procedure",
	KindVariable:  "variable",
	KindConstant:  "constant",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Type is the static type of a variable, constant or procedure result.
type Type int

const (
	TypeVoid Type = iota
	TypeInt
)

func (t Type) String() string {
	if t == TypeInt {
		return "int"
	}
	return "void"
}

// Declaration is a named entity recorded in a scope. It is implemented by
// *Class, *Procedure, *Variable and *Constant only.
type Declaration interface {
	Name() string
	Kind() Kind
	Pos() token.Position
	declaration()
}

type decl struct {
	name string
	pos  token.Position
}

func (d decl) Name() string { return d.name }

func (d decl) Pos() token.Position { return d.pos }

func (decl) declaration() {}

type Class struct {
	decl
}

func NewClass(name string, pos token.Position) *Class {
	return &Class{decl{name, pos}}
}

func (*Class) Kind() Kind { return KindClass }

type Variable struct {
	decl
	Type      Type
	Parameter bool
}

func NewVariable(name string, pos token.Position, typ Type) *Variable {
	return &Variable{decl: decl{name, pos}, Type: typ}
}

func NewParameter(name string, pos token.Position, typ Type) *Variable {
	return &Variable{decl: decl{name, pos}, Type: typ, Parameter: true}
}

func (*Variable) Kind() Kind { return KindVariable }

// Constant is a final field. When Evaluated is false the initializer could
// not be folded at parse time and Value is meaningless until a later pass
// resolves it.
type Constant struct {
	decl
	Type      Type
	Value     int32
	Evaluated bool
}

func NewConstant(name string, pos token.Position, typ Type) *Constant {
	return &Constant{decl: decl{name, pos}, Type: typ}
}

func (*Constant) Kind() Kind { return KindConstant }

type Procedure struct {
	decl
	Params []*Variable
	Result Type
}

func NewProcedure(name string, pos token.Position, result Type, params []*Variable) *Procedure {
	return &Procedure{decl: decl{name, pos}, Params: params, Result: result}
}

func (*Procedure) Kind() Kind { return KindProcedure }
