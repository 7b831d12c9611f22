// Package symbols implements the lexically scoped symbol table filled in by
// the parser.
//
// Scopes form a chain through their Parent links. A scope holds no links to
// its children, so once the parser leaves a method, if or while body that
// scope is unreachable from the class scope.
package symbols

import (
	"errors"
	"fmt"
)

type ScopeKind int

const (
	ScopeClass ScopeKind = iota
	ScopeMethod
	ScopeIf
	ScopeWhile
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeClass:
		return "class"
	case ScopeMethod:
		return "method"
	case ScopeIf:
		return "if"
	case ScopeWhile:
		return "while"
	}
	return "unknown"
}

// ErrDuplicateDeclaration is matched by every *DuplicateDeclarationError.
var ErrDuplicateDeclaration = errors.New("duplicate declaration")

type DuplicateDeclarationError struct {
	Previous  Declaration
	Duplicate Declaration
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("%s: %s %q already declared at %s",
		e.Duplicate.Pos(), e.Duplicate.Kind(), e.Duplicate.Name(), e.Previous.Pos())
}

func (e *DuplicateDeclarationError) Is(target error) bool {
	return target == ErrDuplicateDeclaration
}

type Scope struct {
	Kind   ScopeKind
	Parent *Scope

	head  Declaration
	names map[string]Declaration
	order []Declaration
}

func NewScope(kind ScopeKind, parent *Scope) *Scope {
	return &Scope{
		Kind:   kind,
		Parent: parent,
		names:  make(map[string]Declaration),
	}
}

// Head returns the declaration that opened the scope, if any.
func (s *Scope) Head() Declaration {
	return s.head
}

// SetHead binds the scope-defining declaration. The head is not a member:
// Lookup does not find it.
func (s *Scope) SetHead(d Declaration) {
	s.head = d
}

// Insert adds d to this scope. A second declaration with the same name in
// the same scope is rejected; shadowing a name of an enclosing scope is not.
func (s *Scope) Insert(d Declaration) error {
	if prev, ok := s.names[d.Name()]; ok {
		return &DuplicateDeclarationError{Previous: prev, Duplicate: d}
	}
	s.names[d.Name()] = d
	s.order = append(s.order, d)
	return nil
}

// LookupLocal searches this scope only.
func (s *Scope) LookupLocal(name string) (Declaration, bool) {
	d, ok := s.names[name]
	return d, ok
}

// Lookup searches this scope and then its parents.
func (s *Scope) Lookup(name string) (Declaration, bool) {
	return Lookup(name, s)
}

// Declarations returns the members in insertion order.
func (s *Scope) Declarations() []Declaration {
	return append([]Declaration(nil), s.order...)
}

func (s *Scope) Len() int {
	return len(s.order)
}

// Lookup resolves name starting at from and walking outwards, returning the
// nearest enclosing declaration.
func Lookup(name string, from *Scope) (Declaration, bool) {
	for scope := from; scope != nil; scope = scope.Parent {
		if d, ok := scope.names[name]; ok {
			return d, true
		}
	}
	return nil, false
}
