// Package token defines the lexical vocabulary of Java SST, the small
// Java-like language accepted by the parser.
package token

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Line == 0 {
		if p.File != "" {
			return p.File
		}
		return "-"
	}
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type Kind int

const (
	EOF Kind = iota
	Illegal

	Ident
	Number

	// Keywords
	Class
	Public
	Final
	Void
	Int
	If
	Else
	While
	Return

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	Semicolon
	Comma

	// Operators
	Assign
	EQ
	LT
	LE
	GT
	GE
	Plus
	Minus
	Star
	Slash

	kindCount
)

var kindNames = [...]string{
	EOF:       "EOF",
	Illegal:   "Illegal",
	Ident:     "Identifier",
	Number:    "Number",
	Class:     "class",
	Public:    "public",
	Final:     "final",
	Void:      "void",
	Int:       "int",
	If:        "if",
	Else:      "else",
	While:     "while",
	Return:    "return",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Semicolon: ";",
	Comma:     ",",
	Assign:    "=",
	EQ:        "==",
	LT:        "<",
	LE:        "<=",
	GT:        ">",
	GE:        ">=",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

var keywords = map[string]Kind{
	"class":  Class,
	"public": Public,
	"final":  Final,
	"void":   Void,
	"int":    Int,
	"if":     If,
	"else":   Else,
	"while":  While,
	"return": Return,
}

var literals = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := Class; k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// Lookup returns the keyword, punctuation or operator kind spelled text.
func Lookup(text string) (Kind, bool) {
	k, ok := literals[text]
	return k, ok
}

// LookupKeyword returns the keyword kind for ident, or Ident.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}

// Token is an immutable classified lexeme. Literal holds the source text
// for identifiers, numbers and illegal input.
type Token struct {
	Kind    Kind
	Span    Span
	Literal string
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Number, Illegal:
		return fmt.Sprintf("%s %q", t.Kind, t.Literal)
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("%q", t.Kind.String())
}
