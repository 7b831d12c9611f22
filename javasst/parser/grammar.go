package parser

import (
	"bytes"
	_ "embed"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/sst/javasst/token"
	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var grammarSource []byte

// GrammarSource returns the EBNF text of the grammar. Its productions are
// named after the Rule values.
func GrammarSource() []byte {
	return bytes.Clone(grammarSource)
}

// Grammar parses and verifies the grammar, starting at Class.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", bytes.NewReader(grammarSource))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, RuleClass.String()); err != nil {
		return nil, err
	}
	return g, nil
}

// lexical token productions the scanner produces directly
var lexicalKinds = map[string]token.Kind{
	"ident":  token.Ident,
	"number": token.Number,
}

// GrammarFirst computes the FIRST set of every syntactic production of g.
func GrammarFirst(g ebnf.Grammar) (map[string]token.Set, error) {
	first := make(map[string]token.Set)
	nullable := make(map[string]bool)
	var err error

	var visit func(ebnf.Expression) (token.Set, bool)
	visit = func(expr ebnf.Expression) (token.Set, bool) {
		switch x := expr.(type) {
		case nil:
			return 0, true
		case *ebnf.Token:
			k, ok := token.Lookup(x.String)
			if !ok && err == nil {
				err = fmt.Errorf("%s: no token kind for %q", x.Pos(), x.String)
			}
			return token.NewSet(k), false
		case *ebnf.Name:
			if k, ok := lexicalKinds[x.String]; ok {
				return token.NewSet(k), false
			}
			return first[x.String], nullable[x.String]
		case ebnf.Sequence:
			var s token.Set
			for _, e := range x {
				f, n := visit(e)
				s = s.Union(f)
				if !n {
					return s, false
				}
			}
			return s, true
		case ebnf.Alternative:
			var s token.Set
			empty := false
			for _, e := range x {
				f, n := visit(e)
				s = s.Union(f)
				empty = empty || n
			}
			return s, empty
		case *ebnf.Group:
			return visit(x.Body)
		case *ebnf.Option:
			s, _ := visit(x.Body)
			return s, true
		case *ebnf.Repetition:
			s, _ := visit(x.Body)
			return s, true
		}
		if err == nil {
			err = fmt.Errorf("%s: unexpected %T in syntactic production", expr.Pos(), expr)
		}
		return 0, false
	}

	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if isLexical(name) {
				continue
			}
			s, n := visit(prod.Expr)
			if s != first[name] || n != nullable[name] {
				first[name], nullable[name] = s, n
				changed = true
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return first, nil
}

func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r)
}
