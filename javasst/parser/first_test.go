package parser

import (
	"testing"

	"github.com/dhamidi/sst/javasst/token"
)

func TestFirstSets(t *testing.T) {
	tests := []struct {
		rule Rule
		want token.Set
	}{
		{RuleClass, token.NewSet(token.Class)},
		{RuleDeclarations, token.NewSet(token.Final, token.Int, token.Public)},
		{RuleVariableDeclaration, token.NewSet(token.Int)},
		{RuleMethodDeclaration, token.NewSet(token.Public)},
		{RuleMethodType, token.NewSet(token.Void, token.Int)},
		{RuleFPSection, token.NewSet(token.Int)},
		{RuleLocalDeclaration, token.NewSet(token.Int)},
		{RuleStatement, token.NewSet(token.Ident, token.If, token.While, token.Return)},
		{RuleStatementSequence, token.NewSet(token.Ident, token.If, token.While, token.Return)},
		{RuleProcedureCall, token.NewSet(token.Ident)},
		{RuleExpression, token.NewSet(token.Ident, token.Number, token.LParen)},
		{RuleSimpleExpression, token.NewSet(token.Ident, token.Number, token.LParen)},
		{RuleFactor, token.NewSet(token.Ident, token.Number, token.LParen)},
		{RuleActualParameters, token.NewSet(token.LParen)},
	}

	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			if got := First(tt.rule); got != tt.want {
				t.Errorf("First(%v) = %v, want %v", tt.rule, got, tt.want)
			}
		})
	}
}

func TestEveryRuleHasAFirstSet(t *testing.T) {
	for r := Rule(0); r < ruleCount; r++ {
		if First(r).IsEmpty() {
			t.Errorf("First(%v) is empty", r)
		}
		if r.String() == "Unknown" {
			t.Errorf("rule %d has no name", r)
		}
	}
	if !First(ruleCount).IsEmpty() {
		t.Error("out of range rule has a FIRST set")
	}
}

// Optional and repeated constructs must be distinguishable from what follows
// them with one token of lookahead.
func TestRepetitionsAreDeterministic(t *testing.T) {
	tests := []struct {
		name   string
		rule   token.Set
		follow token.Set
	}{
		{"constants", First(RuleConstant), First(RuleVariableDeclaration).Union(First(RuleMethodDeclaration)).Union(token.NewSet(token.RBrace))},
		{"fields", First(RuleVariableDeclaration), First(RuleMethodDeclaration).Union(token.NewSet(token.RBrace))},
		{"methods", First(RuleMethodDeclaration), token.NewSet(token.RBrace)},
		{"locals", First(RuleLocalDeclaration), First(RuleStatement).Union(token.NewSet(token.RBrace))},
		{"statements", First(RuleStatement), token.NewSet(token.RBrace)},
		{"return value", First(RuleSimpleExpression), token.NewSet(token.Semicolon)},
		{"parameters", First(RuleFPSection), token.NewSet(token.RParen)},
		{"arguments", First(RuleExpression), token.NewSet(token.RParen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if overlap := tt.rule & tt.follow; !overlap.IsEmpty() {
				t.Errorf("FIRST and FOLLOW share %v", overlap)
			}
		})
	}
}
