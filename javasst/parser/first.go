package parser

import "github.com/dhamidi/sst/javasst/token"

// Rule identifies a grammar production.
type Rule int

const (
	RuleClass Rule = iota
	RuleClassBody
	RuleDeclarations
	RuleConstant
	RuleVariableDeclaration
	RuleMethodDeclaration
	RuleMethodHead
	RuleMethodType
	RuleFormalParameters
	RuleFPSection
	RuleLocalDeclaration
	RuleType
	RuleStatementSequence
	RuleStatement
	RuleAssignment
	RuleProcedureCall
	RuleInternProcedureCall
	RuleIfStatement
	RuleWhileStatement
	RuleReturnStatement
	RuleActualParameters
	RuleExpression
	RuleSimpleExpression
	RuleTerm
	RuleFactor

	ruleCount
)

var ruleNames = [...]string{
	RuleClass:               "Class",
	RuleClassBody:           "ClassBody",
	RuleDeclarations:        "Declarations",
	RuleConstant:            "Constant",
	RuleVariableDeclaration: "VariableDeclaration",
	RuleMethodDeclaration:   "MethodDeclaration",
	RuleMethodHead:          "MethodHead",
	RuleMethodType:          "MethodType",
	RuleFormalParameters:    "FormalParameters",
	RuleFPSection:           "FPSection",
	RuleLocalDeclaration:    "LocalDeclaration",
	RuleType:                "Type",
	RuleStatementSequence:   "StatementSequence",
	RuleStatement:           "Statement",
	RuleAssignment:          "Assignment",
	RuleProcedureCall:       "ProcedureCall",
	RuleInternProcedureCall: "InternProcedureCall",
	RuleIfStatement:         "IfStatement",
	RuleWhileStatement:      "WhileStatement",
	RuleReturnStatement:     "ReturnStatement",
	RuleActualParameters:    "ActualParameters",
	RuleExpression:          "Expression",
	RuleSimpleExpression:    "SimpleExpression",
	RuleTerm:                "Term",
	RuleFactor:              "Factor",
}

func (r Rule) String() string {
	if r >= 0 && r < ruleCount {
		return ruleNames[r]
	}
	return "Unknown"
}

var firstSets [ruleCount]token.Set

func init() {
	for r := Rule(0); r < ruleCount; r++ {
		firstSets[r] = deriveFirst(r)
	}
}

// First returns the token kinds that can begin r.
func First(r Rule) token.Set {
	if r < 0 || r >= ruleCount {
		return 0
	}
	return firstSets[r]
}

// deriveFirst defines each set in terms of the rules it starts with. The
// grammar has no left recursion, so the recursion bottoms out at tokens.
func deriveFirst(r Rule) token.Set {
	switch r {
	case RuleClass:
		return token.NewSet(token.Class)
	case RuleClassBody:
		return token.NewSet(token.LBrace)
	case RuleDeclarations:
		return deriveFirst(RuleConstant).
			Union(deriveFirst(RuleVariableDeclaration)).
			Union(deriveFirst(RuleMethodDeclaration))
	case RuleConstant:
		return token.NewSet(token.Final)
	case RuleVariableDeclaration, RuleLocalDeclaration, RuleFPSection:
		return deriveFirst(RuleType)
	case RuleMethodDeclaration:
		return deriveFirst(RuleMethodHead)
	case RuleMethodHead:
		return token.NewSet(token.Public)
	case RuleMethodType:
		return token.NewSet(token.Void, token.Int)
	case RuleFormalParameters, RuleActualParameters:
		return token.NewSet(token.LParen)
	case RuleType:
		return token.NewSet(token.Int)
	case RuleStatementSequence:
		return deriveFirst(RuleStatement)
	case RuleStatement:
		return deriveFirst(RuleAssignment).
			Union(deriveFirst(RuleProcedureCall)).
			Union(deriveFirst(RuleIfStatement)).
			Union(deriveFirst(RuleWhileStatement)).
			Union(deriveFirst(RuleReturnStatement))
	case RuleAssignment:
		return token.NewSet(token.Ident)
	case RuleProcedureCall:
		return deriveFirst(RuleInternProcedureCall)
	case RuleInternProcedureCall:
		return token.NewSet(token.Ident)
	case RuleIfStatement:
		return token.NewSet(token.If)
	case RuleWhileStatement:
		return token.NewSet(token.While)
	case RuleReturnStatement:
		return token.NewSet(token.Return)
	case RuleExpression:
		return deriveFirst(RuleSimpleExpression)
	case RuleSimpleExpression:
		return deriveFirst(RuleTerm)
	case RuleTerm:
		return deriveFirst(RuleFactor)
	case RuleFactor:
		return token.NewSet(token.Ident, token.Number, token.LParen).
			Union(deriveFirst(RuleInternProcedureCall))
	}
	return 0
}
