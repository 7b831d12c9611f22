package parser

import (
	"github.com/dhamidi/sst/javasst/symbols"
	"github.com/dhamidi/sst/javasst/token"
	"github.com/tliron/commonlog"
)

func (p *Parser) statementSequence() error {
	p.enter(RuleStatementSequence)
	return p.in(RuleStatement).Repeat(p.statement)
}

func (p *Parser) statement() error {
	p.enter(RuleStatement)
	switch k := p.tok.Kind; {
	case k == token.Ident:
		return p.assignmentOrCall()
	case First(RuleIfStatement).Contains(k):
		return p.ifStatement()
	case First(RuleWhileStatement).Contains(k):
		return p.whileStatement()
	case First(RuleReturnStatement).Contains(k):
		return p.returnStatement()
	}
	return p.fail(token.NewSet(token.Ident, token.If, token.While, token.Return))
}

// assignmentOrCall decides on the token after the identifier.
func (p *Parser) assignmentOrCall() error {
	name, err := p.is(token.Ident).Capture()
	if err != nil {
		return err
	}

	switch p.tok.Kind {
	case token.LParen:
		p.enter(RuleProcedureCall)
		if err := p.internProcedureCall(name); err != nil {
			return err
		}
	case token.Assign:
		p.enter(RuleAssignment)
		if err := p.is(token.Assign).Once(); err != nil {
			return err
		}
		if _, err := p.expression(); err != nil {
			return err
		}
	default:
		return p.fail(token.NewSet(token.LParen, token.Assign))
	}
	return p.is(token.Semicolon).Once()
}

// internProcedureCall parses the argument list of a call to name, whose
// identifier has already been consumed.
func (p *Parser) internProcedureCall(name token.Token) error {
	p.enter(RuleInternProcedureCall)
	if p.log.AllowLevel(commonlog.Debug) {
		p.log.Debugf("%s: call %s", name.Span.Start, name.Literal)
	}
	return p.actualParameters()
}

func (p *Parser) ifStatement() error {
	p.enter(RuleIfStatement)
	return p.scope(symbols.ScopeIf, func(*symbols.Scope) error {
		if err := p.is(token.If).Once(); err != nil {
			return err
		}
		if err := p.condition(); err != nil {
			return err
		}
		if err := p.block(); err != nil {
			return err
		}
		if err := p.is(token.Else).Once(); err != nil {
			return err
		}
		return p.block()
	})
}

func (p *Parser) whileStatement() error {
	p.enter(RuleWhileStatement)
	return p.scope(symbols.ScopeWhile, func(*symbols.Scope) error {
		if err := p.is(token.While).Once(); err != nil {
			return err
		}
		if err := p.condition(); err != nil {
			return err
		}
		return p.block()
	})
}

func (p *Parser) returnStatement() error {
	p.enter(RuleReturnStatement)
	if err := p.is(token.Return).Once(); err != nil {
		return err
	}
	err := p.in(RuleSimpleExpression).Optional(func() error {
		_, err := p.simpleExpression()
		return err
	})
	if err != nil {
		return err
	}
	return p.is(token.Semicolon).Once()
}

// condition parses "(" Expression ")".
func (p *Parser) condition() error {
	if err := p.is(token.LParen).Once(); err != nil {
		return err
	}
	if _, err := p.expression(); err != nil {
		return err
	}
	return p.is(token.RParen).Once()
}

// block parses "{" StatementSequence "}".
func (p *Parser) block() error {
	if err := p.is(token.LBrace).Once(); err != nil {
		return err
	}
	if err := p.statementSequence(); err != nil {
		return err
	}
	return p.is(token.RBrace).Once()
}
