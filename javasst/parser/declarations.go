package parser

import (
	"github.com/dhamidi/sst/javasst/symbols"
	"github.com/dhamidi/sst/javasst/token"
)

func (p *Parser) class() (*symbols.Scope, error) {
	p.enter(RuleClass)
	var class *symbols.Scope
	err := p.scope(symbols.ScopeClass, func(s *symbols.Scope) error {
		class = s
		if err := p.is(token.Class).Once(); err != nil {
			return err
		}
		name, err := p.is(token.Ident).Capture()
		if err != nil {
			return err
		}
		if err := p.symbols.SetHead(symbols.NewClass(name.Literal, name.Span.Start)); err != nil {
			return err
		}
		return p.classBody()
	})
	return class, err
}

func (p *Parser) classBody() error {
	p.enter(RuleClassBody)
	if err := p.is(token.LBrace).Once(); err != nil {
		return err
	}
	if err := p.declarations(); err != nil {
		return err
	}
	return p.is(token.RBrace).Once()
}

// declarations parses constants, then fields, then methods. The three groups
// cannot interleave.
func (p *Parser) declarations() error {
	p.enter(RuleDeclarations)
	if err := p.in(RuleConstant).Repeat(p.constant); err != nil {
		return err
	}
	if err := p.in(RuleVariableDeclaration).Repeat(p.variableDeclaration); err != nil {
		return err
	}
	return p.in(RuleMethodDeclaration).Repeat(p.methodDeclaration)
}

func (p *Parser) constant() error {
	p.enter(RuleConstant)
	if err := p.is(token.Final).Once(); err != nil {
		return err
	}
	typ, err := p.typ()
	if err != nil {
		return err
	}
	name, err := p.is(token.Ident).Capture()
	if err != nil {
		return err
	}
	if err := p.is(token.Assign).Once(); err != nil {
		return err
	}
	restore := p.folding(true)
	v, err := p.expression()
	restore()
	if err != nil {
		return err
	}
	if err := p.is(token.Semicolon).Once(); err != nil {
		return err
	}

	c := symbols.NewConstant(name.Literal, name.Span.Start, typ)
	c.Value, c.Evaluated = v.Int, v.Known
	if !c.Evaluated {
		p.log.Infof("%s: value of constant %s deferred", name.Span.Start, c.Name())
	}
	return p.declare(c)
}

func (p *Parser) variableDeclaration() error {
	p.enter(RuleVariableDeclaration)
	return p.variable()
}

func (p *Parser) localDeclaration() error {
	p.enter(RuleLocalDeclaration)
	return p.variable()
}

func (p *Parser) variable() error {
	typ, err := p.typ()
	if err != nil {
		return err
	}
	name, err := p.is(token.Ident).Capture()
	if err != nil {
		return err
	}
	if err := p.is(token.Semicolon).Once(); err != nil {
		return err
	}
	return p.declare(symbols.NewVariable(name.Literal, name.Span.Start, typ))
}

// methodDeclaration declares the procedure in the class scope once its
// parameters are known, before the body is parsed.
func (p *Parser) methodDeclaration() error {
	p.enter(RuleMethodDeclaration)
	p.enter(RuleMethodHead)
	if err := p.is(token.Public).Once(); err != nil {
		return err
	}
	result, err := p.methodType()
	if err != nil {
		return err
	}
	name, err := p.is(token.Ident).Capture()
	if err != nil {
		return err
	}

	return p.scope(symbols.ScopeMethod, func(s *symbols.Scope) error {
		params, err := p.formalParameters()
		if err != nil {
			return err
		}
		proc := symbols.NewProcedure(name.Literal, name.Span.Start, result, params)
		if err := p.declareIn(s.Parent, proc); err != nil {
			return err
		}

		if err := p.is(token.LBrace).Once(); err != nil {
			return err
		}
		if err := p.in(RuleLocalDeclaration).Repeat(p.localDeclaration); err != nil {
			return err
		}
		if err := p.statementSequence(); err != nil {
			return err
		}
		return p.is(token.RBrace).Once()
	})
}

func (p *Parser) methodType() (symbols.Type, error) {
	p.enter(RuleMethodType)
	tok, err := p.is(token.Void, token.Int).Capture()
	if err != nil {
		return symbols.TypeVoid, err
	}
	if tok.Kind == token.Int {
		return symbols.TypeInt, nil
	}
	return symbols.TypeVoid, nil
}

func (p *Parser) formalParameters() ([]*symbols.Variable, error) {
	p.enter(RuleFormalParameters)
	var params []*symbols.Variable
	section := func() error {
		param, err := p.fpSection()
		if err != nil {
			return err
		}
		params = append(params, param)
		return nil
	}

	if err := p.is(token.LParen).Once(); err != nil {
		return nil, err
	}
	err := p.in(RuleFPSection).Optional(func() error {
		if err := section(); err != nil {
			return err
		}
		return p.is(token.Comma).Repeat(func() error {
			if err := p.is(token.Comma).Once(); err != nil {
				return err
			}
			return section()
		})
	})
	if err != nil {
		return nil, err
	}
	if err := p.is(token.RParen).Once(); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) fpSection() (*symbols.Variable, error) {
	p.enter(RuleFPSection)
	typ, err := p.typ()
	if err != nil {
		return nil, err
	}
	name, err := p.is(token.Ident).Capture()
	if err != nil {
		return nil, err
	}
	param := symbols.NewParameter(name.Literal, name.Span.Start, typ)
	if err := p.declare(param); err != nil {
		return nil, err
	}
	return param, nil
}

func (p *Parser) typ() (symbols.Type, error) {
	p.enter(RuleType)
	if err := p.in(RuleType).Once(); err != nil {
		return symbols.TypeVoid, err
	}
	return symbols.TypeInt, nil
}
