package parser

import (
	"strconv"

	"github.com/dhamidi/sst/javasst/symbols"
	"github.com/dhamidi/sst/javasst/token"
)

// Value is the result of folding an expression. Known is false when the
// expression depends on a variable, a procedure call, a constant whose value
// is deferred, or is a comparison.
type Value struct {
	Int   int32
	Known bool
}

func known(n int32) Value {
	return Value{Int: n, Known: true}
}

// apply combines two operands with the arithmetic operator op. Arithmetic
// wraps around like Java int. Division by zero is an error only while
// folding a constant initializer; elsewhere the result is unknown.
func (p *Parser) apply(op token.Token, lhs, rhs Value) (Value, error) {
	if !lhs.Known || !rhs.Known {
		return Value{}, nil
	}
	switch op.Kind {
	case token.Plus:
		return known(lhs.Int + rhs.Int), nil
	case token.Minus:
		return known(lhs.Int - rhs.Int), nil
	case token.Star:
		return known(lhs.Int * rhs.Int), nil
	case token.Slash:
		if rhs.Int == 0 {
			if !p.strict {
				return Value{}, nil
			}
			return Value{}, &EvalError{Token: op, Message: "division by zero"}
		}
		return known(lhs.Int / rhs.Int), nil
	}
	return Value{}, nil
}

var relationalOperators = token.NewSet(token.EQ, token.LT, token.LE, token.GT, token.GE)

// expression allows at most one comparison; comparisons do not chain.
func (p *Parser) expression() (Value, error) {
	p.enter(RuleExpression)
	v, err := p.simpleExpression()
	if err != nil {
		return Value{}, err
	}
	err = Counter{p: p, expected: relationalOperators}.Optional(func() error {
		p.next()
		v = Value{}
		_, err := p.simpleExpression()
		return err
	})
	return v, err
}

func (p *Parser) simpleExpression() (Value, error) {
	p.enter(RuleSimpleExpression)
	v, err := p.term()
	if err != nil {
		return Value{}, err
	}
	err = p.is(token.Plus, token.Minus).Repeat(func() error {
		op, err := p.is(token.Plus, token.Minus).Capture()
		if err != nil {
			return err
		}
		rhs, err := p.term()
		if err != nil {
			return err
		}
		v, err = p.apply(op, v, rhs)
		return err
	})
	return v, err
}

func (p *Parser) term() (Value, error) {
	p.enter(RuleTerm)
	v, err := p.factor()
	if err != nil {
		return Value{}, err
	}
	err = p.is(token.Star, token.Slash).Repeat(func() error {
		op, err := p.is(token.Star, token.Slash).Capture()
		if err != nil {
			return err
		}
		rhs, err := p.factor()
		if err != nil {
			return err
		}
		v, err = p.apply(op, v, rhs)
		return err
	})
	return v, err
}

func (p *Parser) factor() (Value, error) {
	p.enter(RuleFactor)
	switch p.tok.Kind {
	case token.Ident:
		name, err := p.is(token.Ident).Capture()
		if err != nil {
			return Value{}, err
		}
		call := false
		err = p.is(token.LParen).Optional(func() error {
			call = true
			return p.internProcedureCall(name)
		})
		if err != nil || call {
			return Value{}, err
		}
		return p.resolve(name), nil
	case token.Number:
		lit, err := p.is(token.Number).Capture()
		if err != nil {
			return Value{}, err
		}
		n, err := strconv.ParseInt(lit.Literal, 10, 32)
		if err != nil {
			if !p.strict {
				return Value{}, nil
			}
			return Value{}, &EvalError{Token: lit, Message: "integer literal " + lit.Literal + " out of range"}
		}
		return known(int32(n)), nil
	case token.LParen:
		if err := p.is(token.LParen).Once(); err != nil {
			return Value{}, err
		}
		v, err := p.expression()
		if err != nil {
			return Value{}, err
		}
		return v, p.is(token.RParen).Once()
	}
	return Value{}, p.fail(First(RuleFactor))
}

// resolve folds a reference to an evaluated constant.
func (p *Parser) resolve(name token.Token) Value {
	d, ok := p.lookup(name.Literal)
	if !ok {
		return Value{}
	}
	if c, ok := d.(*symbols.Constant); ok && c.Evaluated {
		return known(c.Value)
	}
	return Value{}
}

// actualParameters folds arguments leniently; a call is never constant.
func (p *Parser) actualParameters() error {
	p.enter(RuleActualParameters)
	defer p.folding(false)()
	if err := p.is(token.LParen).Once(); err != nil {
		return err
	}
	err := p.in(RuleExpression).Optional(func() error {
		if _, err := p.expression(); err != nil {
			return err
		}
		return p.is(token.Comma).Repeat(func() error {
			if err := p.is(token.Comma).Once(); err != nil {
				return err
			}
			_, err := p.expression()
			return err
		})
	})
	if err != nil {
		return err
	}
	return p.is(token.RParen).Once()
}
