package parser

import "github.com/dhamidi/sst/javasst/token"

// Counter tests the current token against a set of expected kinds and
// decides how often the match may occur.
type Counter struct {
	p        *Parser
	expected token.Set
}

// is starts a match against the given kinds.
func (p *Parser) is(kinds ...token.Kind) Counter {
	return Counter{p: p, expected: token.NewSet(kinds...)}
}

// in starts a match against the FIRST set of r.
func (p *Parser) in(r Rule) Counter {
	return Counter{p: p, expected: First(r)}
}

func (c Counter) matches() bool {
	return c.expected.Contains(c.p.tok.Kind)
}

// Once consumes the current token if it matches and fails otherwise.
func (c Counter) Once() error {
	_, err := c.Capture()
	return err
}

// Capture is Once, returning the consumed token.
func (c Counter) Capture() (token.Token, error) {
	if !c.matches() {
		return token.Token{}, c.p.fail(c.expected)
	}
	tok := c.p.tok
	c.p.next()
	return tok, nil
}

// Optional runs rule once if the current token matches.
func (c Counter) Optional(rule func() error) error {
	if !c.matches() {
		c.p.tried = c.p.tried.Union(c.expected)
		return nil
	}
	return rule()
}

// Repeat runs rule while the current token matches. Every run of rule must
// consume at least one token.
func (c Counter) Repeat(rule func() error) error {
	for c.matches() {
		if err := rule(); err != nil {
			return err
		}
	}
	c.p.tried = c.p.tried.Union(c.expected)
	return nil
}
