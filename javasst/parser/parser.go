package parser

import (
	"github.com/dhamidi/sst/javasst/scanner"
	"github.com/dhamidi/sst/javasst/symbols"
	"github.com/dhamidi/sst/javasst/token"
	"github.com/tliron/commonlog"
)

// Stream produces tokens in source order. Once the input is exhausted it
// must keep returning a token of kind token.EOF.
type Stream interface {
	Next() token.Token
}

type Option func(*Parser)

// WithTrace calls fn on entry to every production.
func WithTrace(fn func(Rule)) Option {
	return func(p *Parser) {
		p.trace = fn
	}
}

// WithScopeObserver calls fn with every scope as it is discarded.
func WithScopeObserver(fn func(*symbols.Scope)) Option {
	return func(p *Parser) {
		p.symbols.OnExit(fn)
	}
}

// WithOuterScope resolves identifiers that are not declared in the parsed
// input against s. ParseExpression uses it to fold references to the
// constants of an already parsed class.
func WithOuterScope(s *symbols.Scope) Option {
	return func(p *Parser) {
		p.outer = s
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

type Parser struct {
	stream  Stream
	tok     token.Token
	tried   token.Set
	symbols *symbols.Table
	outer   *symbols.Scope
	trace   func(Rule)
	log     commonlog.Logger

	// strict makes unfoldable arithmetic an EvalError.
	strict bool
}

func New(stream Stream, opts ...Option) *Parser {
	p := &Parser{
		stream:  stream,
		symbols: symbols.NewTable(),
		log:     commonlog.GetLogger("sst.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseSource scans and parses a complete class.
func ParseSource(src []byte, file string, opts ...Option) (*symbols.Scope, error) {
	return New(scanner.New(src, file), opts...).Parse()
}

// Parse parses a class followed by the end of input and returns the class
// scope. On error the scope is nil.
func (p *Parser) Parse() (*symbols.Scope, error) {
	p.next()
	class, err := p.class()
	if err == nil {
		err = p.is(token.EOF).Once()
	}
	if err != nil {
		p.log.Errorf("%s", err)
		return nil, err
	}
	return class, nil
}

// ParseExpression parses a single expression followed by the end of input
// and returns its folded value. The expression is folded like a constant
// initializer, so division by zero and out-of-range literals are errors.
func (p *Parser) ParseExpression() (Value, error) {
	p.next()
	restore := p.folding(true)
	v, err := p.expression()
	restore()
	if err == nil {
		err = p.is(token.EOF).Once()
	}
	if err != nil {
		p.log.Errorf("%s", err)
		return Value{}, err
	}
	return v, nil
}

// next advances to the following token.
func (p *Parser) next() {
	p.tok = p.stream.Next()
	p.tried = 0
	if p.log.AllowLevel(commonlog.Debug) {
		p.log.Debugf("%s %s", p.tok.Span.Start, p.tok)
	}
}

// fail reports the current token as unexpected. Kinds tested by optional
// and repeated rules at this token are acceptable too and are included.
func (p *Parser) fail(expected token.Set) error {
	return &SyntaxError{Got: p.tok, Expected: p.tried.Union(expected)}
}

// folding sets strict folding and returns a func restoring the previous mode.
func (p *Parser) folding(strict bool) func() {
	prev := p.strict
	p.strict = strict
	return func() { p.strict = prev }
}

func (p *Parser) enter(r Rule) {
	if p.trace != nil {
		p.trace(r)
	}
}

// scope runs body inside a new scope of the given kind. The scope is closed
// on every return path.
func (p *Parser) scope(kind symbols.ScopeKind, body func(*symbols.Scope) error) error {
	s := p.symbols.Enter(kind)
	defer p.symbols.Exit()
	return body(s)
}

// declare inserts d into the current scope.
func (p *Parser) declare(d symbols.Declaration) error {
	if err := p.symbols.Insert(d); err != nil {
		return err
	}
	p.logDeclared(d, p.symbols.Current())
	return nil
}

// declareIn inserts d into s, which need not be the current scope.
func (p *Parser) declareIn(s *symbols.Scope, d symbols.Declaration) error {
	if err := s.Insert(d); err != nil {
		return err
	}
	p.logDeclared(d, s)
	return nil
}

func (p *Parser) logDeclared(d symbols.Declaration, s *symbols.Scope) {
	if p.log.AllowLevel(commonlog.Debug) {
		p.log.Debugf("declare %s %s in %s scope", d.Kind(), d.Name(), s.Kind)
	}
}

func (p *Parser) lookup(name string) (symbols.Declaration, bool) {
	if d, ok := p.symbols.Lookup(name); ok {
		return d, true
	}
	return symbols.Lookup(name, p.outer)
}

type sliceStream struct {
	tokens []token.Token
	pos    int
}

// Tokens returns a Stream over tokens. After the last token it returns EOF
// tokens positioned at the end of the last one.
func Tokens(tokens ...token.Token) Stream {
	return &sliceStream{tokens: tokens}
}

func (s *sliceStream) Next() token.Token {
	if s.pos >= len(s.tokens) {
		var end token.Position
		if len(s.tokens) > 0 {
			end = s.tokens[len(s.tokens)-1].Span.End
		}
		return token.Token{Kind: token.EOF, Span: token.Span{Start: end, End: end}}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}
