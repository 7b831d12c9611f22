// Package scanner turns Java SST source bytes into a stream of classified
// tokens. Whitespace and comments are skipped; the end of input is reported
// by an explicit EOF token, repeated on every further call to Next.
package scanner

import (
	"github.com/dhamidi/sst/javasst/token"
)

type Scanner struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func New(input []byte, file string) *Scanner {
	return &Scanner{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) Position() token.Position {
	return token.Position{
		File:   s.file,
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *Scanner) peekN(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}
	return s.input[s.pos+n]
}

func (s *Scanner) advance() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

func (s *Scanner) advanceN(n int) {
	for i := 0; i < n; i++ {
		s.advance()
	}
}

// skipTrivia skips whitespace and comments. It reports false when a block
// comment is not terminated before the end of input.
func (s *Scanner) skipTrivia() bool {
	for {
		ch := s.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			s.advance()
		case ch == '/' && s.peekN(1) == '/':
			for s.pos < len(s.input) && s.peek() != '\n' {
				s.advance()
			}
		case ch == '/' && s.peekN(1) == '*':
			s.advanceN(2)
			for {
				if s.pos >= len(s.input) {
					return false
				}
				if s.peek() == '*' && s.peekN(1) == '/' {
					s.advanceN(2)
					break
				}
				s.advance()
			}
		default:
			return true
		}
	}
}

// Next returns the next token in source order.
func (s *Scanner) Next() token.Token {
	commentStart := s.Position()
	if !s.skipTrivia() {
		return token.Token{
			Kind:    token.Illegal,
			Span:    token.Span{Start: commentStart, End: s.Position()},
			Literal: "unterminated comment",
		}
	}

	start := s.Position()
	if s.pos >= len(s.input) {
		return token.Token{Kind: token.EOF, Span: token.Span{Start: start, End: start}}
	}

	ch := s.peek()
	if isLetter(ch) {
		return s.scanIdentOrKeyword(start)
	}
	if isDigit(ch) {
		return s.scanNumber(start)
	}
	return s.scanOperator(start)
}

// All scans the remaining input, including the EOF token.
func (s *Scanner) All() []token.Token {
	var tokens []token.Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (s *Scanner) scanIdentOrKeyword(start token.Position) token.Token {
	for isLetterOrDigit(s.peek()) {
		s.advance()
	}
	end := s.Position()
	literal := string(s.input[start.Offset:end.Offset])
	return token.Token{
		Kind:    token.LookupKeyword(literal),
		Span:    token.Span{Start: start, End: end},
		Literal: literal,
	}
}

func (s *Scanner) scanNumber(start token.Position) token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	kind := token.Number
	// 12abc is neither a number nor an identifier.
	if isLetter(s.peek()) {
		kind = token.Illegal
		for isLetterOrDigit(s.peek()) {
			s.advance()
		}
	}
	end := s.Position()
	return token.Token{
		Kind:    kind,
		Span:    token.Span{Start: start, End: end},
		Literal: string(s.input[start.Offset:end.Offset]),
	}
}

func (s *Scanner) scanOperator(start token.Position) token.Token {
	ch := s.advance()
	switch ch {
	case '(':
		return s.token(token.LParen, start)
	case ')':
		return s.token(token.RParen, start)
	case '{':
		return s.token(token.LBrace, start)
	case '}':
		return s.token(token.RBrace, start)
	case ';':
		return s.token(token.Semicolon, start)
	case ',':
		return s.token(token.Comma, start)
	case '+':
		return s.token(token.Plus, start)
	case '-':
		return s.token(token.Minus, start)
	case '*':
		return s.token(token.Star, start)
	case '/':
		return s.token(token.Slash, start)
	case '=':
		if s.peek() == '=' {
			s.advance()
			return s.token(token.EQ, start)
		}
		return s.token(token.Assign, start)
	case '<':
		if s.peek() == '=' {
			s.advance()
			return s.token(token.LE, start)
		}
		return s.token(token.LT, start)
	case '>':
		if s.peek() == '=' {
			s.advance()
			return s.token(token.GE, start)
		}
		return s.token(token.GT, start)
	}
	return s.token(token.Illegal, start)
}

func (s *Scanner) token(kind token.Kind, start token.Position) token.Token {
	end := s.Position()
	return token.Token{
		Kind:    kind,
		Span:    token.Span{Start: start, End: end},
		Literal: string(s.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
