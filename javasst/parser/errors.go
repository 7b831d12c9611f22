package parser

import (
	"errors"
	"fmt"

	"github.com/dhamidi/sst/javasst/token"
)

var (
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("syntax error")
	// ErrEval is matched by every *EvalError.
	ErrEval = errors.New("constant evaluation error")
)

// SyntaxError reports a token that is not in the set of kinds the grammar
// accepts at its position.
type SyntaxError struct {
	Got      token.Token
	Expected token.Set
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("%s: unexpected %s", e.Got.Span.Start, e.Got)
	if !e.Expected.IsEmpty() {
		msg += ", expected one of " + e.Expected.String()
	}
	return msg
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// EvalError reports a constant expression that cannot be folded: a number
// literal outside the int range or a division by a constant zero.
type EvalError struct {
	Token   token.Token
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Token.Span.Start, e.Message)
}

func (e *EvalError) Is(target error) bool {
	return target == ErrEval
}
