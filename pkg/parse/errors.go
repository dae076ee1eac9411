package parse

import (
	"errors"
	"fmt"

	"exprtree/pkg/token"
)

var (
	// ErrMalformedExpression is wrapped by every error caused by an
	// expression whose operators and operands do not form one tree.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrUnsupportedCharacter is wrapped when the input holds a rune
	// outside the accepted set, or a parenthesis outside infix notation.
	ErrUnsupportedCharacter = token.ErrUnsupportedCharacter
)

// SyntaxError is the type of all errors produced by the parsers.
type SyntaxError struct {
	Notation Notation
	Pos      int    // rune offset of the culprit, -1 if not tied to a token
	Msg      string // description
	Err      error  // cause
}

func (err *SyntaxError) Error() string {
	if err.Pos < 0 {
		return fmt.Sprintf("%v: %s", err.Notation, err.Msg)
	}
	return fmt.Sprintf("%v:%d: %s", err.Notation, err.Pos, err.Msg)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

func malformed(n Notation, pos int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Notation: n,
		Pos:      pos,
		Msg:      fmt.Sprintf(format, args...),
		Err:      ErrMalformedExpression,
	}
}

func underflow(n Notation, op token.Token) *SyntaxError {
	return malformed(n, op.Pos, "operator %q is missing an operand", op.Val)
}

func unsupported(n Notation, tok token.Token) *SyntaxError {
	return &SyntaxError{
		Notation: n,
		Pos:      tok.Pos,
		Msg:      fmt.Sprintf("%v not allowed in %v notation", tok, n),
		Err:      ErrUnsupportedCharacter,
	}
}

func wrapErr(n Notation, err error) *SyntaxError {
	var ce *token.CharError
	if errors.As(err, &ce) {
		msg := fmt.Sprintf("%v %q", ErrUnsupportedCharacter, ce.Char)
		return &SyntaxError{Notation: n, Pos: ce.Pos, Msg: msg, Err: err}
	}
	return &SyntaxError{Notation: n, Pos: -1, Msg: err.Error(), Err: err}
}
