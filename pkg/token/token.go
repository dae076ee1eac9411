// Package token splits an expression into the single-character tokens
// consumed by the parsers. Parsers only see []Token, so a tokenizer for
// multi-character identifiers can replace Tokenize without touching them.
package token

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies a token.
type Kind int

const (
	Operand Kind = iota
	Operator
	LParen
	RParen
)

func (k Kind) String() string {
	switch k {
	case Operand:
		return "operand"
	case Operator:
		return "operator"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Norm is the form to which input is normalized before tokenizing.
const Norm = norm.NFC

// ErrUnsupportedCharacter is returned for runes outside the accepted set.
var ErrUnsupportedCharacter = errors.New("unsupported character")

// Token is one lexical element of an expression.
type Token struct {
	Kind Kind
	Val  rune
	Pos  int // rune offset in the normalized input
}

func (t Token) String() string {
	return fmt.Sprintf("%q (%v)", t.Val, t.Kind)
}

// CharError reports a rune that no token kind accepts.
type CharError struct {
	Char rune
	Pos  int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("%d: %v %q", e.Pos, ErrUnsupportedCharacter, e.Char)
}

func (e *CharError) Unwrap() error {
	return ErrUnsupportedCharacter
}

// IsOperator reports whether r is one of the binary operators.
func IsOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}

// IsOperand reports whether r is an ASCII letter or digit.
func IsOperand(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// Classify returns the kind of r, or false if r is not accepted.
func Classify(r rune) (Kind, bool) {
	switch {
	case IsOperand(r):
		return Operand, true
	case IsOperator(r):
		return Operator, true
	case r == '(':
		return LParen, true
	case r == ')':
		return RParen, true
	}
	return 0, false
}

// Tokenize normalizes expr, drops whitespace and classifies every
// remaining rune. The first unsupported rune aborts with a *CharError.
func Tokenize(expr string) ([]Token, error) {
	expr = Norm.String(expr)
	toks := make([]Token, 0, len(expr))
	pos := 0
	for _, r := range expr {
		if unicode.IsSpace(r) {
			pos++
			continue
		}
		kind, ok := Classify(r)
		if !ok {
			return nil, &CharError{Char: r, Pos: pos}
		}
		toks = append(toks, Token{Kind: kind, Val: r, Pos: pos})
		pos++
	}
	return toks, nil
}
