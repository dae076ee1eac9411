// Package parse builds binary expression trees from infix, prefix and
// postfix notation.
//
// Operands are single ASCII letters or digits, operators are the binary
// + - * / and ^, and whitespace is ignored. Infix input may group with
// parentheses. All operators, ^ included, associate to the left.
//
// Every error returned is a *SyntaxError wrapping either
// ErrMalformedExpression or ErrUnsupportedCharacter. No partial tree is
// returned alongside an error.
package parse

import (
	"fmt"
	"strings"

	"exprtree/pkg/token"
	"exprtree/pkg/tree"
)

// Notation names the position of operators relative to their operands.
type Notation int

const (
	InfixNotation Notation = iota
	PrefixNotation
	PostfixNotation
)

func (n Notation) String() string {
	switch n {
	case InfixNotation:
		return "infix"
	case PrefixNotation:
		return "prefix"
	case PostfixNotation:
		return "postfix"
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

// ParseNotation converts a notation name such as "infix" to a Notation.
func ParseNotation(name string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "infix", "in":
		return InfixNotation, nil
	case "prefix", "pre", "polish":
		return PrefixNotation, nil
	case "postfix", "post", "rpn":
		return PostfixNotation, nil
	}
	return 0, fmt.Errorf("unknown notation %q", name)
}

// Parse tokenizes expr and builds its tree according to n.
func Parse(n Notation, expr string) (*tree.TreeNode, error) {
	toks, err := token.Tokenize(expr)
	if err != nil {
		return nil, wrapErr(n, err)
	}
	return ParseTokens(n, toks)
}

// ParseTokens builds a tree from already tokenized input.
func ParseTokens(n Notation, toks []token.Token) (*tree.TreeNode, error) {
	switch n {
	case InfixNotation:
		return InfixTokens(toks)
	case PrefixNotation:
		return PrefixTokens(toks)
	case PostfixNotation:
		return PostfixTokens(toks)
	}
	return nil, fmt.Errorf("parse: unknown notation %v", n)
}

// Infix builds a tree from an infix expression such as "(A+B)*C".
func Infix(expr string) (*tree.TreeNode, error) {
	return Parse(InfixNotation, expr)
}

// Prefix builds a tree from a prefix expression such as "*+ABC".
func Prefix(expr string) (*tree.TreeNode, error) {
	return Parse(PrefixNotation, expr)
}

// Postfix builds a tree from a postfix expression such as "AB+C*".
func Postfix(expr string) (*tree.TreeNode, error) {
	return Parse(PostfixNotation, expr)
}

// lastPos returns the position of the final token, or -1.
func lastPos(toks []token.Token) int {
	if len(toks) == 0 {
		return -1
	}
	return toks[len(toks)-1].Pos
}
