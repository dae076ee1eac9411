package parse

import (
	"exprtree/pkg/token"
	"exprtree/pkg/tree"
)

// atomicPrecedence is the precedence of a lone operand.
const atomicPrecedence = PowPrecedence + 1

// FormatInfix renders root as an infix expression with only the
// parentheses needed for Infix to rebuild the same tree. Because every
// operator groups to the left, a right operand of equal precedence is
// parenthesized and a left one is not.
func FormatInfix(root *tree.TreeNode) string {
	if root == nil {
		return ""
	}
	type part struct {
		s    string
		prec int
	}
	var stack []part
	for _, r := range tree.PostOrder(root) {
		if !token.IsOperator(r) {
			stack = append(stack, part{string(r), atomicPrecedence})
			continue
		}
		right, left := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		prec := Precedence(r)
		if left.prec < prec {
			left.s = "(" + left.s + ")"
		}
		if right.prec <= prec {
			right.s = "(" + right.s + ")"
		}
		stack = append(stack, part{left.s + string(r) + right.s, prec})
	}
	return stack[0].s
}

// FormatPrefix renders root in prefix notation without spaces.
func FormatPrefix(root *tree.TreeNode) string {
	return string(tree.PreOrder(root))
}

// FormatPostfix renders root in postfix notation without spaces.
func FormatPostfix(root *tree.TreeNode) string {
	return string(tree.PostOrder(root))
}

// Format renders root in notation n.
func Format(n Notation, root *tree.TreeNode) string {
	switch n {
	case PrefixNotation:
		return FormatPrefix(root)
	case PostfixNotation:
		return FormatPostfix(root)
	}
	return FormatInfix(root)
}

