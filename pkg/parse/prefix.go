package parse

import (
	"exprtree/pkg/token"
	"exprtree/pkg/tree"
)

// PrefixTokens scans right to left, the mirror image of PostfixTokens:
// the first subtree popped becomes the left child and the second the
// right child.
func PrefixTokens(toks []token.Token) (*tree.TreeNode, error) {
	var stack operandStack
	for i := len(toks) - 1; i >= 0; i-- {
		tok := toks[i]
		switch tok.Kind {
		case token.Operand:
			stack.push(tree.NewLeaf(tok.Val))
		case token.Operator:
			left, right, ok := stack.pop2()
			if !ok {
				return nil, underflow(PrefixNotation, tok)
			}
			stack.push(tree.NewNode(tok.Val, left, right))
		default:
			return nil, unsupported(PrefixNotation, tok)
		}
	}
	first := -1
	if len(toks) > 0 {
		first = toks[0].Pos
	}
	return stack.root(PrefixNotation, first)
}
