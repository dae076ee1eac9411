package parse

import (
	"exprtree/pkg/token"
	"exprtree/pkg/tree"
)

// PostfixTokens scans left to right. An operator takes the most
// recently pushed subtree as its right child and the one below it as
// its left child.
func PostfixTokens(toks []token.Token) (*tree.TreeNode, error) {
	var stack operandStack
	for _, tok := range toks {
		switch tok.Kind {
		case token.Operand:
			stack.push(tree.NewLeaf(tok.Val))
		case token.Operator:
			right, left, ok := stack.pop2()
			if !ok {
				return nil, underflow(PostfixNotation, tok)
			}
			stack.push(tree.NewNode(tok.Val, left, right))
		default:
			return nil, unsupported(PostfixNotation, tok)
		}
	}
	return stack.root(PostfixNotation, lastPos(toks))
}
