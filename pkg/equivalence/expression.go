package equivalence

import "exprtree/pkg/tree"

// Expression is one parsed input together with the data needed to
// group it with equivalent expressions.
type Expression struct {
	Id     int
	Source string
	Root   *tree.TreeNode
	Hash   uint64

	// postOrder caches tree.PostOrder(Root). For trees whose leaves are
	// operands and whose internal nodes are operators, the postorder
	// sequence determines the shape, so equal sequences mean equal trees.
	postOrder []rune
}

// PostOrder returns the cached postorder sequence of e.Root.
func (e *Expression) PostOrder() []rune {
	if e.postOrder == nil {
		e.postOrder = tree.PostOrder(e.Root)
	}
	return e.postOrder
}
