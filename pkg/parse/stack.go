package parse

import "exprtree/pkg/tree"

// operandStack holds finished subtrees. Popping removes a node from the
// stack before it is attached to a parent, so no node is shared.
type operandStack struct {
	nodes []*tree.TreeNode
}

func (s *operandStack) push(n *tree.TreeNode) {
	s.nodes = append(s.nodes, n)
}

func (s *operandStack) pop() (*tree.TreeNode, bool) {
	if len(s.nodes) == 0 {
		return nil, false
	}
	n := s.nodes[len(s.nodes)-1]
	s.nodes[len(s.nodes)-1] = nil
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n, true
}

func (s *operandStack) len() int {
	return len(s.nodes)
}

// pop2 pops the top two subtrees, most recent first.
func (s *operandStack) pop2() (first, second *tree.TreeNode, ok bool) {
	if len(s.nodes) < 2 {
		return nil, nil, false
	}
	first, _ = s.pop()
	second, _ = s.pop()
	return first, second, true
}

// root returns the single remaining subtree. last is the final token
// scanned and is used to position the error.
func (s *operandStack) root(n Notation, last int) (*tree.TreeNode, error) {
	switch s.len() {
	case 0:
		return nil, malformed(n, -1, "empty expression")
	case 1:
		root, _ := s.pop()
		return root, nil
	}
	return nil, malformed(n, last, "%d operands left without an operator", s.len())
}
