package equivalence

import "exprtree/pkg/tree"

// Compare reports whether e1 and e2 hold the same expression tree,
// whatever notation each was parsed from.
func Compare(e1, e2 *Expression) bool {
	if e1.Hash != 0 && e2.Hash != 0 && e1.Hash != e2.Hash {
		return false
	}
	s1, s2 := e1.PostOrder(), e2.PostOrder()
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			return false
		}
	}
	return true
}

// Equal compares two trees node by node.
func Equal(a, b *tree.TreeNode) bool {
	type pair struct{ a, b *tree.TreeNode }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.Val != p.b.Val {
			return false
		}
		stack = append(stack, pair{p.a.Left, p.b.Left}, pair{p.a.Right, p.b.Right})
	}
	return true
}
