package tree

import "strings"

// TreeNode represents a node in a binary expression tree.
// Leaves hold operands, internal nodes hold operators and always have
// both children set.
type TreeNode struct {
	Val   rune
	Left  *TreeNode
	Right *TreeNode
}

// NewLeaf returns a childless node for an operand.
func NewLeaf(val rune) *TreeNode {
	return &TreeNode{Val: val}
}

// NewNode returns an operator node owning left and right.
func NewNode(op rune, left, right *TreeNode) *TreeNode {
	return &TreeNode{Val: op, Left: left, Right: right}
}

// IsLeaf reports whether n has no children.
func (n *TreeNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the number of leaf nodes under root.
func Leaves(root *TreeNode) int {
	count := 0
	walk(root, func(n *TreeNode) {
		if n.IsLeaf() {
			count++
		}
	})
	return count
}

// Internal returns the number of operator nodes under root.
func Internal(root *TreeNode) int {
	count := 0
	walk(root, func(n *TreeNode) {
		if !n.IsLeaf() {
			count++
		}
	})
	return count
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(root *TreeNode) int {
	if root == nil {
		return 0
	}
	type frame struct {
		node  *TreeNode
		depth int
	}
	deepest := 0
	stack := []frame{{root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > deepest {
			deepest = f.depth
		}
		if f.node.Left != nil {
			stack = append(stack, frame{f.node.Left, f.depth + 1})
		}
		if f.node.Right != nil {
			stack = append(stack, frame{f.node.Right, f.depth + 1})
		}
	}
	return deepest
}

// Format joins a traversal with single spaces.
func Format(seq []rune) string {
	strs := make([]string, len(seq))
	for i, v := range seq {
		strs[i] = string(v)
	}
	return strings.Join(strs, " ")
}

// walk visits every node once in no particular order.
func walk(root *TreeNode, visit func(*TreeNode)) {
	if root == nil {
		return
	}
	stack := []*TreeNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n)
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
	}
}
