package tree

// The traversals below use an explicit stack so that very deep trees
// (long left-associative chains) cannot exhaust the goroutine stack.
// A nil root yields an empty, non-nil slice.

// PreOrder returns node values in node, left, right order.
func PreOrder(root *TreeNode) []rune {
	result := []rune{}
	if root == nil {
		return result
	}
	stack := []*TreeNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, n.Val)
		// Right is pushed first so left is visited first.
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
	return result
}

// InOrder returns node values in left, node, right order.
func InOrder(root *TreeNode) []rune {
	result := []rune{}
	var stack []*TreeNode
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, cur.Val)
		cur = cur.Right
	}
	return result
}

// PostOrder returns node values in left, right, node order.
func PostOrder(root *TreeNode) []rune {
	result := []rune{}
	if root == nil {
		return result
	}
	// Visit in node, right, left order, then reverse.
	stack := []*TreeNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, n.Val)
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}
