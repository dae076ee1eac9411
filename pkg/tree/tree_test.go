package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// (A*B+C/D)/(E+F-G/H)
func sampleTree() *TreeNode {
	return NewNode('/',
		NewNode('+',
			NewNode('*', NewLeaf('A'), NewLeaf('B')),
			NewNode('/', NewLeaf('C'), NewLeaf('D'))),
		NewNode('-',
			NewNode('+', NewLeaf('E'), NewLeaf('F')),
			NewNode('/', NewLeaf('G'), NewLeaf('H'))))
}

func TestTraversals(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, "/ + * A B / C D - + E F / G H", Format(PreOrder(root)))
	assert.Equal(t, "A * B + C / D / E + F - G / H", Format(InOrder(root)))
	assert.Equal(t, "A B * C D / + E F + G H / - /", Format(PostOrder(root)))
}

func TestTraversalsNilRoot(t *testing.T) {
	for _, fn := range []func(*TreeNode) []rune{PreOrder, InOrder, PostOrder} {
		seq := fn(nil)
		assert.NotNil(t, seq)
		assert.Empty(t, seq)
	}
	assert.Equal(t, "", Format(InOrder(nil)))
}

func TestSingleLeaf(t *testing.T) {
	leaf := NewLeaf('x')
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, []rune{'x'}, PreOrder(leaf))
	assert.Equal(t, []rune{'x'}, InOrder(leaf))
	assert.Equal(t, []rune{'x'}, PostOrder(leaf))
	assert.Equal(t, 1, Depth(leaf))
}

func TestCounts(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, 8, Leaves(root))
	assert.Equal(t, 7, Internal(root))
	assert.Equal(t, 4, Depth(root))
	assert.Equal(t, 0, Leaves(nil))
	assert.Equal(t, 0, Depth(nil))
}

func TestDeepTree(t *testing.T) {
	// A left-leaning chain far deeper than a recursive walk would like.
	const n = 200000
	root := NewLeaf('A')
	for i := 0; i < n; i++ {
		root = NewNode('-', root, NewLeaf('B'))
	}
	assert.Equal(t, n+1, Depth(root))
	assert.Len(t, PreOrder(root), 2*n+1)
	post := PostOrder(root)
	assert.Len(t, post, 2*n+1)
	assert.Equal(t, 'A', post[0])
	assert.Equal(t, '-', post[len(post)-1])
	in := InOrder(root)
	assert.Equal(t, []rune("A-B"), in[:3])
}
