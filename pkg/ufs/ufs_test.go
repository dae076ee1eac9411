package ufs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFind(t *testing.T) {
	uf := NewUnionFind(6)
	uf.Union(0, 3)
	uf.Union(4, 3)
	uf.Union(1, 5)

	assert.Equal(t, uf.Find(0), uf.Find(4))
	assert.Equal(t, uf.Find(1), uf.Find(5))
	assert.NotEqual(t, uf.Find(0), uf.Find(1))
	assert.Equal(t, 2, uf.Find(2))
	assert.Equal(t, [][]int{{0, 3, 4}, {1, 5}}, uf.Groups())
}

func TestUnionFindNoGroups(t *testing.T) {
	uf := NewUnionFind(3)
	assert.Empty(t, uf.Groups())
}

func TestUnionFindConcurrent(t *testing.T) {
	const n = 1000
	uf := NewUnionFind(n)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i+1 < n; i += 8 {
				uf.Union(i, i+1)
			}
		}(w)
	}
	wg.Wait()
	groups := uf.Groups()
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0], n)
}
