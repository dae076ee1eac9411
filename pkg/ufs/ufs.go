package ufs

import "sync"

// UnionFind partitions expression ids into equivalence groups. It is
// safe for concurrent use by comparison workers.
type UnionFind struct {
	mu     sync.Mutex
	parent []int
	rank   []int
}

func NewUnionFind(size int) *UnionFind {
	parent := make([]int, size)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{
		parent: parent,
		rank:   make([]int, size),
	}
}

func (uf *UnionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Path compression
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}
	return root
}

func (uf *UnionFind) Find(x int) int {
	uf.mu.Lock()
	defer uf.mu.Unlock()
	return uf.find(x)
}

func (uf *UnionFind) Union(x, y int) {
	uf.mu.Lock()
	defer uf.mu.Unlock()

	rootX := uf.find(x)
	rootY := uf.find(y)
	if rootX == rootY {
		return
	}
	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
}

// Groups returns every set with more than one member. Members are in
// ascending order and groups are ordered by their smallest member.
func (uf *UnionFind) Groups() [][]int {
	uf.mu.Lock()
	defer uf.mu.Unlock()

	byRoot := make(map[int][]int)
	var order []int
	for i := range uf.parent {
		root := uf.find(i)
		if _, seen := byRoot[root]; !seen {
			order = append(order, root)
		}
		byRoot[root] = append(byRoot[root], i)
	}
	var groups [][]int
	for _, root := range order {
		if len(byRoot[root]) > 1 {
			groups = append(groups, byRoot[root])
		}
	}
	return groups
}
