package equivalence

import (
	"encoding/binary"
	"hash/fnv"

	"exprtree/pkg/tree"
)

// ComputeHash fills in e.Hash from the postorder sequence of its tree
// and returns it.
func ComputeHash(e *Expression) uint64 {
	e.Hash = Hash(e.PostOrder())
	return e.Hash
}

// Hash returns the FNV-1a hash of a traversal sequence.
func Hash(seq []rune) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, r := range seq {
		binary.LittleEndian.PutUint32(buf[:], uint32(r))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// HashTree hashes root without building an Expression.
func HashTree(root *tree.TreeNode) uint64 {
	return Hash(tree.PostOrder(root))
}
