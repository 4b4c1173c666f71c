// Package pairset tracks which vector index pairs have already been
// compared, backed by a Roaring bitmap.
//
// Buckets from different iterations overlap heavily, so the same pair is
// often a candidate many times. Recording pairs in a compressed bitmap lets
// the estimator skip redundant distance computations without holding an
// O(N²) bool matrix.
package pairset

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is a set of unordered index pairs over a universe of n vectors.
// Pairs are keyed i*n+j with i < j, so keys need 64 bits for large n.
// Not safe for concurrent use; each worker owns its own Set.
type Set struct {
	bm *roaring64.Bitmap
	n  uint64
}

// New creates an empty pair set over n vectors.
func New(n int) *Set {
	return &Set{bm: roaring64.New(), n: uint64(n)}
}

func (s *Set) key(i, j int) uint64 {
	if i > j {
		i, j = j, i
	}
	return uint64(i)*s.n + uint64(j)
}

// Visit records the pair and reports whether this is its first visit.
func (s *Set) Visit(i, j int) bool {
	return s.bm.CheckedAdd(s.key(i, j))
}

// Contains reports whether the pair has been visited.
func (s *Set) Contains(i, j int) bool {
	return s.bm.Contains(s.key(i, j))
}

// Len returns the number of distinct pairs visited.
func (s *Set) Len() uint64 {
	return s.bm.GetCardinality()
}
