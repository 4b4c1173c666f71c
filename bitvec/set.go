package bitvec

import (
	"fmt"
	"math/rand"
)

// Set is an ordered collection of vectors sharing a common length.
// Vectors are identified by their index. A Set is read-only after
// construction.
type Set struct {
	vectors []Vector
	length  int
}

// ErrInvalidLength indicates a non-positive vector length.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid vector length: %d", e.Length)
}

// ErrInvalidCount indicates a negative vector count.
type ErrInvalidCount struct {
	Count int
}

func (e *ErrInvalidCount) Error() string {
	return fmt.Sprintf("invalid vector count: %d", e.Count)
}

// Generate produces n vectors of the given length with each bit
// independently uniform. The caller supplies the random source so runs are
// reproducible; Generate never touches global rand state.
func Generate(n, length int, rng *rand.Rand) (Set, error) {
	if length < 1 {
		return Set{}, &ErrInvalidLength{Length: length}
	}
	if n < 0 {
		return Set{}, &ErrInvalidCount{Count: n}
	}

	numWords := (length + 63) / 64
	// Mask for the partial top word, so unused bits stay zero and never
	// contribute to popcounts.
	topMask := ^uint64(0)
	if rem := length % 64; rem != 0 {
		topMask = 1<<rem - 1
	}

	vectors := make([]Vector, n)
	for i := range vectors {
		words := make([]uint64, numWords)
		for w := range words {
			words[w] = rng.Uint64()
		}
		words[numWords-1] &= topMask
		vectors[i] = Vector{words: words, length: length}
	}

	return Set{vectors: vectors, length: length}, nil
}

// SetFromBits builds a Set from rows of 0/1 values. All rows must share the
// same length.
func SetFromBits(rows [][]int) (Set, error) {
	if len(rows) == 0 {
		return Set{}, &ErrInvalidCount{Count: 0}
	}
	length := len(rows[0])
	if length < 1 {
		return Set{}, &ErrInvalidLength{Length: length}
	}

	vectors := make([]Vector, len(rows))
	for i, row := range rows {
		if len(row) != length {
			return Set{}, &ErrLengthMismatch{Expected: length, Actual: len(row)}
		}
		v, err := FromBits(row)
		if err != nil {
			return Set{}, fmt.Errorf("vector %d: %w", i, err)
		}
		vectors[i] = v
	}

	return Set{vectors: vectors, length: length}, nil
}

// Len returns the number of vectors in the set.
func (s Set) Len() int { return len(s.vectors) }

// Length returns the common bit length of the vectors.
func (s Set) Length() int { return s.length }

// At returns the vector at index i.
func (s Set) At(i int) Vector { return s.vectors[i] }

// Distance returns the Hamming distance between the vectors at i and j.
// The set's uniform-length invariant makes the computation infallible.
func (s Set) Distance(i, j int) int {
	return hamming(s.vectors[i], s.vectors[j])
}
