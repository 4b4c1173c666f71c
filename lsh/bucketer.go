package lsh

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/hupe1980/minham/bitvec"
)

// ErrInvalidSampleBits indicates a sample size outside [1, vector length].
type ErrInvalidSampleBits struct {
	SampleBits int
	Length     int
}

func (e *ErrInvalidSampleBits) Error() string {
	return fmt.Sprintf("invalid sample bits: %d (must be in [1, %d])", e.SampleBits, e.Length)
}

// SamplePositions draws k distinct bit positions uniformly at random from
// [0, length). The returned order is the sampling order and is preserved in
// projection keys.
func SamplePositions(length, k int, rng *rand.Rand) ([]int, error) {
	if k < 1 || k > length {
		return nil, &ErrInvalidSampleBits{SampleBits: k, Length: length}
	}
	return rng.Perm(length)[:k], nil
}

// Buckets maps projection keys to the vector indices sharing that
// projection. It is rebuilt from scratch every iteration and records
// first-insertion order so traversal is deterministic under a fixed seed.
type Buckets struct {
	groups map[string][]int
	order  []string
}

// Len returns the number of distinct buckets.
func (b *Buckets) Len() int { return len(b.order) }

// All iterates the buckets' member index slices in first-insertion order.
func (b *Buckets) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, key := range b.order {
			if !yield(b.groups[key]) {
				return
			}
		}
	}
}

// projectionKey packs the bit values at the given positions, in order, into
// a string usable as a map key. Keys must compare exactly: any collision
// would merge buckets and violate the same-bucket guarantee.
func projectionKey(v bitvec.Vector, positions []int) string {
	key := make([]byte, (len(positions)+7)/8)
	for i, pos := range positions {
		if v.Bit(pos) == 1 {
			key[i/8] |= 1 << (i % 8)
		}
	}
	return string(key)
}

// Group buckets every vector of the set by its projection onto the given
// positions. The set is not mutated.
func Group(set bitvec.Set, positions []int) *Buckets {
	b := &Buckets{groups: make(map[string][]int)}
	for i := 0; i < set.Len(); i++ {
		key := projectionKey(set.At(i), positions)
		if _, ok := b.groups[key]; !ok {
			b.order = append(b.order, key)
		}
		b.groups[key] = append(b.groups[key], i)
	}
	return b
}

// Bucketize runs one full bucketing iteration: sample sampleBits positions,
// then group the set by the projection onto them.
func Bucketize(set bitvec.Set, sampleBits int, rng *rand.Rand) (*Buckets, error) {
	positions, err := SamplePositions(set.Length(), sampleBits, rng)
	if err != nil {
		return nil, err
	}
	return Group(set, positions), nil
}

// Agree reports whether two vectors carry identical bits at every given
// position. Used by the optional secondary filter to prune candidate pairs
// inside a bucket before computing full distances.
func Agree(a, b bitvec.Vector, positions []int) bool {
	for _, pos := range positions {
		if a.Bit(pos) != b.Bit(pos) {
			return false
		}
	}
	return true
}
