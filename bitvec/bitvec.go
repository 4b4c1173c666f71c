package bitvec

import (
	"fmt"
	"math/bits"
	"strings"
)

// Vector is a fixed-length binary vector.
//
// Bits are packed into uint64 words: bit i lives in word i/64 at position
// i%64 (little-endian bit packing). Vectors are immutable once built; all
// constructors copy their input.
type Vector struct {
	words  []uint64
	length int
}

// ErrBitValue indicates a non-binary value passed to FromBits.
type ErrBitValue struct {
	Position int
	Value    int
}

func (e *ErrBitValue) Error() string {
	return fmt.Sprintf("bit %d: value must be 0 or 1, got %d", e.Position, e.Value)
}

// FromBits builds a Vector from a slice of 0/1 values.
func FromBits(b []int) (Vector, error) {
	words := make([]uint64, (len(b)+63)/64)
	for i, bit := range b {
		switch bit {
		case 0:
		case 1:
			words[i/64] |= 1 << (i % 64)
		default:
			return Vector{}, &ErrBitValue{Position: i, Value: bit}
		}
	}
	return Vector{words: words, length: len(b)}, nil
}

// Len returns the number of bits in the vector.
func (v Vector) Len() int { return v.length }

// Bit returns the bit at position i (0 or 1).
func (v Vector) Bit(i int) int {
	return int(v.words[i/64] >> (i % 64) & 1)
}

// Bits unpacks the vector into a slice of 0/1 values.
func (v Vector) Bits() []int {
	out := make([]int, v.length)
	for i := range out {
		out[i] = v.Bit(i)
	}
	return out
}

// String renders the vector as a bit string, most significant position last,
// e.g. "1010".
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.length)
	for i := 0; i < v.length; i++ {
		sb.WriteByte('0' + byte(v.Bit(i)))
	}
	return sb.String()
}

// ErrLengthMismatch indicates two vectors of different lengths.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Hamming returns the Hamming distance between two equal-length vectors:
// the count of positions where they differ. Computed as popcount of XOR.
func Hamming(a, b Vector) (int, error) {
	if a.length != b.length {
		return 0, &ErrLengthMismatch{Expected: a.length, Actual: b.length}
	}
	var dist int
	for i := range a.words {
		dist += bits.OnesCount64(a.words[i] ^ b.words[i])
	}
	return dist, nil
}

// hamming is the unchecked fast path for vectors of known-equal length.
func hamming(a, b Vector) int {
	var dist int
	for i := range a.words {
		dist += bits.OnesCount64(a.words[i] ^ b.words[i])
	}
	return dist
}
