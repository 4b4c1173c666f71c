package pairset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisit(t *testing.T) {
	s := New(100)

	assert.True(t, s.Visit(3, 7), "first visit")
	assert.False(t, s.Visit(3, 7), "repeat visit")
	assert.False(t, s.Visit(7, 3), "order must not matter")

	assert.True(t, s.Contains(3, 7))
	assert.True(t, s.Contains(7, 3))
	assert.False(t, s.Contains(3, 8))

	assert.Equal(t, uint64(1), s.Len())
}

func TestVisit_DistinctPairs(t *testing.T) {
	s := New(10)

	count := 0
	for i := 0; i < 10; i++ {
		for j := i + 1; j < 10; j++ {
			if s.Visit(i, j) {
				count++
			}
		}
	}

	assert.Equal(t, 45, count)
	assert.Equal(t, uint64(45), s.Len())
}

func TestVisit_LargeUniverse(t *testing.T) {
	// Keys for large n overflow 32 bits; roaring64 must keep pairs distinct.
	n := 1 << 20
	s := New(n)

	assert.True(t, s.Visit(0, 1))
	assert.True(t, s.Visit(n-2, n-1))
	assert.False(t, s.Visit(n-1, n-2))
	assert.Equal(t, uint64(2), s.Len())
}
