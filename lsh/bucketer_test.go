package lsh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/minham/bitvec"
)

func TestSamplePositions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	positions, err := SamplePositions(32, 8, rng)
	require.NoError(t, err)
	require.Len(t, positions, 8)

	seen := make(map[int]bool)
	for _, p := range positions {
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 32)
		assert.False(t, seen[p], "duplicate position %d", p)
		seen[p] = true
	}
}

func TestSamplePositions_Invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, k := range []int{0, -1, 33} {
		_, err := SamplePositions(32, k, rng)
		var eis *ErrInvalidSampleBits
		require.ErrorAs(t, err, &eis, "k=%d", k)
		assert.Equal(t, k, eis.SampleBits)
		assert.Equal(t, 32, eis.Length)
	}
}

func TestSamplePositions_FullLength(t *testing.T) {
	positions, err := SamplePositions(16, 16, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, positions, 16)
}

func TestGroup(t *testing.T) {
	set, err := bitvec.SetFromBits([][]int{
		{1, 0, 0, 0},
		{1, 0, 1, 0},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	})
	require.NoError(t, err)

	// Project onto positions {0, 1}: vectors 0 and 1 share key (1,0),
	// vector 2 has (0,0), vector 3 has (1,1).
	b := Group(set, []int{0, 1})
	require.Equal(t, 3, b.Len())

	var groups [][]int
	for members := range b.All() {
		groups = append(groups, members)
	}
	assert.Equal(t, [][]int{{0, 1}, {2}, {3}}, groups)
}

func TestGroup_SameBucketIffAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	set, err := bitvec.Generate(50, 24, rng)
	require.NoError(t, err)

	positions, err := SamplePositions(24, 6, rng)
	require.NoError(t, err)

	b := Group(set, positions)

	bucketOf := make(map[int]int)
	bucket := 0
	total := 0
	for members := range b.All() {
		for _, idx := range members {
			bucketOf[idx] = bucket
		}
		total += len(members)
		bucket++
	}
	require.Equal(t, set.Len(), total, "every vector lands in exactly one bucket")

	for i := 0; i < set.Len(); i++ {
		for j := i + 1; j < set.Len(); j++ {
			agree := Agree(set.At(i), set.At(j), positions)
			same := bucketOf[i] == bucketOf[j]
			assert.Equal(t, agree, same, "vectors %d,%d", i, j)
		}
	}
}

func TestBucketize_Deterministic(t *testing.T) {
	set, err := bitvec.Generate(30, 16, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	collect := func(seed int64) [][]int {
		b, err := Bucketize(set, 4, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		var out [][]int
		for members := range b.All() {
			out = append(out, members)
		}
		return out
	}

	assert.Equal(t, collect(9), collect(9))
}

func TestBucketize_InvalidSampleBits(t *testing.T) {
	set, err := bitvec.Generate(4, 8, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = Bucketize(set, 9, rand.New(rand.NewSource(1)))
	var eis *ErrInvalidSampleBits
	require.ErrorAs(t, err, &eis)
}

func TestAgree(t *testing.T) {
	a, _ := bitvec.FromBits([]int{1, 0, 1, 0})
	b, _ := bitvec.FromBits([]int{1, 1, 1, 1})

	assert.True(t, Agree(a, b, []int{0, 2}))
	assert.False(t, Agree(a, b, []int{0, 1}))
	assert.True(t, Agree(a, b, nil))
}
