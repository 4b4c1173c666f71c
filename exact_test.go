package minham

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/minham/bitvec"
)

func TestExactMinHamming(t *testing.T) {
	set := scenarioSet(t)

	got, err := ExactMinHamming(set)
	require.NoError(t, err)

	// Pairs (0,1) and (0,2) both have distance 1; first found wins.
	assert.Equal(t, Estimate{Distance: 1, I: 0, J: 1}, got)
	assert.True(t, got.Found())
}

func TestExactMinHamming_InsufficientData(t *testing.T) {
	for _, n := range []int{0, 1} {
		set, err := bitvec.Generate(n, 8, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		_, err = ExactMinHamming(set)
		assert.ErrorIs(t, err, ErrInsufficientData, "n=%d", n)
	}
}

func TestExactMinHamming_MatchesPairwise(t *testing.T) {
	set, err := bitvec.Generate(40, 24, rand.New(rand.NewSource(6)))
	require.NoError(t, err)

	got, err := ExactMinHamming(set)
	require.NoError(t, err)

	for i := 0; i < set.Len(); i++ {
		for j := i + 1; j < set.Len(); j++ {
			assert.GreaterOrEqual(t, set.Distance(i, j), got.Distance)
		}
	}
	assert.Equal(t, set.Distance(got.I, got.J), got.Distance)
}

func TestExactMinHamming_Metrics(t *testing.T) {
	set := scenarioSet(t)

	var m BasicMetricsCollector
	_, err := ExactMinHamming(set, WithMetrics(&m))
	require.NoError(t, err)

	assert.Equal(t, int64(1), m.ExactScanCount.Load())
	assert.Equal(t, int64(6), m.ExactPairCount.Load()) // C(4,2)
}
