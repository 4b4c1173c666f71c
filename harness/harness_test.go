package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/minham"
)

func TestRun_InvalidSamples(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Vectors:    10,
		Length:     8,
		Iterations: 2,
		Samples:    0,
	})
	require.ErrorIs(t, err, minham.ErrInvalidParameter)

	var eis *ErrInvalidSamples
	require.ErrorAs(t, err, &eis)
	assert.Equal(t, 0, eis.Samples)
}

func TestRun_PropagatesEstimatorErrors(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Vectors:    1, // fewer than two vectors per sample
		Length:     8,
		Iterations: 2,
		Samples:    3,
		Seed:       1,
	})
	assert.ErrorIs(t, err, minham.ErrInsufficientData)
}

func TestRun_Basic(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Vectors:    50,
		Length:     16,
		Iterations: 5,
		Samples:    10,
		Seed:       42,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, res.Samples)
	assert.GreaterOrEqual(t, res.HitRate, 0.0)
	assert.LessOrEqual(t, res.HitRate, 1.0)
	assert.GreaterOrEqual(t, res.AvgRelativeError, 0.0)
	assert.InDelta(t, float64(res.Hits)/float64(res.Samples), res.HitRate, 1e-12)
}

func TestRun_Deterministic(t *testing.T) {
	opts := Options{
		Vectors:    40,
		Length:     24,
		Iterations: 4,
		Samples:    8,
		Seed:       7,
	}

	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	opts := Options{
		Vectors:    40,
		Length:     24,
		Iterations: 4,
		Samples:    12,
		Seed:       19,
	}

	sequential, err := Run(context.Background(), opts)
	require.NoError(t, err)

	opts.Parallelism = 4
	parallel, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestRun_ZeroExactExcludedFromRelativeError(t *testing.T) {
	// Three vectors of length 1 force a duplicate pair in every sample, so
	// the exact minimum is always zero: the relative-error average must
	// stay zero instead of dividing by zero.
	res, err := Run(context.Background(), Options{
		Vectors:    3,
		Length:     1,
		SampleBits: 1,
		Iterations: 3,
		Samples:    5,
		Seed:       3,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.AvgRelativeError)
	// A one-bit bucket always collides the duplicate pair, so every
	// sample hits.
	assert.Equal(t, 1.0, res.HitRate)
}

func TestRun_BenchmarkScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical scenario in short mode")
	}

	// Documented benchmark order of magnitude: N=1000, L=32, I=10 gives a
	// hit rate around 98% and an average relative error around 0.5%. The
	// exact figures are stochastic; assert the magnitude, not the digits.
	res, err := Run(context.Background(), Options{
		Vectors:     1000,
		Length:      32,
		Iterations:  10,
		Samples:     50,
		Seed:        123,
		Parallelism: 4,
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.HitRate, 0.8)
	assert.Less(t, res.AvgRelativeError, 0.2)
}
