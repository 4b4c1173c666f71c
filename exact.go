package minham

import (
	"fmt"
	"time"

	"github.com/hupe1980/minham/bitvec"
)

// ExactMinHamming computes the true minimum pairwise Hamming distance by
// exhaustive O(N²) comparison. It exists to validate the estimator; its
// cost on large sets is the reason the estimator exists, so production
// paths should not call it.
//
// Ties keep the first pair found in index order.
func ExactMinHamming(set bitvec.Set, opt ...Option) (Estimate, error) {
	opts := defaultOptions()
	for _, o := range opt {
		o(&opts)
	}

	if set.Len() < 2 {
		return Estimate{}, fmt.Errorf("%w: got %d", ErrInsufficientData, set.Len())
	}

	start := time.Now()
	best := newEstimate(set.Length())
	pairs := 0

	for i := 0; i < set.Len(); i++ {
		for j := i + 1; j < set.Len(); j++ {
			pairs++
			if d := set.Distance(i, j); d < best.Distance {
				best.Distance, best.I, best.J = d, i, j
			}
		}
	}

	opts.metrics.RecordExactScan(pairs, time.Since(start))
	return best, nil
}
