package minham

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/minham/bitvec"
	"github.com/hupe1980/minham/internal/pairset"
	"github.com/hupe1980/minham/lsh"
)

// Estimator approximates the minimum pairwise Hamming distance of a vector
// set by repeated LSH bucketing. Construct it with NewEstimator or the
// fluent LSH builder; a single Estimator can run many sets.
type Estimator struct {
	opts options
}

// NewEstimator creates an Estimator with the given options.
func NewEstimator(opt ...Option) *Estimator {
	opts := defaultOptions()
	for _, o := range opt {
		o(&opts)
	}
	return &Estimator{opts: opts}
}

// Run estimates the minimum pairwise Hamming distance of the set.
//
// It fails with ErrInsufficientData for sets of fewer than two vectors and
// with ErrInvalidParameter for out-of-range sample bits, iterations or
// filter bits. Failures are terminal: no partial estimate is returned.
func (e *Estimator) Run(ctx context.Context, set bitvec.Set) (Estimate, error) {
	start := time.Now()

	est, err := e.run(ctx, set)

	e.opts.metrics.RecordRun(e.opts.iterations, time.Since(start), err)
	e.opts.logger.LogRun(ctx, est, time.Since(start), err)

	if err != nil {
		return Estimate{}, err
	}
	return est, nil
}

func (e *Estimator) run(ctx context.Context, set bitvec.Set) (Estimate, error) {
	if set.Len() < 2 {
		return Estimate{}, fmt.Errorf("%w: got %d", ErrInsufficientData, set.Len())
	}
	if e.opts.iterations < 1 {
		return Estimate{}, &ErrInvalidIterations{Iterations: e.opts.iterations}
	}

	sampleBits, err := e.resolveSampleBits(set)
	if err != nil {
		return Estimate{}, err
	}
	filterBits, err := e.resolveFilterBits(set)
	if err != nil {
		return Estimate{}, err
	}

	// With exactly two vectors there is only one pair; bucketing could
	// separate it forever, so answer exactly.
	if set.Len() == 2 {
		return Estimate{Distance: set.Distance(0, 1), I: 0, J: 1}, nil
	}

	seed := time.Now().UnixNano()
	if e.opts.seed != nil {
		seed = *e.opts.seed
	}

	if e.opts.parallelism > 1 {
		return e.runParallel(ctx, set, sampleBits, filterBits, seed)
	}
	return e.runSequential(ctx, set, sampleBits, filterBits, seed)
}

func (e *Estimator) runSequential(ctx context.Context, set bitvec.Set, sampleBits, filterBits int, seed int64) (Estimate, error) {
	best := newEstimate(set.Length())

	var seen *pairset.Set
	if e.opts.pairCache {
		seen = pairset.New(set.Len())
	}

	for i := 0; i < e.opts.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Estimate{}, err
		}

		iterStart := time.Now()
		rng := rand.New(rand.NewSource(iterationSeed(seed, i)))

		buckets, pairs, cacheHits, err := e.scanIteration(set, sampleBits, filterBits, rng, seen, &best)
		if err != nil {
			return Estimate{}, err
		}

		e.opts.metrics.RecordIteration(buckets, pairs, cacheHits, time.Since(iterStart))
		e.opts.logger.LogIteration(ctx, i, buckets, pairs, best.Distance)
	}

	return best, nil
}

func (e *Estimator) runParallel(ctx context.Context, set bitvec.Set, sampleBits, filterBits int, seed int64) (Estimate, error) {
	candidates := make([]Estimate, e.opts.iterations)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.parallelism)

	for i := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			iterStart := time.Now()
			rng := rand.New(rand.NewSource(iterationSeed(seed, i)))

			local := newEstimate(set.Length())
			buckets, pairs, cacheHits, err := e.scanIteration(set, sampleBits, filterBits, rng, nil, &local)
			if err != nil {
				return err
			}
			candidates[i] = local

			e.opts.metrics.RecordIteration(buckets, pairs, cacheHits, time.Since(iterStart))
			e.opts.logger.LogIteration(gctx, i, buckets, pairs, local.Distance)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Estimate{}, err
	}

	// Reduce in iteration order with strictly-less updates so the winning
	// pair matches the sequential traversal.
	best := newEstimate(set.Length())
	for _, cand := range candidates {
		if cand.Distance < best.Distance {
			best = cand
		}
	}
	return best, nil
}

// scanIteration runs one bucketing iteration and folds every same-bucket
// pair into best with strictly-less updates. seen, when non-nil, skips
// pairs whose distance was already computed in an earlier iteration; such
// pairs can never strictly improve best again.
func (e *Estimator) scanIteration(set bitvec.Set, sampleBits, filterBits int, rng *rand.Rand, seen *pairset.Set, best *Estimate) (buckets, pairs, cacheHits int, err error) {
	b, err := lsh.Bucketize(set, sampleBits, rng)
	if err != nil {
		return 0, 0, 0, translateError(err)
	}

	var filter []int
	if filterBits > 0 {
		filter, err = lsh.SamplePositions(set.Length(), filterBits, rng)
		if err != nil {
			return 0, 0, 0, translateError(err)
		}
	}

	for members := range b.All() {
		if len(members) < 2 {
			continue
		}
		for x := 0; x < len(members); x++ {
			for y := x + 1; y < len(members); y++ {
				i, j := members[x], members[y]
				if filter != nil && !lsh.Agree(set.At(i), set.At(j), filter) {
					continue
				}
				if seen != nil && !seen.Visit(i, j) {
					cacheHits++
					continue
				}
				pairs++
				if d := set.Distance(i, j); d < best.Distance {
					best.Distance, best.I, best.J = d, i, j
				}
			}
		}
	}

	return b.Len(), pairs, cacheHits, nil
}

func (e *Estimator) resolveSampleBits(set bitvec.Set) (int, error) {
	if e.opts.sampleBits != nil {
		k := *e.opts.sampleBits
		if k < 1 || k > set.Length() {
			return 0, translateError(&lsh.ErrInvalidSampleBits{SampleBits: k, Length: set.Length()})
		}
		return k, nil
	}

	// Heuristic: round(log2(N / log2 N)) projection bits yield about
	// N/log2(N) buckets, so expected bucket size stays near log2(N).
	n := float64(set.Len())
	k := int(math.Round(math.Log2(n / math.Log2(n))))
	return clamp(k, 1, set.Length()), nil
}

func (e *Estimator) resolveFilterBits(set bitvec.Set) (int, error) {
	if e.opts.filterBits == nil {
		return 0, nil
	}

	fb := *e.opts.filterBits
	switch {
	case fb < 0:
		return 0, &ErrInvalidFilterBits{FilterBits: fb}
	case fb == 0:
		return clamp(int(math.Round(math.Log2(float64(set.Length())))), 1, set.Length()), nil
	case fb > set.Length():
		return 0, translateError(&lsh.ErrInvalidSampleBits{SampleBits: fb, Length: set.Length()})
	default:
		return fb, nil
	}
}

// iterationSeed derives an independent per-iteration seed from the root
// seed. Deriving instead of drawing sequentially keeps iterations
// order-free, which is what lets the parallel mode reproduce sequential
// results.
func iterationSeed(seed int64, iteration int) int64 {
	gamma := uint64(0x9E3779B97F4A7C15) // splitmix64 increment
	return seed + int64(iteration+1)*int64(gamma)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
