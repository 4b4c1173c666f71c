package harness

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/minham"
	"github.com/hupe1980/minham/bitvec"
)

// ErrInvalidSamples indicates a non-positive sample count.
type ErrInvalidSamples struct {
	Samples int
}

func (e *ErrInvalidSamples) Error() string {
	return fmt.Sprintf("invalid samples: %d (must be >= 1)", e.Samples)
}

func (e *ErrInvalidSamples) Unwrap() error { return minham.ErrInvalidParameter }

// Options configures a comparison run.
type Options struct {
	// Vectors is the number of vectors generated per sample.
	Vectors int

	// Length is the bit length of each vector.
	Length int

	// SampleBits is the projection sample size K; 0 keeps the estimator's
	// auto heuristic.
	SampleBits int

	// Iterations is the LSH iteration count per sample.
	Iterations int

	// FilterBits enables the estimator's secondary in-bucket filter when
	// non-nil (0 = auto heuristic).
	FilterBits *int

	// Samples is the number of independent generate/exact/estimate trials.
	Samples int

	// Seed drives all randomness; per-sample seeds derive from it, so a
	// fixed seed reproduces the full Result.
	Seed int64

	// Parallelism fans samples out over up to n goroutines. Samples share
	// no state, so this never changes the Result.
	Parallelism int

	// Logger receives throttled progress output. Defaults to no-op.
	Logger *minham.Logger

	// Metrics is passed through to the estimator and exact scans.
	Metrics minham.MetricsCollector
}

// Result aggregates a comparison run.
type Result struct {
	// Samples is the number of trials executed.
	Samples int

	// Hits counts trials where the estimate equals the exact distance.
	Hits int

	// HitRate is Hits / Samples, in [0, 1].
	HitRate float64

	// AvgRelativeError is the mean of (estimate-exact)/exact over trials
	// with exact > 0 (hits contribute zero). Zero when no such trial
	// exists.
	AvgRelativeError float64
}

// sampleOutcome holds one trial's distances.
type sampleOutcome struct {
	exact    int
	estimate int
}

// Run executes the comparison harness.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Samples < 1 {
		return Result{}, &ErrInvalidSamples{Samples: opts.Samples}
	}

	logger := opts.Logger
	if logger == nil {
		logger = minham.NoopLogger()
	}
	logger = logger.WithVectors(opts.Vectors, opts.Length).WithIterations(opts.Iterations)

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	outcomes := make([]sampleOutcome, opts.Samples)
	progress := rate.Sometimes{Interval: time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for s := range outcomes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcome, err := runSample(gctx, opts, sampleSeed(opts.Seed, s))
			if err != nil {
				return fmt.Errorf("sample %d: %w", s, err)
			}
			outcomes[s] = outcome

			progress.Do(func() {
				logger.InfoContext(gctx, "comparison progress", "sample", s)
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return aggregate(outcomes), nil
}

// runSample executes one independent trial: a fresh vector set scored by
// both the exact scan and the estimator.
func runSample(ctx context.Context, opts Options, seed int64) (sampleOutcome, error) {
	rng := rand.New(rand.NewSource(seed))

	set, err := bitvec.Generate(opts.Vectors, opts.Length, rng)
	if err != nil {
		return sampleOutcome{}, err
	}

	exactOpt := []minham.Option{}
	if opts.Metrics != nil {
		exactOpt = append(exactOpt, minham.WithMetrics(opts.Metrics))
	}
	exact, err := minham.ExactMinHamming(set, exactOpt...)
	if err != nil {
		return sampleOutcome{}, err
	}

	estOpt := []minham.Option{
		minham.WithSeed(seed),
		minham.WithIterations(opts.Iterations),
	}
	if opts.SampleBits != 0 {
		estOpt = append(estOpt, minham.WithSampleBits(opts.SampleBits))
	}
	if opts.FilterBits != nil {
		estOpt = append(estOpt, minham.WithFilterBits(*opts.FilterBits))
	}
	if opts.Metrics != nil {
		estOpt = append(estOpt, minham.WithMetrics(opts.Metrics))
	}

	estimate, err := minham.NewEstimator(estOpt...).Run(ctx, set)
	if err != nil {
		return sampleOutcome{}, err
	}

	return sampleOutcome{exact: exact.Distance, estimate: estimate.Distance}, nil
}

func aggregate(outcomes []sampleOutcome) Result {
	res := Result{Samples: len(outcomes)}

	var relErrors []float64
	for _, o := range outcomes {
		if o.estimate == o.exact {
			res.Hits++
		}
		// Guard against division by zero: duplicate vectors make the
		// exact minimum zero.
		if o.exact > 0 {
			relErrors = append(relErrors, float64(o.estimate-o.exact)/float64(o.exact))
		}
	}

	res.HitRate = float64(res.Hits) / float64(res.Samples)
	if len(relErrors) > 0 {
		res.AvgRelativeError = stat.Mean(relErrors, nil)
	}
	return res
}

// sampleSeed derives an independent seed per sample so trials stay
// reproducible under any parallelism.
func sampleSeed(seed int64, sample int) int64 {
	gamma := uint64(0x9E3779B97F4A7C15) // splitmix64 increment
	return seed + int64(sample+1)*int64(gamma)
}
