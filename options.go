package minham

// DefaultIterations is the iteration count used when none is configured.
const DefaultIterations = 10

type options struct {
	sampleBits  *int // nil = auto heuristic
	iterations  int
	seed        *int64 // nil = time-based
	filterBits  *int   // nil = disabled, 0 = auto heuristic
	pairCache   bool
	parallelism int
	logger      *Logger
	metrics     MetricsCollector
}

func defaultOptions() options {
	return options{
		iterations:  DefaultIterations,
		pairCache:   true,
		parallelism: 1,
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
}

// Option configures an Estimator.
type Option func(*options)

// WithSampleBits sets the projection sample size K. Each iteration buckets
// vectors by K randomly chosen bit positions; K must be in [1, length] at
// run time. When unset, K defaults to round(log2(N / log2 N)), clamped to
// the valid range.
func WithSampleBits(k int) Option {
	return func(o *options) {
		o.sampleBits = &k
	}
}

// WithIterations sets the number of bucketing iterations. More iterations
// trade compute for accuracy; the estimate is monotone across them.
func WithIterations(i int) Option {
	return func(o *options) {
		o.iterations = i
	}
}

// WithSeed fixes the random seed. Runs with the same seed, parameters and
// input produce identical Estimates. Without a seed, each run draws a
// time-based one.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithFilterBits enables the secondary filter: each iteration additionally
// samples n bit positions and only computes distances for bucket pairs that
// also agree there. n = 0 selects the round(log2 length) heuristic.
// The filter prunes candidates, so it can raise, never lower, the estimate.
func WithFilterBits(n int) Option {
	return func(o *options) {
		o.filterBits = &n
	}
}

// WithoutPairCache disables the seen-pair cache. By default sequential runs
// remember compared pairs in a Roaring bitmap and skip re-computing them in
// later iterations; disabling only affects speed, never the result.
func WithoutPairCache() Option {
	return func(o *options) {
		o.pairCache = false
	}
}

// WithParallelism fans iterations out over up to n goroutines. Iterations
// are independent (each reads the set and writes a private candidate), and
// the final reduction takes the minimum in iteration order, so results
// match the sequential mode for a fixed seed. Values below 2 keep the
// sequential path.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. Defaults to a no-op collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
