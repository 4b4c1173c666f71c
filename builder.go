// Package minham estimates minimum pairwise Hamming distances via LSH.
//
// This file implements the fluent builder API for configuring estimators.
// The builder is immutable - each method returns a new builder with the
// updated configuration.
package minham

// LSH creates a new estimator builder with default settings.
//
// Example:
//
//	est, err := minham.LSH().
//	    SampleBits(8).
//	    Iterations(20).
//	    Seed(42).
//	    Build()
func LSH() Builder {
	return Builder{iterations: DefaultIterations, parallelism: 1, pairCache: true}
}

// Builder is an immutable fluent builder for Estimators.
type Builder struct {
	sampleBits  *int
	iterations  int
	seed        *int64
	filterBits  *int
	pairCache   bool
	parallelism int
	logger      *Logger
	metrics     MetricsCollector
}

// SampleBits sets the projection sample size K. Leave unset to keep the
// auto heuristic.
func (b Builder) SampleBits(k int) Builder {
	b.sampleBits = &k
	return b
}

// Iterations sets the number of bucketing iterations.
func (b Builder) Iterations(i int) Builder {
	b.iterations = i
	return b
}

// Seed fixes the random seed for reproducible runs.
func (b Builder) Seed(seed int64) Builder {
	b.seed = &seed
	return b
}

// FilterBits enables the secondary in-bucket filter (0 = auto heuristic).
func (b Builder) FilterBits(n int) Builder {
	b.filterBits = &n
	return b
}

// WithoutPairCache disables the seen-pair cache.
func (b Builder) WithoutPairCache() Builder {
	b.pairCache = false
	return b
}

// Parallelism fans iterations out over up to n goroutines.
func (b Builder) Parallelism(n int) Builder {
	b.parallelism = n
	return b
}

// Logger sets the logger.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector.
func (b Builder) Metrics(m MetricsCollector) Builder {
	b.metrics = m
	return b
}

// Build creates the Estimator. Configuration that depends on the input set
// (sample bits vs. vector length, set size) is validated at Run time;
// Build rejects what it can check statically.
func (b Builder) Build() (*Estimator, error) {
	if b.iterations < 1 {
		return nil, &ErrInvalidIterations{Iterations: b.iterations}
	}
	if b.filterBits != nil && *b.filterBits < 0 {
		return nil, &ErrInvalidFilterBits{FilterBits: *b.filterBits}
	}

	opt := []Option{
		WithIterations(b.iterations),
		WithParallelism(b.parallelism),
	}
	if b.sampleBits != nil {
		opt = append(opt, WithSampleBits(*b.sampleBits))
	}
	if b.seed != nil {
		opt = append(opt, WithSeed(*b.seed))
	}
	if b.filterBits != nil {
		opt = append(opt, WithFilterBits(*b.filterBits))
	}
	if !b.pairCache {
		opt = append(opt, WithoutPairCache())
	}
	if b.logger != nil {
		opt = append(opt, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opt = append(opt, WithMetrics(b.metrics))
	}

	return NewEstimator(opt...), nil
}
