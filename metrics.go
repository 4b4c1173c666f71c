package minham

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement it to integrate with a monitoring system; the library itself
// never assumes any particular backend. Implementations must be safe for
// concurrent use: parallel runs record iterations from multiple goroutines.
type MetricsCollector interface {
	// RecordIteration is called after each bucketing iteration.
	// buckets is the number of distinct buckets built, pairs the number of
	// distance computations, cacheHits the candidates skipped because they
	// were already compared in an earlier iteration.
	RecordIteration(buckets, pairs, cacheHits int, duration time.Duration)

	// RecordRun is called once per estimator run. err is nil on success.
	RecordRun(iterations int, duration time.Duration, err error)

	// RecordExactScan is called after an exhaustive reference scan.
	RecordExactScan(pairs int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error)          {}
func (NoopMetricsCollector) RecordExactScan(int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	IterationCount atomic.Int64
	BucketCount    atomic.Int64
	PairCount      atomic.Int64
	CacheHitCount  atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunTotalNanos  atomic.Int64
	ExactScanCount atomic.Int64
	ExactPairCount atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(buckets, pairs, cacheHits int, _ time.Duration) {
	b.IterationCount.Add(1)
	b.BucketCount.Add(int64(buckets))
	b.PairCount.Add(int64(pairs))
	b.CacheHitCount.Add(int64(cacheHits))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordExactScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExactScan(pairs int, _ time.Duration) {
	b.ExactScanCount.Add(1)
	b.ExactPairCount.Add(int64(pairs))
}
