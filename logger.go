package minham

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with estimator-specific helpers for consistent
// field names across the library.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil,
// a default text handler writing to stderr is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithSampleBits adds the projection sample size to the logger.
func (l *Logger) WithSampleBits(k int) *Logger {
	return &Logger{Logger: l.Logger.With("sample_bits", k)}
}

// WithIterations adds the iteration count to the logger.
func (l *Logger) WithIterations(i int) *Logger {
	return &Logger{Logger: l.Logger.With("iterations", i)}
}

// WithVectors adds the vector count and length to the logger.
func (l *Logger) WithVectors(n, length int) *Logger {
	return &Logger{Logger: l.Logger.With("vectors", n, "length", length)}
}

// LogIteration logs one bucketing iteration at debug level.
func (l *Logger) LogIteration(ctx context.Context, iteration, buckets, pairs int, best int) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"buckets", buckets,
		"pairs_compared", pairs,
		"best_distance", best,
	)
}

// LogRun logs a completed estimator run.
func (l *Logger) LogRun(ctx context.Context, est Estimate, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "estimation failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "estimation completed",
		"distance", est.Distance,
		"pair_i", est.I,
		"pair_j", est.J,
		"duration", duration,
	)
}
