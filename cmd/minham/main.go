// Command minham estimates the minimum pairwise Hamming distance of random
// binary vector sets using LSH and scores the estimate against the exact
// reference.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/minham"
)

var (
	flagSeed    int64
	flagVerbose bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "minham",
	Short: "Minimum Hamming distance estimation using LSH",
	Long: `minham estimates the minimum pairwise Hamming distance among random
binary vectors with locality-sensitive hashing, avoiding the full O(N²)
scan, and can compare the estimate against the exact answer.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json-logs", false, "log in JSON format")
}

func newLogger() *minham.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	if flagJSON {
		return minham.NewJSONLogger(level)
	}
	if flagVerbose {
		return minham.NewTextLogger(level)
	}
	return minham.NoopLogger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
