package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/minham/harness"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Check the LSH solution quality against the exact scan",
	RunE:  runCompare,
}

var (
	cmpVectors     int
	cmpLength      int
	cmpSamples     int
	cmpIterations  int
	cmpSampleBits  int
	cmpFilterBits  int
	cmpParallelism int
)

func init() {
	compareCmd.Flags().IntVar(&cmpVectors, "vectors", 0, "number of binary vectors")
	compareCmd.Flags().IntVar(&cmpLength, "length", 0, "length of each binary vector")
	compareCmd.Flags().IntVar(&cmpSamples, "samples", 0, "number of case studies to check")
	compareCmd.Flags().IntVar(&cmpIterations, "iterations", 0, "number of LSH iterations")
	compareCmd.Flags().IntVar(&cmpSampleBits, "sample-bits", 0, "projection sample size K (0 = auto)")
	compareCmd.Flags().IntVar(&cmpFilterBits, "filter-bits", -1, "secondary in-bucket filter size (-1 = off, 0 = auto)")
	compareCmd.Flags().IntVar(&cmpParallelism, "parallelism", 1, "parallel sample workers")

	_ = compareCmd.MarkFlagRequired("vectors")
	_ = compareCmd.MarkFlagRequired("length")
	_ = compareCmd.MarkFlagRequired("samples")
	_ = compareCmd.MarkFlagRequired("iterations")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := harness.Options{
		Vectors:     cmpVectors,
		Length:      cmpLength,
		SampleBits:  cmpSampleBits,
		Iterations:  cmpIterations,
		Samples:     cmpSamples,
		Seed:        seed,
		Parallelism: cmpParallelism,
		Logger:      newLogger(),
	}
	if cmpFilterBits >= 0 {
		fb := cmpFilterBits
		opts.FilterBits = &fb
	}

	result, err := harness.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	fmt.Printf("Hit rate is %.2f%%\n", result.HitRate*100)
	fmt.Printf("Avg. relative error is %.2f%%\n", result.AvgRelativeError*100)
	return nil
}
