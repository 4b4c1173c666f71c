package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/minham"
	"github.com/hupe1980/minham/bitvec"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the minimum Hamming distance of a random vector set",
	RunE:  runEstimate,
}

var (
	estVectors     int
	estLength      int
	estIterations  int
	estSampleBits  int
	estFilterBits  int
	estParallelism int
)

func init() {
	estimateCmd.Flags().IntVar(&estVectors, "vectors", 0, "number of binary vectors")
	estimateCmd.Flags().IntVar(&estLength, "length", 0, "length of each binary vector")
	estimateCmd.Flags().IntVar(&estIterations, "iterations", 0, "number of LSH iterations")
	estimateCmd.Flags().IntVar(&estSampleBits, "sample-bits", 0, "projection sample size K (0 = auto)")
	estimateCmd.Flags().IntVar(&estFilterBits, "filter-bits", -1, "secondary in-bucket filter size (-1 = off, 0 = auto)")
	estimateCmd.Flags().IntVar(&estParallelism, "parallelism", 1, "parallel iteration workers")

	_ = estimateCmd.MarkFlagRequired("vectors")
	_ = estimateCmd.MarkFlagRequired("length")
	_ = estimateCmd.MarkFlagRequired("iterations")

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	set, err := bitvec.Generate(estVectors, estLength, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	b := minham.LSH().
		Iterations(estIterations).
		Seed(seed).
		Parallelism(estParallelism).
		Logger(newLogger())
	if estSampleBits != 0 {
		b = b.SampleBits(estSampleBits)
	}
	if estFilterBits >= 0 {
		b = b.FilterBits(estFilterBits)
	}

	est, err := b.Build()
	if err != nil {
		return err
	}

	result, err := est.Run(cmd.Context(), set)
	if err != nil {
		return err
	}

	if !result.Found() {
		fmt.Printf("No candidate pair found after %d iterations\n", estIterations)
		return nil
	}

	fmt.Println("Minimum Hamming distance is", result.Distance)
	fmt.Println("V1:", set.At(result.I))
	fmt.Println("V2:", set.At(result.J))
	return nil
}
