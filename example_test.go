package minham_test

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/hupe1980/minham"
	"github.com/hupe1980/minham/bitvec"
)

func ExampleExactMinHamming() {
	set, err := bitvec.SetFromBits([][]int{
		{1, 0, 0, 0},
		{1, 0, 1, 0},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	})
	if err != nil {
		log.Fatal(err)
	}

	result, err := minham.ExactMinHamming(set)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Distance, result.I, result.J)
	// Output: 1 0 1
}

func ExampleEstimator_Run() {
	rng := rand.New(rand.NewSource(42))
	set, err := bitvec.Generate(1000, 32, rng)
	if err != nil {
		log.Fatal(err)
	}

	est, err := minham.LSH().
		Iterations(10).
		Seed(42).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	result, err := est.Run(context.Background(), set)
	if err != nil {
		log.Fatal(err)
	}

	exact, err := minham.ExactMinHamming(set)
	if err != nil {
		log.Fatal(err)
	}

	// The estimate only ever observes real pair distances, so it never
	// undershoots the exact minimum.
	fmt.Println(result.Distance >= exact.Distance)
	// Output: true
}
