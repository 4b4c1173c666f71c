// Package minham estimates the minimum pairwise Hamming distance among a
// set of fixed-length binary vectors using locality-sensitive hashing.
//
// The exact answer needs O(N²) vector comparisons. The estimator instead
// runs I independent iterations; each samples K random bit positions,
// buckets vectors by their projection onto those positions, and scans pairs
// exhaustively only inside buckets. Only real pair distances are ever
// observed, so the estimate can equal or overestimate the true minimum but
// never undershoot it. More iterations raise the probability that the true
// closest pair collides at least once.
//
// # Quick Start
//
//	rng := rand.New(rand.NewSource(42))
//	set, _ := bitvec.Generate(1000, 32, rng)
//
//	est, _ := minham.LSH().Iterations(10).Seed(42).Build()
//	result, _ := est.Run(ctx, set)
//	fmt.Println(result.Distance, result.I, result.J)
//
// Exact reference for validation:
//
//	truth, _ := minham.ExactMinHamming(set)
//
// # Determinism
//
// All randomness flows from explicit seeds. A fixed seed yields an
// identical Estimate across runs, including the reported pair, and the
// parallel mode reduces per-iteration candidates in iteration order so it
// matches the sequential result.
package minham
