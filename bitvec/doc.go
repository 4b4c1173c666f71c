// Package bitvec provides fixed-length binary vectors packed into uint64 words.
//
// Vectors store one bit per dimension and compute Hamming distance with
// POPCNT (math/bits.OnesCount64), which makes the exhaustive intra-bucket
// scans of the estimator cheap even for long vectors.
//
// # Usage
//
//	rng := rand.New(rand.NewSource(42))
//	set, _ := bitvec.Generate(1000, 32, rng)
//	d := set.Distance(0, 1)
package bitvec
