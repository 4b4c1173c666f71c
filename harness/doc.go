// Package harness scores the LSH estimator against the exact reference.
//
// A run repeats {generate a fresh vector set, compute the exact minimum
// Hamming distance, estimate it with LSH} over S independent samples and
// aggregates two statistics: the hit rate (fraction of samples where the
// estimate matches the exact distance) and the average relative error over
// samples whose exact distance is non-zero. Approximation error is the
// expected behavior of the algorithm, so it is only ever reported as a
// statistic here, never raised as a fault.
package harness
