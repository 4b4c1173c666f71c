// Package lsh implements the bucketing step of locality-sensitive hashing
// over binary vectors.
//
// One iteration samples a set of distinct bit positions and groups vectors
// by their projection onto those positions. Vectors land in the same bucket
// iff they agree on every sampled position, so close vectors collide with
// higher probability than distant ones. Agreement is necessary but not
// sufficient for being the globally closest pair; repeating iterations with
// fresh samples shrinks that gap.
package lsh
