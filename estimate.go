package minham

// Estimate is the best-known minimum Hamming distance together with the
// pair of vector indices achieving it (I < J). It is monotonically
// non-increasing across iterations and only ever reflects distances between
// real pairs, so it can match or overestimate the true minimum, never
// underestimate it.
type Estimate struct {
	Distance int
	I, J     int
}

// Found reports whether any candidate pair was observed. When no bucket
// ever held two vectors, Distance is one past the vector length and the
// indices are -1.
func (e Estimate) Found() bool { return e.I >= 0 }

// newEstimate returns the identity element for min-reduction over a set of
// vectors of the given length.
func newEstimate(length int) Estimate {
	return Estimate{Distance: length + 1, I: -1, J: -1}
}
