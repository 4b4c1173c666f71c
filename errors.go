package minham

import (
	"errors"
	"fmt"

	"github.com/hupe1980/minham/lsh"
)

var (
	// ErrInvalidParameter is the umbrella for out-of-range configuration
	// (sample bits, iterations, filter bits). Concrete causes can be
	// accessed via errors.As.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientData is returned when a set holds fewer than two
	// vectors; the minimum pairwise distance is undefined there.
	ErrInsufficientData = errors.New("insufficient data: at least two vectors required")
)

// ErrInvalidIterations indicates a non-positive iteration count.
type ErrInvalidIterations struct {
	Iterations int
}

func (e *ErrInvalidIterations) Error() string {
	return fmt.Sprintf("invalid iterations: %d (must be >= 1)", e.Iterations)
}

func (e *ErrInvalidIterations) Unwrap() error { return ErrInvalidParameter }

// ErrInvalidFilterBits indicates a negative secondary filter size.
type ErrInvalidFilterBits struct {
	FilterBits int
}

func (e *ErrInvalidFilterBits) Error() string {
	return fmt.Sprintf("invalid filter bits: %d (must be >= 0)", e.FilterBits)
}

func (e *ErrInvalidFilterBits) Unwrap() error { return ErrInvalidParameter }

// translateError normalizes subpackage errors onto the package taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var eis *lsh.ErrInvalidSampleBits
	if errors.As(err, &eis) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return err
}
