package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Magnitude computes |X[k]| = sqrt(re[k]^2 + im[k]^2) for each bin.
//
// The slices must have equal length. Uses SIMD-optimized
// implementations when available (AVX2, SSE2, NEON).
func Magnitude(re, im []float64) ([]float64, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(re), len(im))
	}
	if len(re) == 0 {
		return nil, nil
	}

	out := make([]float64, len(re))
	vecmath.Magnitude(out, re, im)
	return out, nil
}

// Power computes |X[k]|^2 = re[k]^2 + im[k]^2 for each bin.
func Power(re, im []float64) ([]float64, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(re), len(im))
	}
	if len(re) == 0 {
		return nil, nil
	}

	out := make([]float64, len(re))
	vecmath.Power(out, re, im)
	return out, nil
}

// Phase computes arg(X[k]) for each bin in radians.
func Phase(re, im []float64) ([]float64, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(re), len(im))
	}
	if len(re) == 0 {
		return nil, nil
	}

	out := make([]float64, len(re))
	for i := range out {
		out[i] = math.Atan2(im[i], re[i])
	}
	return out, nil
}
