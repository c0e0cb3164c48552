package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Errors returned by spectrum functions.
var (
	ErrLengthMismatch  = errors.New("spectrum: real and imaginary lengths differ")
	ErrInvalidLength   = errors.New("spectrum: length must be positive")
	ErrInvalidInterval = errors.New("spectrum: sampling interval must be positive")
)

// Transform computes the forward DFT of a real-valued sequence.
//
// Each input sample is treated as a complex number with zero imaginary
// part and transformed at length exactly len(samples), without padding
// or truncation. The returned slices hold the real and imaginary parts
// in unshifted bin order. An empty input yields empty outputs.
func Transform(samples []float64) ([]float64, []float64, error) {
	n := len(samples)
	re := make([]float64, n)
	im := make([]float64, n)
	if n == 0 {
		return re, im, nil
	}

	buf := make([]complex128, n)
	for i, x := range samples {
		buf[i] = complex(x, 0)
	}

	if err := TransformComplex(buf); err != nil {
		return nil, nil, err
	}

	for i, c := range buf {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, nil
}

// Inverse computes the inverse DFT of separated real/imaginary bins and
// returns the real part of the reconstructed sequence.
//
// The result is scaled by 1/N, so Inverse(Transform(x)) recovers x up
// to floating-point error.
func Inverse(re, im []float64) ([]float64, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(re), len(im))
	}

	n := len(re)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	buf := make([]complex128, n)
	for i := range buf {
		buf[i] = complex(re[i], im[i])
	}

	if err := InverseComplex(buf); err != nil {
		return nil, err
	}

	for i, c := range buf {
		out[i] = real(c)
	}
	return out, nil
}

// TransformComplex computes the unnormalized forward DFT of buf in place.
//
// A zero-length buffer is a no-op.
func TransformComplex(buf []complex128) error {
	n := len(buf)
	if n == 0 {
		return nil
	}

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return fmt.Errorf("spectrum: create fft plan: %w", err)
		}
		if err := plan.Forward(buf, buf); err != nil {
			return fmt.Errorf("spectrum: forward fft: %w", err)
		}
		return nil
	}

	// Mixed-radix path for lengths the plan backend does not cover.
	fft := fourier.NewCmplxFFT(n)
	copy(buf, fft.Coefficients(make([]complex128, n), buf))
	return nil
}

// InverseComplex computes the inverse DFT of buf in place, scaled by 1/N.
func InverseComplex(buf []complex128) error {
	n := len(buf)
	if n == 0 {
		return nil
	}

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return fmt.Errorf("spectrum: create fft plan: %w", err)
		}
		// Plan.Inverse folds the 1/N scaling in.
		if err := plan.Inverse(buf, buf); err != nil {
			return fmt.Errorf("spectrum: inverse fft: %w", err)
		}
		return nil
	}

	fft := fourier.NewCmplxFFT(n)
	seq := fft.Sequence(make([]complex128, n), buf)
	scale := complex(1/float64(n), 0)
	for i, c := range seq {
		buf[i] = c * scale
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
