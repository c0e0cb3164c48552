package spectrum

import "fmt"

// Shift returns a copy of values left-rotated by floor(len/2), moving
// the element at index floor(len/2) to index 0. Applied to unshifted
// DFT bins this centers the DC component for display.
//
// Sequences of length 0 or 1 rotate to themselves.
func Shift(values []float64) []float64 {
	out := make([]float64, len(values))
	half := len(values) / 2
	n := copy(out, values[half:])
	copy(out[n:], values[:half])
	return out
}

// Unshift reverses Shift: a copy of values right-rotated by
// floor(len/2). Unshift(Shift(x)) equals x for both even and odd
// lengths.
func Unshift(values []float64) []float64 {
	out := make([]float64, len(values))
	half := len(values) / 2
	n := copy(out, values[len(values)-half:])
	copy(out[n:], values[:len(values)-half])
	return out
}

// ShiftPair rotates a real/imaginary pair by the offset computed once
// from their shared length, keeping the two components aligned.
//
// Mismatched lengths are rejected: rotating the components by different
// amounts would silently decouple them.
func ShiftPair(re, im []float64) ([]float64, []float64, error) {
	if len(re) != len(im) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(re), len(im))
	}
	return Shift(re), Shift(im), nil
}
