// Package spectrum provides forward/inverse Fourier transforms and
// spectrum-domain utilities over separated real/imaginary slices.
//
// The public surface deals in plain []float64 pairs rather than
// []complex128 so results pair directly with frequency axes and chart
// inputs. Transforms are unnormalized on the forward path (output
// magnitude scales with the input length), matching common FFT library
// convention; the inverse path folds in the 1/N scaling so a
// forward/inverse round trip reconstructs the input.
//
// Transform lengths are unconstrained: power-of-two lengths run on an
// algo-fft plan, every other length on gonum's complex FFT. Both
// backends produce the identical bin layout (bin 0 = DC, ascending
// positive frequencies up to N/2, negative frequencies after).
package spectrum
