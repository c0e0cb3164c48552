package spectrum

import "fmt"

// FrequencyBins returns the discrete frequency axis for an n-point DFT
// of samples spaced interval seconds apart, in unshifted bin order:
// bin k < n/2 maps to k/(n*interval), bin k >= n/2 to -(n-k)/(n*interval).
//
// The result aligns bin-for-bin with Transform output; apply Shift to
// both for a centered display.
func FrequencyBins(n int, interval float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if !(interval > 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidInterval, interval)
	}

	duration := float64(n) * interval
	out := make([]float64, n)
	half := n / 2
	for k := range out {
		if k < half {
			out[k] = float64(k) / duration
		} else {
			out[k] = -float64(n-k) / duration
		}
	}
	return out, nil
}

// BinWidth returns the frequency spacing between adjacent bins,
// 1/(n*interval), with the same validation as FrequencyBins.
func BinWidth(n int, interval float64) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if !(interval > 0) {
		return 0, fmt.Errorf("%w: %f", ErrInvalidInterval, interval)
	}
	return 1 / (float64(n) * interval), nil
}
