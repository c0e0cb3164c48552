package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestFrequencyBins(t *testing.T) {
	out, err := FrequencyBins(4, 1.0)
	if err != nil {
		t.Fatalf("FrequencyBins error: %v", err)
	}

	want := []float64{0, 0.25, -0.5, -0.25}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-15 {
			t.Fatalf("FrequencyBins = %v, want %v", out, want)
		}
	}
}

func TestFrequencyBinsOddLength(t *testing.T) {
	out, err := FrequencyBins(5, 0.5)
	if err != nil {
		t.Fatalf("FrequencyBins error: %v", err)
	}

	// Duration 2.5s: positive bins 0, 0.4; negative bins -1.2, -0.8, -0.4.
	want := []float64{0, 0.4, -1.2, -0.8, -0.4}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("FrequencyBins = %v, want %v", out, want)
		}
	}
}

func TestFrequencyBinsMatchTransformLayout(t *testing.T) {
	// A sine on bin 3 must peak at the axis value 3/(N*T).
	n := 32
	interval := 1.0 / 256
	in := make([]float64, n)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 3 * float64(i) / float64(n))
	}

	re, im, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	mag, err := Magnitude(re, im)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	bins, err := FrequencyBins(n, interval)
	if err != nil {
		t.Fatalf("FrequencyBins error: %v", err)
	}

	peak := 0
	for k := 1; k < n/2; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	wantHz := 3 / (float64(n) * interval)
	if math.Abs(bins[peak]-wantHz) > 1e-9 {
		t.Fatalf("peak at %f Hz, want %f Hz", bins[peak], wantHz)
	}
}

func TestFrequencyBinsValidation(t *testing.T) {
	if _, err := FrequencyBins(0, 1.0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if _, err := FrequencyBins(4, 0); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	if _, err := FrequencyBins(4, -1); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	if _, err := FrequencyBins(4, math.NaN()); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval for NaN, got %v", err)
	}
}

func TestBinWidth(t *testing.T) {
	w, err := BinWidth(4, 0.25)
	if err != nil {
		t.Fatalf("BinWidth error: %v", err)
	}
	if math.Abs(w-1) > 1e-15 {
		t.Fatalf("BinWidth = %f, want 1", w)
	}

	if _, err := BinWidth(0, 1); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if _, err := BinWidth(4, 0); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}
