package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	out, err := Magnitude([]float64{3, 0, -1}, []float64{4, 2, -1})
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}

	want := []float64{5, 2, math.Sqrt2}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("Magnitude = %v, want %v", out, want)
		}
	}
}

func TestMagnitudeLengthMismatch(t *testing.T) {
	_, err := Magnitude([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestMagnitudeEmptyInput(t *testing.T) {
	out, err := Magnitude(nil, nil)
	if err != nil {
		t.Fatalf("Magnitude(nil, nil) error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil output, got %v", out)
	}
}

func TestPower(t *testing.T) {
	out, err := Power([]float64{3, 1}, []float64{4, 1})
	if err != nil {
		t.Fatalf("Power error: %v", err)
	}
	if math.Abs(out[0]-25) > 1e-12 || math.Abs(out[1]-2) > 1e-12 {
		t.Fatalf("Power = %v, want [25 2]", out)
	}

	if _, err := Power([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestPhase(t *testing.T) {
	out, err := Phase([]float64{3, 0}, []float64{4, -1})
	if err != nil {
		t.Fatalf("Phase error: %v", err)
	}
	if math.Abs(out[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0] = %f, want %f", out[0], math.Atan2(4, 3))
	}
	if math.Abs(out[1]+math.Pi/2) > 1e-12 {
		t.Fatalf("Phase[1] = %f, want %f", out[1], -math.Pi/2)
	}

	if _, err := Phase(nil, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}
