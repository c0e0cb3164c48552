// Command spectraplot renders time-domain and spectrum line charts from
// a two-column CSV time series.
//
// Usage:
//
//	spectraplot -in data.csv
//	spectraplot -in data.csv -time-out time.png -spectrum-out spectrum.png
//	spectraplot -demo -freq 50 -rate 1000 -samples 512
//
// The input CSV needs a header row and two numeric columns (time,
// value). With -demo a sine wave is synthesized instead. The spectrum
// chart shows the centered magnitude spectrum over its frequency axis.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-spectra/plot"
	"github.com/cwbudde/algo-spectra/signal"
	"github.com/cwbudde/algo-spectra/spectrum"
	"github.com/cwbudde/algo-spectra/timeseries"
)

func main() {
	in := flag.String("in", "", "input CSV file with time and value columns")
	demo := flag.Bool("demo", false, "synthesize a sine wave instead of reading a CSV")
	freq := flag.Float64("freq", 50, "demo sine frequency in Hz")
	amp := flag.Float64("amp", 1, "demo sine amplitude")
	rate := flag.Float64("rate", 1000, "demo sample rate in Hz")
	samples := flag.Int("samples", 512, "demo sample count")
	timeOut := flag.String("time-out", "time.png", "output PNG for the time-domain chart")
	specOut := flag.String("spectrum-out", "spectrum.png", "output PNG for the spectrum chart")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spectraplot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders time-domain and spectrum charts from a CSV time series.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spectraplot -in data.csv\n")
		fmt.Fprintf(os.Stderr, "  spectraplot -demo -freq 50 -rate 1000 -samples 512\n")
	}
	flag.Parse()

	series, err := loadSeries(*in, *demo, *freq, *amp, *rate, *samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(series, *timeOut, *specOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadSeries(in string, demo bool, freq, amp, rate float64, samples int) (timeseries.Series, error) {
	if demo {
		return demoSeries(freq, amp, rate, samples)
	}
	if in == "" {
		return timeseries.Series{}, fmt.Errorf("either -in or -demo is required (see -h)")
	}
	return timeseries.Load(in)
}

func demoSeries(freq, amp, rate float64, samples int) (timeseries.Series, error) {
	g := signal.NewGenerator(signal.WithSampleRate(rate))
	values, err := g.Sine(freq, amp, samples)
	if err != nil {
		return timeseries.Series{}, err
	}

	times := make([]float64, samples)
	for i := range times {
		times[i] = float64(i) / rate
	}
	return timeseries.Series{Time: times, Values: values}, nil
}

func run(series timeseries.Series, timeOut, specOut string) error {
	interval, err := series.SampleInterval()
	if err != nil {
		return err
	}

	re, im, err := spectrum.Transform(series.Values)
	if err != nil {
		return err
	}
	shiftedRe, shiftedIm, err := spectrum.ShiftPair(re, im)
	if err != nil {
		return err
	}
	magnitude, err := spectrum.Magnitude(shiftedRe, shiftedIm)
	if err != nil {
		return err
	}
	bins, err := spectrum.FrequencyBins(series.Len(), interval)
	if err != nil {
		return err
	}
	axis := spectrum.Shift(bins)

	if err := writeChart(timeOut, series.Time, series.Values, "Time", "Measured Data", "Time Series"); err != nil {
		return err
	}
	if err := writeChart(specOut, axis, magnitude, "Frequency", "Magnitude", "Magnitude Spectrum"); err != nil {
		return err
	}

	fmt.Printf("wrote %s and %s (%d samples, %.6g s interval)\n", timeOut, specOut, series.Len(), interval)
	return nil
}

func writeChart(path string, xs, ys []float64, xLabel, yLabel, title string) error {
	points, err := plot.Zip(xs, ys)
	if err != nil {
		return err
	}
	buf, err := plot.Line(points, xLabel, yLabel, title)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
