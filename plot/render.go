package plot

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Errors returned by rendering functions.
var (
	ErrNoPoints     = errors.New("plot: point sequence is empty")
	ErrTooFewPoints = errors.New("plot: line plot needs at least 2 points")
)

// Point is one (x, y) chart coordinate.
type Point struct {
	X float64
	Y float64
}

// Line renders points as a titled, axis-labeled line chart and returns
// the PNG-encoded image.
//
// Points are connected in input order. Axis bounds are the exact
// min/max of the x and y values; a degenerate axis (min equal to max)
// is widened by 0.5 on each side so the span can be projected onto
// pixels. Fewer than two points cannot form a polyline and fail with
// ErrNoPoints or ErrTooFewPoints.
func Line(points []Point, xLabel, yLabel, title string, opts ...Option) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewPoints, len(points))
	}

	cfg := ApplyOptions(opts...)

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	graph := chart.Chart{
		Title:  title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Background: chart.Style{
			FillColor: chart.ColorWhite,
		},
		Canvas: chart.Style{
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			Name:  xLabel,
			Range: axisRange(xs),
		},
		YAxis: chart.YAxis{
			Name:  yLabel,
			Range: axisRange(ys),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: cfg.StrokeColor,
					StrokeWidth: cfg.StrokeWidth,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("plot: render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Zip pairs x and y slices into a point sequence for Line.
func Zip(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("plot: x/y length mismatch: %d != %d", len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range points {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return points, nil
}

func axisRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}
