package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Errors returned by timeseries functions.
var (
	ErrTooFewSamples   = errors.New("timeseries: need at least 2 samples")
	ErrInvalidInterval = errors.New("timeseries: sampling interval must be positive")
)

// Series holds a uniformly sampled time series as parallel slices.
// Time and Values have equal length by construction.
type Series struct {
	Time   []float64
	Values []float64
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.Time) }

// SampleInterval returns the spacing between the first two time stamps.
// The series is assumed uniformly sampled.
func (s Series) SampleInterval() (float64, error) {
	if len(s.Time) < 2 {
		return 0, fmt.Errorf("%w: %d", ErrTooFewSamples, len(s.Time))
	}
	dt := s.Time[1] - s.Time[0]
	if !(dt > 0) {
		return 0, fmt.Errorf("%w: %f", ErrInvalidInterval, dt)
	}
	return dt, nil
}

// Load reads a CSV file into a Series. See Read for the format.
func Load(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("timeseries: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses CSV data with a header row. For every record with at
// least two fields, fields 0 and 1 are trimmed of surrounding
// whitespace and parsed as float64 into Time and Values, in input
// order. Records with fewer than two fields are skipped.
//
// Any structural or numeric error aborts the read; no partial series
// is returned.
func Read(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return Series{}, nil
		}
		return Series{}, fmt.Errorf("timeseries: read header: %w", err)
	}

	var s Series
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Series{}, fmt.Errorf("timeseries: row %d: %w", row, err)
		}
		if len(record) < 2 {
			continue
		}

		t, err := parseField(record[0], row, 1)
		if err != nil {
			return Series{}, err
		}
		v, err := parseField(record[1], row, 2)
		if err != nil {
			return Series{}, err
		}

		s.Time = append(s.Time, t)
		s.Values = append(s.Values, v)
	}
	return s, nil
}

func parseField(field string, row, col int) (float64, error) {
	trimmed := strings.TrimSpace(field)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("timeseries: row %d column %d: invalid number %q: %w", row, col, trimmed, err)
	}
	return v, nil
}
