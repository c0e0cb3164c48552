// Package timeseries loads two-column CSV time series into float64
// slices.
//
// The loader is intentionally narrow: a header row followed by records
// whose first two fields are the time stamp and the measured value. It
// is not a general data-loading layer.
package timeseries
