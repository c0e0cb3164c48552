// Package plot renders (x, y) point sequences as PNG line charts.
//
// The default chart is the toolkit's fixed contract: 1024x768, white
// background, a single red polyline, axis bounds at the exact min/max
// of the data. The encoded PNG is opaque 8-bit truecolor with no alpha
// channel. Functional options override size and stroke for callers
// that need to deviate from the defaults.
package plot
