package plot

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Config holds chart rendering settings.
type Config struct {
	Width       int
	Height      int
	StrokeColor drawing.Color
	StrokeWidth float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the fixed chart contract defaults.
func DefaultConfig() Config {
	return Config{
		Width:       1024,
		Height:      768,
		StrokeColor: chart.ColorRed,
		StrokeWidth: 1,
	}
}

// WithSize sets the output image dimensions in pixels.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.Width = width
		}
		if height > 0 {
			cfg.Height = height
		}
	}
}

// WithStrokeColor sets the polyline color.
func WithStrokeColor(c drawing.Color) Option {
	return func(cfg *Config) {
		cfg.StrokeColor = c
	}
}

// WithStrokeWidth sets the polyline width in pixels.
func WithStrokeWidth(px float64) Option {
	return func(cfg *Config) {
		if px > 0 {
			cfg.StrokeWidth = px
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
