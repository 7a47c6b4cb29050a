package renderer

import (
	"errors"
	"fmt"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	AspectRatio     float64 // Requested width / height, before height truncation
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Seed            int64   // Seed for the render's random stream
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return NewSamplingConfig(400, 16.0/9.0, 100, 50)
}

// NewSamplingConfig derives the image height from the width and aspect ratio,
// truncating toward zero
func NewSamplingConfig(width int, aspectRatio float64, samplesPerPixel, maxDepth int) SamplingConfig {
	return SamplingConfig{
		Width:           width,
		Height:          int(float64(width) / aspectRatio),
		AspectRatio:     aspectRatio,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Seed:            42, // Deterministic by default
	}
}

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid sampling config")

// Validate checks that the configuration can drive a render.
// Pixel coordinates are divided by (size - 1), so both dimensions need at least two pixels.
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width < 2:
		return fmt.Errorf("%w: width must be at least 2, got %d", ErrInvalidConfig, c.Width)
	case c.Height < 2:
		return fmt.Errorf("%w: height must be at least 2, got %d", ErrInvalidConfig, c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 1:
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}
