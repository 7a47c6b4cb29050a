package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-reference-raytracer/pkg/core"
)

// maxIntensity keeps a saturated channel at 255 after scaling by 256
const maxIntensity = 0.999

// EncodeColor averages an accumulated color over its sample count and maps each
// channel to [0,255]. Out-of-range radiance is clamped, never wrapped.
func EncodeColor(colorSum core.Vec3, samples int, gammaCorrect bool) (r, g, b int) {
	c := colorSum.Divide(float64(samples)).Clamp(0, 1)

	if gammaCorrect {
		c = c.GammaCorrect(2.0)
	}

	c = c.Clamp(0, maxIntensity)
	return int(256 * c.X), int(256 * c.Y), int(256 * c.Z)
}

// PixelWriter receives encoded pixels in raster order: top scanline first,
// left to right within a scanline
type PixelWriter interface {
	WriteHeader(width, height int) error
	WritePixel(r, g, b int) error
	Flush() error
}

// PPMWriter streams the ASCII portable pixmap (P3) format
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a PPM writer on top of w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the magic token, dimensions and maximum channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	if _, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	return nil
}

// WritePixel writes one "R G B" line
func (p *PPMWriter) WritePixel(r, g, b int) error {
	if _, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b); err != nil {
		return fmt.Errorf("failed to write PPM pixel: %w", err)
	}
	return nil
}

// Flush writes any buffered output
func (p *PPMWriter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// PNGWriter collects pixels into an image and encodes it as PNG on Flush
type PNGWriter struct {
	w    io.Writer
	img  *image.RGBA
	next int
}

// NewPNGWriter creates a PNG writer on top of w
func NewPNGWriter(w io.Writer) *PNGWriter {
	return &PNGWriter{w: w}
}

// WriteHeader allocates the image
func (p *PNGWriter) WriteHeader(width, height int) error {
	p.img = image.NewRGBA(image.Rect(0, 0, width, height))
	p.next = 0
	return nil
}

// WritePixel stores the next pixel in raster order
func (p *PNGWriter) WritePixel(r, g, b int) error {
	if p.img == nil {
		return fmt.Errorf("png writer: pixel written before header")
	}
	width := p.img.Bounds().Dx()
	if p.next >= width*p.img.Bounds().Dy() {
		return fmt.Errorf("png writer: more pixels than the %dx%d image holds", width, p.img.Bounds().Dy())
	}
	p.img.SetRGBA(p.next%width, p.next/width, color.RGBA{
		R: uint8(r),
		G: uint8(g),
		B: uint8(b),
		A: 255,
	})
	p.next++
	return nil
}

// Flush encodes the collected image
func (p *PNGWriter) Flush() error {
	if p.img == nil {
		return fmt.Errorf("png writer: flush before header")
	}
	if err := png.Encode(p.w, p.img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Image returns the collected image
func (p *PNGWriter) Image() *image.RGBA {
	return p.img
}
