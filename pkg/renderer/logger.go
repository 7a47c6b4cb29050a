package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-reference-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to a diagnostic stream
type DefaultLogger struct {
	w io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.w, format, args...)
}

// NewDefaultLogger creates a logger writing to w
func NewDefaultLogger(w io.Writer) core.Logger {
	return &DefaultLogger{w: w}
}

// discardLogger drops everything
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}
