package lineart

import (
	"fmt"
	"math"
)

// Config describes a single approximation run.
type Config struct {
	// Order of the Hilbert curve. The curve has 4^Order − 1 lines before
	// cropping.
	Order int
	// Size of the frame the curve is mapped to. The zero value uses the
	// grid's size.
	Frame Size
	// Lines are partitioned into pieces no longer than this before their
	// thickness is estimated.
	MaxSegmentLength float64
	// Whether to round off the curve's corners before partitioning.
	Smooth bool
	// Whether to stretch the grid's contrast to the full intensity range
	// first.
	Stretch bool
	// Renderer turning the thickness profile into strokes.
	Renderer Renderer
	// Maximum number of goroutines used for per-line work. Zero means
	// GOMAXPROCS.
	Workers int
}

var DefaultConfig = Config{
	Order:            8,
	MaxSegmentLength: 1,
	Stretch:          true,
	Renderer:         ContinuousSine{Omega: 1},
}

func (c Config) WithOrder(order int) Config            { c.Order = order; return c }
func (c Config) WithFrame(frame Size) Config           { c.Frame = frame; return c }
func (c Config) WithMaxSegmentLength(l float64) Config { c.MaxSegmentLength = l; return c }
func (c Config) WithSmooth(smooth bool) Config         { c.Smooth = smooth; return c }
func (c Config) WithStretch(stretch bool) Config       { c.Stretch = stretch; return c }
func (c Config) WithRenderer(r Renderer) Config        { c.Renderer = r; return c }
func (c Config) WithWorkers(n int) Config              { c.Workers = n; return c }

// Validate reports the first unusable setting in c.
func (c Config) Validate() error {
	if c.Order < 0 || c.Order > MaxOrder {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOrder, c.Order, MaxOrder)
	}
	if !(c.MaxSegmentLength > 0) || math.IsInf(c.MaxSegmentLength, 0) {
		return fmt.Errorf("%w: max segment length %g", ErrInvalidConfig, c.MaxSegmentLength)
	}
	if c.Frame.IsNaN() || c.Frame.IsInf() || c.Frame.Width < 0 || c.Frame.Height < 0 {
		return fmt.Errorf("%w: frame %s", ErrInvalidConfig, c.Frame)
	}
	if c.Renderer == nil {
		return fmt.Errorf("%w: no renderer", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.Workers)
	}
	return nil
}
