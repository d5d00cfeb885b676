package lineart

import (
	"fmt"
	"log/slog"
)

// A Stage is one step of the geometric part of the pipeline. Apply must not
// modify its input.
type Stage struct {
	Name  string
	Apply func(path []Line) ([]Line, error)
}

// CropStage fits the path into frame with [CropToScale].
func CropStage(frame Size) Stage {
	return Stage{
		Name: "crop",
		Apply: func(path []Line) ([]Line, error) {
			return CropToScale(path, frame.Width, frame.Height)
		},
	}
}

// SmoothStage rounds off corners with [SmoothCorners].
func SmoothStage() Stage {
	return Stage{
		Name: "smooth",
		Apply: func(path []Line) ([]Line, error) {
			return SmoothCorners(path), nil
		},
	}
}

// PartitionStage splits lines with [Partition] and drops zero-length lines,
// which have no direction to estimate a thickness along.
func PartitionStage(maxLength float64) Stage {
	return Stage{
		Name: "partition",
		Apply: func(path []Line) ([]Line, error) {
			out := make([]Line, 0, len(path))
			for _, l := range path {
				if l.IsDegenerate() {
					continue
				}
				out = append(out, Partition(l, maxLength)...)
			}
			return out, nil
		},
	}
}

// Stages returns the geometric stages c selects for the given frame, in
// order.
func (c Config) Stages(frame Size) []Stage {
	stages := []Stage{CropStage(frame)}
	if c.Smooth {
		stages = append(stages, SmoothStage())
	}
	return append(stages, PartitionStage(c.MaxSegmentLength))
}

// RunStages applies stages to path in order.
func RunStages(path []Line, stages ...Stage) ([]Line, error) {
	log := Logger()
	for _, st := range stages {
		out, err := st.Apply(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.Name, err)
		}
		log.Debug("stage done", slog.String("stage", st.Name), slog.Int("in", len(path)), slog.Int("out", len(out)))
		path = out
	}
	return path, nil
}

// Result holds the products of a run of [Trace].
type Result struct {
	// The Hilbert curve after all geometric stages, in frame coordinates.
	Path []Line
	// The estimated thickness of each line in Path.
	Thickness []float64
	// The ceiling of all thicknesses, see [MaxThickness].
	MaxThickness float64
	// The rendered zero-width lines.
	Strokes []Line
}

// Trace approximates g with a Hilbert curve as configured by cfg.
//
// g must be at least 2×2 pixels; smaller grids have no area to sample between
// pixels and fail with [ErrDegenerateBounds], as do orders too small to span
// the frame. g is not modified.
func Trace(g *Grid, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g.Width < 2 || g.Height < 2 {
		return nil, fmt.Errorf("%w: %d×%d image", ErrDegenerateBounds, g.Width, g.Height)
	}
	if len(g.Pix) != g.Width*g.Height {
		return nil, fmt.Errorf("%w: %d pixels for a %d×%d grid", ErrInvalidConfig, len(g.Pix), g.Width, g.Height)
	}
	if cfg.Stretch {
		g = g.Stretch()
	}
	frame := cfg.Frame
	if frame.IsZero() {
		frame = g.Size()
	}

	log := Logger()
	raw, err := HilbertPath(cfg.Order)
	if err != nil {
		return nil, err
	}
	log.Debug("generated curve", slog.Int("order", cfg.Order), slog.Int("lines", len(raw)))

	path, err := RunStages(raw, cfg.Stages(frame)...)
	if err != nil {
		return nil, err
	}
	maxTh, err := MaxThickness(frame, path)
	if err != nil {
		return nil, err
	}
	log.Debug("max thickness", slog.Float64("value", maxTh))

	profile, err := EstimateProfile(g, path, maxTh, cfg.Workers)
	if err != nil {
		return nil, err
	}
	r := cfg.Renderer
	if cr, ok := r.(concurrentRenderer); ok && cfg.Workers > 0 {
		r = cr.WithWorkers(cfg.Workers)
	}
	strokes, err := r.Render(path, profile)
	if err != nil {
		return nil, err
	}
	log.Debug("rendered", slog.Int("strokes", len(strokes)))

	return &Result{
		Path:         path,
		Thickness:    profile,
		MaxThickness: maxTh,
		Strokes:      strokes,
	}, nil
}

// Approximate is like [Trace] but only returns the rendered lines.
func Approximate(g *Grid, cfg Config) ([]Line, error) {
	res, err := Trace(g, cfg)
	if err != nil {
		return nil, err
	}
	return res.Strokes, nil
}
