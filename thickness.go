package lineart

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaxThickness returns the stroke width at which path, drawn solid, would
// cover an area equal to frame's. It is the ceiling for all thicknesses
// estimated against that frame.
func MaxThickness(frame Size, path []Line) (float64, error) {
	var total float64
	for _, l := range path {
		total += l.Length()
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: cannot normalize %s frame", ErrZeroLength, frame)
	}
	return frame.Area() / total, nil
}

// EstimateThickness returns how thick l has to be drawn to reproduce the
// darkness of the image underneath it.
//
// The footprint is a corridor along l, maxThickness wide. It is sampled at
// max(1, round(|l|)) steps along the line, starting at l.P0, and
// max(1, round(maxThickness)) steps across it, starting maxThickness/2 against
// l's [Line.Normal]. The mean brightness b of those samples maps linearly to
// (255−b)/255 × maxThickness, so white yields 0 and black yields maxThickness.
//
// An empty grid fails with [ErrDegenerateBounds]; zero-length and non-finite
// lines fail with [ErrDegenerateSegment].
func EstimateThickness(g *Grid, l Line, maxThickness float64) (float64, error) {
	if !(maxThickness >= 0) || math.IsInf(maxThickness, 0) {
		return 0, fmt.Errorf("%w: max thickness %g", ErrInvalidConfig, maxThickness)
	}
	if g.Width < 1 || g.Height < 1 {
		return 0, fmt.Errorf("%w: %d×%d grid", ErrDegenerateBounds, g.Width, g.Height)
	}
	if l.IsNaN() || l.IsInf() {
		return 0, fmt.Errorf("%w: non-finite line %s–%s", ErrDegenerateSegment, l.P0, l.P1)
	}
	d, ok := l.Direction()
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrDegenerateSegment, l.P0)
	}
	length := l.Length()
	perp := d.Perp()

	num := max(1, int(math.Round(length)))
	numPerp := max(1, int(math.Round(maxThickness)))
	along := d.Mul(length / float64(num))
	across := perp.Mul(maxThickness / float64(numPerp))
	half := float64(numPerp) / 2

	var sum float64
	for i := range num {
		base := l.P0.Translate(along.Mul(float64(i)))
		for j := range numPerp {
			sum += g.SampleAt(base.Translate(across.Mul(float64(j) - half)))
		}
	}
	mean := sum / float64(num*numPerp)
	th := (255 - mean) / 255 * maxThickness
	return min(max(th, 0), maxThickness), nil
}

// EstimateProfile runs [EstimateThickness] for every line of path and returns
// the thicknesses in path order. Lines are processed concurrently by up to
// workers goroutines; workers < 1 uses GOMAXPROCS.
func EstimateProfile(g *Grid, path []Line, maxThickness float64, workers int) ([]float64, error) {
	out := make([]float64, len(path))
	err := parallelChunks(len(path), workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			th, err := EstimateThickness(g, path[i], maxThickness)
			if err != nil {
				return fmt.Errorf("segment %d: %w", i, err)
			}
			out[i] = th
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// minChunk is the smallest number of items handed to a single goroutine.
const minChunk = 256

// parallelChunks splits [0, n) into contiguous ranges and calls fn for each of
// them, with at most workers calls in flight. It returns the first error.
func parallelChunks(n, workers int, fn func(lo, hi int) error) error {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n <= minChunk || workers == 1 {
		return fn(0, n)
	}
	chunk := max(minChunk, (n+workers*4-1)/(workers*4))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error { return fn(lo, hi) })
	}
	return eg.Wait()
}
