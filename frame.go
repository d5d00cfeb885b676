package lineart

import (
	"fmt"
	"math"
	"slices"
)

// frameTolerance is the relative slack allowed when deciding whether a point
// lies within the frame, to absorb rounding in the mapping.
const frameTolerance = 1e-9

func checkFrame(width, height float64) error {
	if !(width > 0 && height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: frame %s", ErrDegenerateBounds, Sz(width, height))
	}
	return nil
}

// Rescale maps path in place so that its bounding box spans exactly
// [0, width]×[0, height]. It fails with [ErrDegenerateBounds] if the path is
// empty, its bounding box has zero width or height, or the target is not a
// positive finite size.
func Rescale(path []Line, width, height float64) error {
	if err := checkFrame(width, height); err != nil {
		return err
	}
	bbox, ok := BoundingBox(slices.Values(path))
	if !ok {
		return fmt.Errorf("%w: empty path", ErrDegenerateBounds)
	}
	aff := MapRect(bbox, Rect{0, 0, width, height})
	if aff.IsInf() || aff.IsNaN() {
		return fmt.Errorf("%w: path spans %s", ErrDegenerateBounds, bbox.Size())
	}
	for i, l := range path {
		path[i] = l.Transform(aff)
	}
	return nil
}

// CropToScale fits path into a width×height frame and drops every line that
// does not lie entirely within it.
//
// The path is scaled uniformly so that the longer side of its bounding box
// spans max(width, height), with the bounding box's origin moved to (0, 0).
// For a square path, such as the output of [HilbertCurve], this is the same as
// Rescale(path, s, s) with s = max(width, height). Lines are kept or dropped
// as a whole, never clipped, so the result need not be contiguous.
//
// A path that already has that extent is not transformed again, nor is a
// path whose bounding box has no area but that already lies within the
// frame; the latter is what remains of a curve cropped to a frame thinner
// than its lattice spacing. Applying CropToScale to its own result with the
// same frame thus returns an equal path.
//
// CropToScale fails with [ErrDegenerateBounds] if the path is empty, if it
// needs scaling but its bounding box has zero width or height, or if no line
// fits the frame. It does not modify path.
func CropToScale(path []Line, width, height float64) ([]Line, error) {
	if err := checkFrame(width, height); err != nil {
		return nil, err
	}
	bbox, ok := BoundingBox(slices.Values(path))
	if !ok {
		return nil, fmt.Errorf("%w: empty path", ErrDegenerateBounds)
	}
	if bbox.IsNaN() {
		return nil, fmt.Errorf("%w: path spans %s", ErrDegenerateBounds, bbox.Size())
	}
	frame := Rect{0, 0, width, height}
	s := frame.Size().MaxSide()
	slack := frameTolerance * s

	aff := Identity
	switch origin, side := bbox.Origin(), bbox.Size().MaxSide(); {
	case math.Abs(side-s) <= slack && math.Abs(origin.X) <= slack && math.Abs(origin.Y) <= slack:
		// already scaled
	case bbox.Width() == 0 || bbox.Height() == 0:
		if !frame.ContainsClosed(origin, slack) || !frame.ContainsClosed(Pt(bbox.X1, bbox.Y1), slack) {
			return nil, fmt.Errorf("%w: path spans %s", ErrDegenerateBounds, bbox.Size())
		}
	default:
		f := s / side
		aff = Translate(Vec(-origin.X, -origin.Y)).ThenScale(f, f)
	}

	out := make([]Line, 0, len(path))
	for _, l := range path {
		l = l.Transform(aff)
		if frame.ContainsClosed(l.P0, slack) && frame.ContainsClosed(l.P1, slack) {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no line fits %s frame", ErrDegenerateBounds, frame.Size())
	}
	return out, nil
}
