package lineart

import (
	"math"
)

// collinearTolerance bounds the cross and dot product deviation at which two
// unit directions count as equal.
const collinearTolerance = 1e-12

// SmoothCorners replaces every corner between two contiguous lines with a
// quadratic Bézier arc and returns the resulting path.
//
// For lines a and b with a.P1 == b.P0 and differing directions, the arc starts
// at a's midpoint, uses the shared corner as its control point and ends at b's
// midpoint. It is flattened into max(2, round((|a|+|b|)/2)) lines. a is
// shortened to end at its midpoint and b to start at its midpoint; the
// shortened b then takes part in the next corner, and disappears if nothing of
// it remains.
//
// Lines that are not contiguous with their successor, collinear pairs and
// zero-length lines are passed through unchanged.
func SmoothCorners(path []Line) []Line {
	if len(path) < 2 {
		return append([]Line(nil), path...)
	}
	out := make([]Line, 0, len(path)*3)
	// cur is what is left of path[i-1] after smoothing the corner at its start.
	cur := path[0]
	for i := 1; i < len(path); i++ {
		orig, next := path[i-1], path[i]
		if !isCorner(orig, next) {
			out = append(out, cur)
			cur = next
			continue
		}
		m0, m1 := orig.Midpoint(), next.Midpoint()
		// cur already starts at m0 if the previous corner was smoothed.
		if head := (Line{cur.P0, m0}); !head.IsDegenerate() {
			out = append(out, head)
		}
		n := max(2, int(math.Round((orig.Length()+next.Length())/2)))
		for l := range (QuadBez{m0, orig.P1, m1}).Lines(n) {
			out = append(out, l)
		}
		cur = Line{m1, next.P1}
	}
	return append(out, cur)
}

// isCorner reports whether a and b meet at a shared point with differing
// directions.
func isCorner(a, b Line) bool {
	if a.P1 != b.P0 {
		return false
	}
	da, ok := a.Direction()
	if !ok {
		return false
	}
	db, ok := b.Direction()
	if !ok {
		return false
	}
	return !(math.Abs(da.Cross(db)) <= collinearTolerance && da.Dot(db) > 0)
}
