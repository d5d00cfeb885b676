package lineart

import (
	"iter"
)

// Line is a directed line segment from P0 to P1. Offsets to either side of a
// line are relative to its direction, so reversing a line mirrors every
// stroke derived from it.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// IsDegenerate reports whether the line's start and end points coincide, in
// which case it has no direction.
func (l Line) IsDegenerate() bool {
	return l.P0 == l.P1
}

// Direction returns the unit vector pointing from P0 to P1. It returns false
// for degenerate lines.
func (l Line) Direction() (Vec2, bool) {
	if l.IsDegenerate() {
		return Vec2{}, false
	}
	return l.P1.Sub(l.P0).Normalize(), true
}

// Normal returns the unit vector perpendicular to the line's direction, as
// computed by [Vec2.Perp]. It returns false for degenerate lines.
func (l Line) Normal() (Vec2, bool) {
	d, ok := l.Direction()
	if !ok {
		return Vec2{}, false
	}
	return d.Perp(), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// BoundingBox returns the smallest rectangle containing both endpoints.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the point halfway between P0 and P1.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// TotalLength returns the summed length of all lines in the sequence.
func TotalLength(seq iter.Seq[Line]) float64 {
	var sum float64
	for l := range seq {
		sum += l.Length()
	}
	return sum
}

// Contiguous reports whether every line in path starts where the previous one
// ended. Empty paths and single lines are contiguous.
func Contiguous(path []Line) bool {
	for i := 1; i < len(path); i++ {
		if path[i-1].P1 != path[i].P0 {
			return false
		}
	}
	return true
}
