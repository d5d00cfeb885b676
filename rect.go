package lineart

import (
	"iter"
	"math"
)

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromSize returns the rectangle spanning from the origin to size.
func NewRectFromSize(size Size) Rect {
	return NewRectFromPoints(Point{}, Pt(size.Width, size.Height))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Origin returns the origin of the rectangle.
//
// This is the top left corner in a y-down space and with
// non-negative width and height.
func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's heigth, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// ContainsClosed reports whether pt lies within r, including its perimeter.
// Points up to slack outside of r still count as contained.
func (r Rect) ContainsClosed(pt Point, slack float64) bool {
	return pt.X >= r.X0-slack &&
		pt.X <= r.X1+slack &&
		pt.Y >= r.Y0-slack &&
		pt.Y <= r.Y1+slack
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

// BoundingBox returns the smallest rectangle enclosing every endpoint in seq,
// and false if seq is empty.
func BoundingBox(seq iter.Seq[Line]) (Rect, bool) {
	var bbox Rect
	first := true
	for l := range seq {
		if first {
			bbox = l.BoundingBox()
			first = false
			continue
		}
		bbox = bbox.UnionPoint(l.P0).UnionPoint(l.P1)
	}
	return bbox, !first
}
