package lineart

import (
	"iter"
)

// QuadBez is a quadratic Bézier curve with start point P0, control point P1
// and end point P2.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates B(t) = (1−t)²·P0 + 2(1−t)t·P1 + t²·P2.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Lines approximates the curve with n lines of equal parameter range. The
// first line starts exactly at P0 and the last one ends exactly at P2. n
// smaller than 1 is treated as 1.
func (q QuadBez) Lines(n int) iter.Seq[Line] {
	n = max(n, 1)
	return func(yield func(Line) bool) {
		prev := q.P0
		for i := 1; i <= n; i++ {
			var next Point
			if i == n {
				next = q.P2
			} else {
				next = q.Eval(float64(i) / float64(n))
			}
			if !yield(Line{prev, next}) {
				return
			}
			prev = next
		}
	}
}
