package lineart

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/hilbert"
)

// MaxOrder is the largest supported fractal order. Order o produces 4^o − 1
// segments; anything past 12 or so is impractical to render anyway.
const MaxOrder = 15

// HilbertCurve returns the Hilbert curve of the given order as a sequence of
// lines in the unit square.
//
// The curve visits every cell of a 2^order × 2^order lattice exactly once.
// Cell coordinates are divided by 2^order, so all points lie in
// [0, 1−2^−order]². Consecutive lines are contiguous and each has length
// 2^−order. Order 0 has a single cell and thus produces no lines.
//
// The returned sequence can be iterated more than once.
func HilbertCurve(order int) (iter.Seq[Line], error) {
	if order < 0 || order > MaxOrder {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOrder, order, MaxOrder)
	}
	n := 1 << order
	space, err := hilbert.NewHilbert(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrder, err)
	}
	var lattice iter.Seq[Line] = func(yield func(Line) bool) {
		if n*n < 2 {
			return
		}
		prev := mustDecode(space, n, 0)
		// The last cell has index n²−1; it is only ever an end point.
		for i := 1; i < n*n; i++ {
			next := mustDecode(space, n, i)
			if !yield(Line{prev, next}) {
				return
			}
			prev = next
		}
	}
	scale := 1 / float64(n)
	return Transform(lattice, Scale(scale, scale)), nil
}

// HilbertPath is like [HilbertCurve] but collects the lines into a slice.
func HilbertPath(order int) ([]Line, error) {
	seq, err := HilbertCurve(order)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// decode maps a linear curve index to its lattice cell.
func decode(space *hilbert.Hilbert, n, index int) (Point, error) {
	if index < 0 || index >= n*n {
		return Point{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, n*n)
	}
	x, y, err := space.Map(index)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %s", ErrIndexOutOfRange, err)
	}
	return Pt(float64(x), float64(y)), nil
}

func mustDecode(space *hilbert.Hilbert, n, index int) Point {
	pt, err := decode(space, n, index)
	if err != nil {
		panic(fmt.Sprintf("internal error: %s", err))
	}
	return pt
}
