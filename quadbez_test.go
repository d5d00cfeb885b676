package lineart

import (
	"slices"
	"testing"
)

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{
		Pt(2, 0),
		Pt(4, 0),
		Pt(4, 2),
	}
	const epsilon = 1e-12
	assertNear(t, q.Eval(0), q.P0, epsilon)
	assertNear(t, q.Eval(1), q.P2, epsilon)
	assertNear(t, q.Eval(0.5), Pt(3.5, 0.5), epsilon)

	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		mt := 1 - tt
		want := Pt(
			mt*mt*q.P0.X+2*mt*tt*q.P1.X+tt*tt*q.P2.X,
			mt*mt*q.P0.Y+2*mt*tt*q.P1.Y+tt*tt*q.P2.Y,
		)
		assertNear(t, q.Eval(tt), want, epsilon)
	}
}

func TestQuadBezLines(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	for _, n := range []int{0, 1, 2, 7} {
		lines := slices.Collect(q.Lines(n))
		if want := max(n, 1); len(lines) != want {
			t.Fatalf("got %d lines, want %d", len(lines), want)
		}
		if lines[0].P0 != q.P0 {
			t.Errorf("n=%d: first line starts at %s, want %s", n, lines[0].P0, q.P0)
		}
		if last := lines[len(lines)-1]; last.P1 != q.P2 {
			t.Errorf("n=%d: last line ends at %s, want %s", n, last.P1, q.P2)
		}
		if !Contiguous(lines) {
			t.Errorf("n=%d: lines aren't contiguous", n)
		}
	}
}
