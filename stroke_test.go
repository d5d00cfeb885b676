package lineart

import (
	"errors"
	"math"
	"testing"
)

func TestThickenZigzag(t *testing.T) {
	l := Line{Pt(1, 5), Pt(5.5, 5)}
	got := ThickenZigzag(l, 2)
	// start cap, floor(4.5) = 4 zigs, end cap
	if len(got) != 6 {
		t.Fatalf("got %d lines, want 6", len(got))
	}
	if got[0].P0 != l.P0 || got[len(got)-1].P1 != l.P1 {
		t.Error("zigzag doesn't span the line")
	}
	if !Contiguous(got) {
		t.Error("zigzag isn't contiguous")
	}
	for i, ln := range got[1 : len(got)-1] {
		for _, pt := range []Point{ln.P0, ln.P1} {
			if math.Abs(pt.Y-5) != 1 {
				t.Errorf("zig %d has point %s not 1 away from the line", i, pt)
			}
		}
		if ln.P0.Y == ln.P1.Y {
			t.Errorf("zig %d doesn't cross the line", i)
		}
	}
}

func TestThickenZigzagShort(t *testing.T) {
	l := Line{Pt(0, 0), Pt(0, 0.5)}
	got := ThickenZigzag(l, 1)
	want := []Line{
		{Pt(0, 0), Pt(0.5, 0.25)},
		{Pt(0.5, 0.25), Pt(-0.5, 0.25)},
		{Pt(-0.5, 0.25), Pt(0, 0.5)},
	}
	diff(t, want, got)
}

func TestThickenDegenerate(t *testing.T) {
	l := Line{Pt(3, 3), Pt(3, 3)}
	if got := ThickenZigzag(l, 2); len(got) != 0 {
		t.Errorf("zigzag: got %v, want nothing", got)
	}
	if got := ThickenSine(l, 2, 0); len(got) != 0 {
		t.Errorf("sine: got %v, want nothing", got)
	}
	got, err := ThickenPathSine([]Line{l}, []float64{5}, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("path sine: got %v, want nothing", got)
	}
}

func TestThickenSine(t *testing.T) {
	l := Line{Pt(0, 0), Pt(2.5, 0)}
	got := ThickenSine(l, 4, 0)
	// ceil(2.5) = 3 periods, 10 steps each
	if len(got) != 30 {
		t.Fatalf("got %d lines, want 30", len(got))
	}
	if got[0].P0 != l.P0 {
		t.Errorf("wave starts at %s, want %s", got[0].P0, l.P0)
	}
	assertNear(t, got[len(got)-1].P1, l.P1, 1e-12)
	if !Contiguous(got) {
		t.Error("wave isn't contiguous")
	}
	var peak float64
	for _, ln := range got {
		peak = max(peak, math.Abs(ln.P1.Y))
	}
	if peak > 2+1e-12 || peak < 1.9 {
		t.Errorf("got amplitude %v, want 2", peak)
	}

	if got := ThickenSine(l, 4, 1.5); len(got) != 15 {
		t.Errorf("got %d lines for 1.5 periods, want 15", len(got))
	}
}

func TestArcOffsets(t *testing.T) {
	path := []Line{
		{Pt(0, 0), Pt(3, 4)},
		{Pt(3, 4), Pt(3, 4)},
		{Pt(3, 4), Pt(3, 6)},
		{Pt(9, 9), Pt(10, 9)},
	}
	diff(t, []float64{0, 5, 5, 7}, ArcOffsets(path))
}

// offsetAt returns how far pt lies from l, in the direction of l's normal.
func offsetAt(l Line, pt Point, s float64) float64 {
	n, _ := l.Normal()
	return pt.Sub(l.Eval(s)).Dot(n)
}

func TestThickenPathSinePhaseContinuity(t *testing.T) {
	path := []Line{
		{Pt(0, 0), Pt(3.3, 0)},
		{Pt(3.3, 0), Pt(7, 0)},
		{Pt(7, 0), Pt(7, 4.6)},
	}
	thickness := []float64{4, 4, 4}
	for _, omega := range []float64{0.3, 0.7, 2, math.Pi} {
		got, err := ThickenPathSine(path, thickness, omega, 0)
		if err != nil {
			t.Fatal(err)
		}
		// round(3.3)=3, round(3.7)=4 and round(4.6)=5 samples per line
		if len(got) != 2+3+4 {
			t.Fatalf("ω=%g: got %d lines, want 9", omega, len(got))
		}
		seg0, seg1, seg2 := got[:2], got[2:5], got[5:]

		if seg0[1].P1 != seg1[0].P0 {
			t.Errorf("ω=%g: collinear lines meet at %s and %s", omega, seg0[1].P1, seg1[0].P0)
		}
		end := offsetAt(path[1], seg1[2].P1, 1)
		start := offsetAt(path[2], seg2[0].P0, 0)
		if math.Abs(end-start) > 1e-12 {
			t.Errorf("ω=%g: offset jumps from %v to %v", omega, end, start)
		}
		want := 2 * math.Sin(7*omega)
		if math.Abs(start-want) > 1e-12 {
			t.Errorf("ω=%g: got offset %v at the corner, want %v", omega, start, want)
		}
	}
}

func TestThickenPathSineSkipsThin(t *testing.T) {
	path := []Line{
		{Pt(0, 0), Pt(4, 0)},
		{Pt(4, 0), Pt(8, 0)},
		{Pt(8, 0), Pt(12, 0)},
	}
	got, err := ThickenPathSine(path, []float64{0.99, 1, 0}, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3", len(got))
	}
	if got[0].P0.X != 4 || got[2].P1.X != 8 {
		t.Errorf("only the second line should be drawn, got %v", got)
	}
}

func TestThickenPathSineErrors(t *testing.T) {
	path := []Line{{Pt(0, 0), Pt(4, 0)}}
	if _, err := ThickenPathSine(path, nil, 1, 0); !errors.Is(err, ErrProfileMismatch) {
		t.Errorf("got error %v, want %v", err, ErrProfileMismatch)
	}
	if _, err := ThickenPathSine(path, []float64{2}, math.NaN(), 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got error %v, want %v", err, ErrInvalidConfig)
	}
}

func TestRenderers(t *testing.T) {
	path := []Line{
		{Pt(0, 0), Pt(3, 0)},
		{Pt(3, 0), Pt(3, 2)},
	}
	thickness := []float64{1, 2}

	z, err := Zigzag{}.Render(path, thickness)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, append(ThickenZigzag(path[0], 1), ThickenZigzag(path[1], 2)...), z)

	s, err := Sine{Periods: 2}.Render(path, thickness)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, append(ThickenSine(path[0], 1, 2), ThickenSine(path[1], 2, 2)...), s)

	c, err := ContinuousSine{Omega: 0.5}.Render(path, thickness)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ThickenPathSine(path, thickness, 0.5, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, c)

	c1, err := ContinuousSine{Omega: 0.5, Workers: 1}.Render(path, thickness)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, c1)

	for _, r := range []Renderer{Zigzag{}, Sine{}, ContinuousSine{Omega: 1}} {
		if _, err := r.Render(path, thickness[:1]); !errors.Is(err, ErrProfileMismatch) {
			t.Errorf("%T: got error %v, want %v", r, err, ErrProfileMismatch)
		}
	}
}

func TestThickenPathSineWorkers(t *testing.T) {
	// enough lines to be split across goroutines
	path, err := HilbertPath(5)
	if err != nil {
		t.Fatal(err)
	}
	if err := Rescale(path, 62, 62); err != nil {
		t.Fatal(err)
	}
	thickness := make([]float64, len(path))
	for i := range thickness {
		thickness[i] = float64(1 + i%4)
	}

	want, err := ThickenPathSine(path, thickness, 0.8, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 2, 7} {
		got, err := ThickenPathSine(path, thickness, 0.8, workers)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}

	r := ContinuousSine{Omega: 0.8}.WithWorkers(3)
	diff(t, ContinuousSine{Omega: 0.8, Workers: 3}, r)
}
