package lineart

import (
	"fmt"
	"math"
	"slices"
)

// A Renderer turns a path and its thickness profile into zero-width lines
// that together approximate a stroke of varying width.
type Renderer interface {
	Render(path []Line, thickness []float64) ([]Line, error)
}

var (
	_ Renderer = Zigzag{}
	_ Renderer = Sine{}
	_ Renderer = ContinuousSine{}
)

func checkProfile(path []Line, thickness []float64) error {
	if len(path) != len(thickness) {
		return fmt.Errorf("%w: %d lines, %d thicknesses", ErrProfileMismatch, len(path), len(thickness))
	}
	return nil
}

// Zigzag renders each line with [ThickenZigzag].
type Zigzag struct{}

func (Zigzag) Render(path []Line, thickness []float64) ([]Line, error) {
	if err := checkProfile(path, thickness); err != nil {
		return nil, err
	}
	var out []Line
	for i, l := range path {
		out = append(out, ThickenZigzag(l, thickness[i])...)
	}
	return out, nil
}

// Sine renders each line with [ThickenSine].
type Sine struct {
	// Number of full waves per line. Zero means one wave per unit of length,
	// rounded up.
	Periods float64
}

func (s Sine) Render(path []Line, thickness []float64) ([]Line, error) {
	if err := checkProfile(path, thickness); err != nil {
		return nil, err
	}
	var out []Line
	for i, l := range path {
		out = append(out, ThickenSine(l, thickness[i], s.Periods)...)
	}
	return out, nil
}

// ContinuousSine renders the whole path with [ThickenPathSine].
type ContinuousSine struct {
	// Angular frequency of the wave, in radians per unit of arc length.
	Omega float64
	// Maximum number of goroutines rendering lines. Zero means GOMAXPROCS.
	Workers int
}

func (s ContinuousSine) Render(path []Line, thickness []float64) ([]Line, error) {
	return ThickenPathSine(path, thickness, s.Omega, s.Workers)
}

func (s ContinuousSine) WithWorkers(n int) Renderer { s.Workers = n; return s }

// A concurrentRenderer spreads its work across goroutines. [Trace] limits
// their number to [Config.Workers].
type concurrentRenderer interface {
	Renderer
	WithWorkers(n int) Renderer
}

var _ concurrentRenderer = ContinuousSine{}

// ThickenZigzag emulates l drawn thickness wide with a zigzag of zero-width
// lines. The zigzag swings to alternating sides of l, thickness/2 away from
// it, once per unit of length. Lines shorter than 1 get a single
// perpendicular stroke through their midpoint. The result starts at l.P0 and
// ends at l.P1; it is empty for degenerate lines.
func ThickenZigzag(l Line, thickness float64) []Line {
	d, ok := l.Direction()
	if !ok {
		return nil
	}
	side := d.Perp().Mul(thickness / 2)
	length := l.Length()

	var pts []Point
	if length < 1 {
		mid := l.Midpoint()
		pts = []Point{mid.Translate(side), mid.Translate(side.Mul(-1))}
	} else {
		steps := int(length)
		pts = make([]Point, 0, steps+1)
		for i := 0; i <= steps; i++ {
			sign := -1.0
			if i%2 == 1 {
				sign = 1
			}
			pts = append(pts, l.P0.Translate(d.Mul(float64(i))).Translate(side.Mul(sign)))
		}
	}

	out := make([]Line, 0, len(pts)+1)
	out = append(out, Line{l.P0, pts[0]})
	for i := 1; i < len(pts); i++ {
		out = append(out, Line{pts[i-1], pts[i]})
	}
	return append(out, Line{pts[len(pts)-1], l.P1})
}

// ThickenSine emulates l drawn thickness wide with a sine wave of amplitude
// thickness/2 running along it. The wave completes periods full cycles over
// the length of l; periods <= 0 uses ceil(|l|). Each cycle is sampled ten
// times. The result starts at l.P0 and is empty for degenerate lines.
func ThickenSine(l Line, thickness, periods float64) []Line {
	nrm, ok := l.Normal()
	if !ok {
		return nil
	}
	if !(periods > 0) {
		periods = math.Ceil(l.Length())
	}
	steps := max(1, int(math.Round(10*periods)))
	amp := thickness / 2

	out := make([]Line, 0, steps)
	prev := l.P0
	for k := 1; k <= steps; k++ {
		t := float64(k) / float64(steps)
		base := l.Eval(t)
		if k == steps {
			base = l.P1
		}
		next := base.Translate(nrm.Mul(amp * math.Sin(2*math.Pi*periods*t)))
		out = append(out, Line{prev, next})
		prev = next
	}
	return out
}

// ArcOffsets returns, for every line of path, the summed length of all lines
// before it.
func ArcOffsets(path []Line) []float64 {
	out := make([]float64, len(path))
	var acc float64
	for i, l := range path {
		out[i] = acc
		acc += l.Length()
	}
	return out
}

// ThickenPathSine emulates path drawn with a varying width by a sine wave of
// angular frequency omega running along it. Line i is drawn with amplitude
// thickness[i]/2.
//
// The wave's phase is (T + s·|l|)·omega, where T is the length of the path up
// to l (see [ArcOffsets]) and s ∈ [0, 1] the position along l, so the offset
// is continuous across line boundaries. Every line is sampled at
// max(2, round(|l|)) points. Lines thinner than 1 and degenerate lines
// produce no output, leaving light regions blank.
//
// Lines are rendered by up to workers goroutines, or GOMAXPROCS if workers is
// less than 1; the result is in path order.
func ThickenPathSine(path []Line, thickness []float64, omega float64, workers int) ([]Line, error) {
	if err := checkProfile(path, thickness); err != nil {
		return nil, err
	}
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		return nil, fmt.Errorf("%w: omega %g", ErrInvalidConfig, omega)
	}
	offsets := ArcOffsets(path)
	parts := make([][]Line, len(path))
	err := parallelChunks(len(path), workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			parts[i] = sineSegment(path[i], thickness[i], offsets[i], omega)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Concat(parts...), nil
}

// sineSegment renders a single line of [ThickenPathSine] whose start lies at
// arc length offset along the path.
func sineSegment(l Line, thickness, offset, omega float64) []Line {
	if thickness < 1 {
		return nil
	}
	nrm, ok := l.Normal()
	if !ok {
		return nil
	}
	length := l.Length()
	amp := thickness / 2
	n := max(2, int(math.Round(length)))

	at := func(k int) Point {
		s := float64(k) / float64(n-1)
		base := l.Eval(s)
		if k == n-1 {
			base = l.P1
		}
		return base.Translate(nrm.Mul(amp * math.Sin((offset+s*length)*omega)))
	}

	out := make([]Line, 0, n-1)
	prev := at(0)
	for k := 1; k < n; k++ {
		next := at(k)
		out = append(out, Line{prev, next})
		prev = next
	}
	return out
}
