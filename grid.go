package lineart

import (
	"image"
	"image/color"
	"math"
	"slices"
)

// Grid is an 8-bit grayscale raster. Pix holds Width×Height intensities in
// row-major order, starting at the top left corner. 0 is black and 255 is
// white.
//
// A Grid must not be modified while a pipeline reads from it.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid returns a w×h grid filled with black.
func NewGrid(w, h int) *Grid {
	return &Grid{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h),
	}
}

// UniformGrid returns a w×h grid with every pixel set to v.
func UniformGrid(w, h int, v uint8) *Grid {
	g := NewGrid(w, h)
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// GridFromImage converts img to grayscale using [color.GrayModel]. The grid's
// origin is img's minimum point.
func GridFromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	if gray, ok := img.(*image.Gray); ok {
		for y := range g.Height {
			off := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*g.Width:(y+1)*g.Width], gray.Pix[off:off+g.Width])
		}
		return g
	}
	for y := range g.Height {
		for x := range g.Width {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			g.Set(x, y, c.Y)
		}
	}
	return g
}

// Size returns the grid's extent in pixels.
func (g *Grid) Size() Size {
	return Sz(float64(g.Width), float64(g.Height))
}

// At returns the intensity of pixel (x, y). Coordinates outside of the grid
// are clamped to the nearest edge pixel. The grid must not be empty.
func (g *Grid) At(x, y int) uint8 {
	x = min(max(x, 0), g.Width-1)
	y = min(max(y, 0), g.Height-1)
	return g.Pix[y*g.Width+x]
}

// Set sets the intensity of pixel (x, y). It panics if the pixel is outside of
// the grid.
func (g *Grid) Set(x, y int, v uint8) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic("lineart: Grid.Set out of bounds")
	}
	g.Pix[y*g.Width+x] = v
}

// Sample returns the bilinearly interpolated intensity at (x, y), in [0, 255].
// Pixel (i, j) is located at integer coordinates (i, j), so sampling at
// integer coordinates returns the pixel's value exactly. Neighbours outside
// of the grid are replaced by the nearest edge pixel. The grid must not be
// empty.
func (g *Grid) Sample(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	fx := x - x0
	fy := y - y0
	ix, iy := int(x0), int(y0)

	v00 := float64(g.At(ix, iy))
	v10 := float64(g.At(ix+1, iy))
	v01 := float64(g.At(ix, iy+1))
	v11 := float64(g.At(ix+1, iy+1))

	// Equal to the weighted sum v00(1−fx)(1−fy) + v10·fx(1−fy) + v01(1−fx)fy +
	// v11·fx·fy, but exact for uniform neighbourhoods.
	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}

// SampleAt is like [Grid.Sample] but takes a point.
func (g *Grid) SampleAt(pt Point) float64 {
	return g.Sample(pt.X, pt.Y)
}

// Stretch returns a copy of g with its intensities linearly mapped so that the
// darkest pixel becomes 0 and the brightest 255. A uniform grid is copied
// unchanged.
func (g *Grid) Stretch() *Grid {
	out := &Grid{
		Width:  g.Width,
		Height: g.Height,
		Pix:    slices.Clone(g.Pix),
	}
	if len(g.Pix) == 0 {
		return out
	}
	lo, hi := slices.Min(g.Pix), slices.Max(g.Pix)
	if lo == hi {
		return out
	}
	scale := 255 / float64(hi-lo)
	for i, v := range g.Pix {
		out.Pix[i] = uint8(math.Round(float64(v-lo) * scale))
	}
	return out
}

// Image returns the grid as an [image.Gray] sharing g's pixels.
func (g *Grid) Image() *image.Gray {
	return &image.Gray{
		Pix:    g.Pix,
		Stride: g.Width,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}
