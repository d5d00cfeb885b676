// Package raster draws zero-width lines onto a binary canvas.
package raster

import (
	"image"
	"iter"

	"golang.org/x/image/vector"

	"honnef.co/go/lineart"
)

// coverageThreshold is the minimum coverage, out of 255, at which a pixel is
// inked. Pixels are either fully inked or left blank; there is no
// anti-aliasing.
const coverageThreshold = 0x80

// Canvas collects lines and renders them black on white. Every line is drawn
// as a rectangle one pixel wide, extended by half a pixel at each end, so that
// even zero-length lines leave a mark.
type Canvas struct {
	width  int
	height int
	z      *vector.Rasterizer
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		z:      vector.NewRasterizer(width, height),
	}
}

// DrawLine adds l to the canvas.
func (c *Canvas) DrawLine(l lineart.Line) {
	d, ok := l.Direction()
	if !ok {
		d = lineart.Vec(1, 0)
	}
	d = d.Mul(0.5)
	n := d.Perp()
	p0 := l.P0.Translate(d.Mul(-1))
	p1 := l.P1.Translate(d)

	// All quads share the same orientation, so overlapping ones accumulate
	// instead of cancelling out.
	c.moveTo(p0.Translate(n))
	c.lineTo(p1.Translate(n))
	c.lineTo(p1.Translate(n.Mul(-1)))
	c.lineTo(p0.Translate(n.Mul(-1)))
	c.z.ClosePath()
}

// DrawLines adds every line of seq to the canvas.
func (c *Canvas) DrawLines(seq iter.Seq[lineart.Line]) {
	for l := range seq {
		c.DrawLine(l)
	}
}

// Line coordinates address pixel centres, the rasterizer's address pixel
// corners.
func (c *Canvas) moveTo(pt lineart.Point) { c.z.MoveTo(float32(pt.X+0.5), float32(pt.Y+0.5)) }
func (c *Canvas) lineTo(pt lineart.Point) { c.z.LineTo(float32(pt.X+0.5), float32(pt.Y+0.5)) }

// Image renders the lines drawn so far.
func (c *Canvas) Image() *image.Gray {
	r := image.Rect(0, 0, c.width, c.height)
	mask := image.NewAlpha(r)
	c.z.Draw(mask, r, image.Opaque, image.Point{})

	out := image.NewGray(r)
	for i, a := range mask.Pix {
		if a >= coverageThreshold {
			out.Pix[i] = 0
		} else {
			out.Pix[i] = 0xFF
		}
	}
	return out
}
