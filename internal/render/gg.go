package render

import (
	"image"

	"geowidgets/internal/vector"
	"geowidgets/pkg/geometry"

	"git.sr.ht/~sbinet/gg"
)

// GG is a Canvas that rasterizes into an RGBA image with gg.
type GG struct {
	dc    *gg.Context
	scale float64
}

// NewGG returns a canvas drawing into dst where one panel unit covers
// scale device pixels.
func NewGG(dst *image.RGBA, scale float64) *GG {
	dc := gg.NewContextForRGBA(dst)
	dc.Scale(scale, scale)
	return &GG{dc: dc, scale: scale}
}

// Scale returns the device pixels per panel unit.
func (c *GG) Scale() float64 { return c.scale }

func (c *GG) Push() { c.dc.Push() }
func (c *GG) Pop()  { c.dc.Pop() }

func (c *GG) Transform(t geometry.AffineTransform) {
	if t.IsIdentity() {
		return
	}
	tx, ty, rotation, shear, sx, sy := t.Decompose()
	c.dc.Translate(tx, ty)
	c.dc.Rotate(rotation)
	if shear != 0 {
		c.dc.Shear(shear, 0)
	}
	if sx != 1 || sy != 1 {
		c.dc.Scale(sx, sy)
	}
}

func (c *GG) Circle(center geometry.Point2D, radius float64, style Style) {
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.paint(style)
}

func (c *GG) Rect(r geometry.Rect, style Style) {
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.paint(style)
}

func (c *GG) Line(from, to geometry.Point2D, style Style) {
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	style.Fill = nil
	c.paint(style)
}

func (c *GG) Image(img *vector.Image) {
	pixels := img.Rasterize(c.scale)
	if pixels == nil {
		return
	}
	c.dc.Push()
	c.dc.Scale(1/c.scale, 1/c.scale)
	c.dc.DrawImage(pixels, 0, 0)
	c.dc.Pop()
}

// paint fills then strokes the current path. gg strokes in device pixels,
// so the width is scaled here.
func (c *GG) paint(style Style) {
	switch {
	case style.Fill != nil && style.Stroke != nil:
		c.dc.SetColor(style.Fill)
		c.dc.FillPreserve()
	case style.Fill != nil:
		c.dc.SetColor(style.Fill)
		c.dc.Fill()
		return
	case style.Stroke == nil:
		c.dc.ClearPath()
		return
	}
	c.dc.SetColor(style.Stroke)
	c.dc.SetLineWidth(style.StrokeWidth * c.scale)
	c.dc.Stroke()
}
