package render

import (
	"image"
	"image/color"
	"math"

	"geowidgets/pkg/geometry"

	xdraw "golang.org/x/image/draw"
)

// Placement positions a framebuffer inside a composite, in panel units.
type Placement struct {
	At          geometry.Point2D
	Framebuffer *Framebuffer
}

// Composite combines the framebuffers of several widgets into one image.
type Composite struct {
	Size       geometry.Size
	Placements []*Placement
	BackColor  color.Color
}

// NewComposite creates an empty composite of the given panel size.
func NewComposite(size geometry.Size, back color.Color) *Composite {
	return &Composite{Size: size, BackColor: back}
}

// Add places w at position at and returns its framebuffer.
func (c *Composite) Add(w Widget, at geometry.Point2D) *Framebuffer {
	fb := NewFramebuffer(w)
	c.Placements = append(c.Placements, &Placement{At: at, Framebuffer: fb})
	return fb
}

// Step advances every framebuffer one frame and reports whether any changed.
func (c *Composite) Step(pixelRatio float64) bool {
	changed := false
	for _, p := range c.Placements {
		if p.Framebuffer.Step(pixelRatio) {
			changed = true
		}
	}
	return changed
}

// Render produces the composited image at the given pixel ratio from the
// cached framebuffers. Whole-pixel offsets are copied; fractional ones are
// resampled.
func (c *Composite) Render(pixelRatio float64) *image.RGBA {
	w := int(math.Ceil(c.Size.Width * pixelRatio))
	h := int(math.Ceil(c.Size.Height * pixelRatio))
	result := image.NewRGBA(image.Rect(0, 0, w, h))
	if c.BackColor != nil {
		xdraw.Draw(result, result.Bounds(), image.NewUniform(c.BackColor), image.Point{}, xdraw.Src)
	}

	device := geometry.Scale(pixelRatio, pixelRatio)
	for _, p := range c.Placements {
		src := p.Framebuffer.Pixels()
		if src == nil {
			continue
		}
		at := device.Apply(p.At)
		x, y := at.X, at.Y
		if x == math.Trunc(x) && y == math.Trunc(y) {
			r := src.Bounds().Add(image.Pt(int(x), int(y)))
			xdraw.Draw(result, r, src, src.Bounds().Min, xdraw.Over)
			continue
		}
		xdraw.BiLinear.Transform(result, geometry.Translation(x, y).Aff3(), src, src.Bounds(), xdraw.Over, nil)
	}
	return result
}
