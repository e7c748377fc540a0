package render

import (
	"image"
	"math"

	"geowidgets/pkg/geometry"

	xdraw "golang.org/x/image/draw"
)

// Widget is the per-frame contract the framebuffer drives.
type Widget interface {
	Drawable
	Tick()
	Size() geometry.Size
	IsDirty() bool
	ClearDirty()
	// Oversample returns the supersampling factor the widget wants at the
	// given device pixel ratio.
	Oversample(pixelRatio float64) float64
}

// Framebuffer caches the pixels of one widget and redraws them only when
// the widget reports itself dirty or the pixel ratio changes.
type Framebuffer struct {
	widget Widget
	pixels *image.RGBA
	ratio  float64
	draws  int
}

// NewFramebuffer wraps w.
func NewFramebuffer(w Widget) *Framebuffer {
	return &Framebuffer{widget: w}
}

// Widget returns the wrapped widget.
func (fb *Framebuffer) Widget() Widget { return fb.widget }

// Step runs one frame: tick the widget, then re-rasterize if needed.
// It reports whether the cached pixels changed.
func (fb *Framebuffer) Step(pixelRatio float64) bool {
	fb.widget.Tick()
	if !fb.widget.IsDirty() && fb.pixels != nil && fb.ratio == pixelRatio {
		return false
	}
	fb.redraw(pixelRatio)
	fb.widget.ClearDirty()
	return true
}

// Pixels returns the last rasterization, nil before the first Step or for
// a widget without size.
func (fb *Framebuffer) Pixels() *image.RGBA { return fb.pixels }

// Draws returns how many times the widget has been rasterized.
func (fb *Framebuffer) Draws() int { return fb.draws }

func (fb *Framebuffer) redraw(pixelRatio float64) {
	fb.ratio = pixelRatio
	size := fb.widget.Size()
	if size.IsZero() || pixelRatio <= 0 {
		fb.pixels = nil
		return
	}

	oversample := fb.widget.Oversample(pixelRatio)
	if oversample < 1 {
		oversample = 1
	}
	w := int(math.Ceil(size.Width * pixelRatio))
	h := int(math.Ceil(size.Height * pixelRatio))
	scale := pixelRatio * oversample

	big := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(size.Width*scale)), int(math.Ceil(size.Height*scale))))
	fb.widget.Draw(NewGG(big, scale))
	fb.draws++

	if oversample == 1 {
		fb.pixels = big
		return
	}
	// Small details draw poorly at low DPI; render large and filter down.
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Src, nil)
	fb.pixels = out
}
