// Package host shows a module of widgets inside a fyne window and drives
// their per-frame update.
package host

import (
	"image"
	"sync"
	"time"

	"geowidgets/internal/app"
	"geowidgets/internal/render"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ModuleView displays a render.Composite. Each fyne frame it ticks every
// placed widget and refreshes the raster only if a framebuffer changed.
type ModuleView struct {
	widget.BaseWidget

	mu        sync.Mutex
	composite *render.Composite
	ratio     float64
	frames    int
	redraws   int

	raster *fynecanvas.Raster
	anim   *fyne.Animation
}

// NewModuleView creates a view over c.
func NewModuleView(c *render.Composite) *ModuleView {
	v := &ModuleView{composite: c, ratio: 1}
	v.raster = fynecanvas.NewRaster(v.generate)
	v.raster.ScaleMode = fynecanvas.ImageScalePixels
	v.ExtendBaseWidget(v)
	return v
}

func (v *ModuleView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize is the module size in panel units.
func (v *ModuleView) MinSize() fyne.Size {
	return fyne.NewSize(float32(v.composite.Size.Width), float32(v.composite.Size.Height))
}

// Start begins ticking the widgets once per frame.
func (v *ModuleView) Start() {
	if v.anim != nil {
		return
	}
	v.anim = fyne.NewAnimation(time.Second, func(float32) { v.Step() })
	v.anim.RepeatCount = fyne.AnimationRepeatForever
	v.anim.Curve = fyne.AnimationLinear
	v.anim.Start()
}

// Stop halts the frame loop.
func (v *ModuleView) Stop() {
	if v.anim == nil {
		return
	}
	v.anim.Stop()
	v.anim = nil
}

// Follow steps the view as soon as a mode or parameter of s changes, so a
// control's effect shows before the next animation frame.
func (v *ModuleView) Follow(s *app.State) {
	step := func(app.Event) { v.Step() }
	s.On(app.EventModeChanged, step)
	s.On(app.EventParamChanged, step)
}

// Step runs one frame. It reports whether anything was redrawn.
func (v *ModuleView) Step() bool {
	v.mu.Lock()
	v.frames++
	changed := v.composite.Step(v.ratio)
	if changed {
		v.redraws++
	}
	v.mu.Unlock()

	if changed {
		v.raster.Refresh()
	}
	return changed
}

// Frames returns how many frames have run and how many of them redrew.
func (v *ModuleView) Frames() (frames, redraws int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frames, v.redraws
}

// generate is called by fyne with the raster size in device pixels, which
// fixes the pixel ratio the framebuffers render at.
func (v *ModuleView) generate(w, h int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.composite.Size.Width > 0 && w > 0 {
		ratio := float64(w) / v.composite.Size.Width
		if ratio != v.ratio {
			v.ratio = ratio
			v.composite.Step(ratio)
		}
	}
	return v.composite.Render(v.ratio)
}
