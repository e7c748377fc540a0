// Package widget implements the mode-reactive panel components: screw,
// panel with border, port, switch and knob.
//
// Every component polls an externally owned integer mode once per frame in
// Tick. When the mode differs from the last one applied, the component swaps
// its pre-registered visuals and marks itself dirty; the render backend
// redraws dirty components and clears the flag.
package widget

import (
	"log"

	"geowidgets/internal/geomath"
	"geowidgets/internal/render"
	"geowidgets/pkg/geometry"
)

// UnsetMode is the cached mode before the first swap. It never matches a
// real mode, so the first bound mode always applies.
const UnsetMode = -1

// IntSource is a polled, externally owned integer. ok is false while the
// value is unset.
type IntSource interface {
	Int() (v int, ok bool)
}

// IntFunc adapts a function to IntSource.
type IntFunc func() (int, bool)

func (f IntFunc) Int() (int, bool) { return f() }

// FloatSource is a polled, externally owned scalar.
type FloatSource interface {
	Value() float64
}

// ModeObserver remembers the last mode applied from a source.
type ModeObserver struct {
	source IntSource
	cached int
}

// NewModeObserver returns an unbound observer.
func NewModeObserver() ModeObserver {
	return ModeObserver{cached: UnsetMode}
}

// Bind sets the mode source. A nil source unbinds.
func (o *ModeObserver) Bind(src IntSource) { o.source = src }

// Bound reports whether a source is set.
func (o *ModeObserver) Bound() bool { return o.source != nil }

// Cached returns the last mode observed, or UnsetMode. It is recorded even
// when applying it failed, so it can differ from the mode whose visuals
// are on screen.
func (o *ModeObserver) Cached() int { return o.cached }

// Observe reads the source once and calls apply when the mode changed.
// A failed apply is logged and the mode is still recorded, so a bad mode
// is reported once rather than every frame while the previous visuals
// stay. It reports whether apply ran successfully.
func (o *ModeObserver) Observe(apply func(mode int) error) bool {
	if o.source == nil {
		return false
	}
	mode, ok := o.source.Int()
	if !ok || mode == o.cached {
		return false
	}
	err := apply(mode)
	o.cached = mode
	if err != nil {
		log.Printf("widget: mode %d not applied: %v", mode, err)
		return false
	}
	return true
}

// Invalidation is the single "visual changed" channel of a widget: the
// dirty flag the framebuffer consumes plus listeners fired on every change.
type Invalidation struct {
	dirty     bool
	listeners []func()
}

// MarkDirty sets the dirty flag and notifies listeners.
func (i *Invalidation) MarkDirty() {
	i.dirty = true
	for _, fn := range i.listeners {
		fn()
	}
}

// IsDirty reports whether the widget changed since the last ClearDirty.
func (i *Invalidation) IsDirty() bool { return i.dirty }

// ClearDirty is called by the consumer after redrawing.
func (i *Invalidation) ClearDirty() { i.dirty = false }

// OnChange registers fn to run on every MarkDirty.
func (i *Invalidation) OnChange(fn func()) {
	if fn != nil {
		i.listeners = append(i.listeners, fn)
	}
}

// Base carries what every component shares: mode observation, invalidation
// and the bounding box.
type Base struct {
	Invalidation
	mode ModeObserver
	size geometry.Size
}

func newBase(size geometry.Size) Base {
	return Base{mode: NewModeObserver(), size: size}
}

// BindMode sets the mode source. Without one the widget keeps its default
// visual forever.
func (b *Base) BindMode(src IntSource) { b.mode.Bind(src) }

// Mode returns the last mode observed, or UnsetMode.
func (b *Base) Mode() int { return b.mode.Cached() }

// Size returns the widget's bounding box.
func (b *Base) Size() geometry.Size { return b.size }

// Oversample asks for 2x supersampling at a pixel ratio near 1.
func (b *Base) Oversample(pixelRatio float64) float64 {
	if geomath.IsNear(pixelRatio, 1.0) {
		return 2
	}
	return 1
}

var (
	_ render.Widget = (*Screw)(nil)
	_ render.Widget = (*Panel)(nil)
	_ render.Widget = (*Port)(nil)
	_ render.Widget = (*Switch)(nil)
	_ render.Widget = (*Knob)(nil)
)
