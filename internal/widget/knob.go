package widget

import (
	"math"

	"geowidgets/internal/geomath"
	"geowidgets/internal/render"
	"geowidgets/internal/vector"
	"geowidgets/pkg/geometry"
)

// ValueSource publishes a knob value and its declared domain. Either bound
// may be infinite for an endless control.
type ValueSource interface {
	FloatSource
	MinValue() float64
	MaxValue() float64
}

// Knob is a rotary control. The mode picks the knob image and whether the
// effect overlay shows; the value rotates the knob image in place.
type Knob struct {
	Base

	// MinAngle and MaxAngle are the rotation at the ends of the value
	// domain. Orientation is added to every angle.
	MinAngle    float64
	MaxAngle    float64
	Orientation float64

	all         FrameSet
	rotor       *vector.Image
	effect      *vector.Image
	effectShown bool

	value     ValueSource
	lastValue float64
	seen      bool
	angle     float64
	transform geometry.AffineTransform
}

// NewKnob returns a knob sweeping ±0.83π.
func NewKnob() *Knob {
	return &Knob{
		Base:      newBase(ScrewSize),
		MinAngle:  -0.83 * math.Pi,
		MaxAngle:  0.83 * math.Pi,
		transform: geometry.Identity(),
	}
}

// AddFrameSet appends a knob image. The first becomes the rotating image
// and sets the box.
func (k *Knob) AddFrameSet(img *vector.Image) {
	if k.all.Append(img) != 1 {
		return
	}
	k.rotor = img
	k.size = img.Size()
	k.MarkDirty()
}

// AddEffectOverlay sets the overlay shown outside mode 0. It is drawn
// unrotated above the knob.
func (k *Knob) AddEffectOverlay(img *vector.Image) {
	k.effect = img
	if k.effectShown {
		k.MarkDirty()
	}
}

// BindValue sets the value source. An unbound knob rests at Orientation.
func (k *Knob) BindValue(src ValueSource) {
	k.value = src
	k.seen = false
}

// OnModeChanged selects the first image for mode 0 and the second, with
// the overlay, otherwise.
func (k *Knob) OnModeChanged(mode int) error {
	index := 0
	if mode != 0 {
		index = 1
	}
	img, err := k.all.At(index)
	if err != nil {
		return err
	}
	k.rotor = img
	k.effectShown = mode != 0
	k.MarkDirty()
	return nil
}

// Tick applies a pending mode change, picks up value changes, and
// recomputes the rotation whenever the knob is dirty.
func (k *Knob) Tick() {
	k.mode.Observe(k.OnModeChanged)
	if k.value != nil {
		v := k.value.Value()
		if !k.seen || v != k.lastValue {
			k.lastValue = v
			k.seen = true
			k.MarkDirty()
		}
	}
	if k.IsDirty() {
		k.updateTransform()
	}
}

func (k *Knob) updateTransform() {
	if k.value == nil {
		k.angle = k.Orientation
	} else {
		k.angle = geomath.ValueToAngle(k.lastValue, k.value.MinValue(), k.value.MaxValue(),
			k.MinAngle, k.MaxAngle, k.Orientation)
	}
	k.transform = geometry.RotateAbout(k.rotor.Size().Center(), k.angle)
}

// Angle returns the rotation computed on the last dirty tick.
func (k *Knob) Angle() float64 { return k.angle }

// Transform returns the rotation applied to the knob image.
func (k *Knob) Transform() geometry.AffineTransform { return k.transform }

// Rotor returns the knob image currently shown.
func (k *Knob) Rotor() *vector.Image { return k.rotor }

// EffectShown reports whether the overlay is visible.
func (k *Knob) EffectShown() bool { return k.effectShown }

func (k *Knob) Draw(c render.Canvas) {
	c.Push()
	c.Transform(k.transform)
	c.Image(k.rotor)
	c.Pop()
	if k.effectShown {
		c.Image(k.effect)
	}
}
