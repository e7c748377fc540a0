package widget

import (
	"math"
	"math/rand"

	"geowidgets/internal/geomath"
	"geowidgets/internal/render"
	"geowidgets/internal/vector"
	"geowidgets/pkg/colorutil"
	"geowidgets/pkg/geometry"
)

// ScrewSize is the fixed box of a screw, in panel units.
var ScrewSize = geometry.NewSize(15, 15)

// ScrewVisual is the appearance a screw shows for the current mode:
// either Procedural or Static.
type ScrewVisual interface {
	render.Drawable
	screwVisual()
}

// Procedural is the generated screw head: a disc whose radius follows the
// slot angle, optionally drawn over a base image rotated by the same angle.
type Procedural struct {
	Radius    float64
	Rotation  float64
	Transform geometry.AffineTransform
	Box       geometry.Size
	Base      *vector.Image
}

func (Procedural) screwVisual() {}

func (p Procedural) Draw(c render.Canvas) {
	c.Push()
	defer c.Pop()
	c.Transform(p.Transform)
	c.Image(p.Base)
	c.Circle(p.Box.Center(), p.Radius, render.Style{
		Fill:        colorutil.ScrewGray,
		Stroke:      colorutil.ScrewGray,
		StrokeWidth: 1,
	})
}

// Static is a fixed image. A nil Image draws nothing.
type Static struct {
	Image *vector.Image
}

func (Static) screwVisual() {}

func (s Static) Draw(c render.Canvas) {
	c.Image(s.Image)
}

type screwConfig struct {
	rng   *rand.Rand
	angle *float64
}

// ScrewOption configures NewScrew.
type ScrewOption func(*screwConfig)

// WithRand draws the slot angle from r instead of the global source.
func WithRand(r *rand.Rand) ScrewOption {
	return func(c *screwConfig) { c.rng = r }
}

// WithAngle fixes the slot angle, in [0, π/2].
func WithAngle(a float64) ScrewOption {
	return func(c *screwConfig) { c.angle = &a }
}

// Screw is a decorative fastener. Mode 0 shows the procedural head with a
// random slot angle fixed at construction; any other mode shows the
// alternate image.
type Screw struct {
	Base
	procedural Procedural
	alternate  Static
	active     ScrewVisual
}

// NewScrew builds a screw with a random slot angle in [0, π/2).
func NewScrew(opts ...ScrewOption) *Screw {
	var cfg screwConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var angle float64
	switch {
	case cfg.angle != nil:
		angle = *cfg.angle
	case cfg.rng != nil:
		angle = cfg.rng.Float64() * math.Pi / 2
	default:
		angle = rand.Float64() * math.Pi / 2
	}

	s := &Screw{Base: newBase(ScrewSize)}
	s.procedural = Procedural{
		Radius:    geomath.ScrewRadius(angle),
		Rotation:  angle,
		Transform: geometry.RotateAbout(ScrewSize.Center(), angle),
		Box:       ScrewSize,
	}
	s.active = s.procedural
	return s
}

// SetBaseImage sets the image drawn under the procedural head.
func (s *Screw) SetBaseImage(img *vector.Image) {
	s.procedural.Base = img
	if _, ok := s.active.(Procedural); ok {
		s.active = s.procedural
		s.MarkDirty()
	}
}

// AddAlternateImage registers the image shown outside mode 0. Only the
// first call has an effect.
func (s *Screw) AddAlternateImage(img *vector.Image) {
	if s.alternate.Image != nil {
		return
	}
	s.alternate.Image = img
	if _, ok := s.active.(Static); ok {
		s.active = s.alternate
		s.MarkDirty()
	}
}

// OnModeChanged selects the visual for mode.
func (s *Screw) OnModeChanged(mode int) error {
	if mode == 0 {
		s.active = s.procedural
	} else {
		s.active = s.alternate
	}
	s.MarkDirty()
	return nil
}

// Visual returns the currently selected appearance.
func (s *Screw) Visual() ScrewVisual { return s.active }

// Angle returns the slot angle chosen at construction.
func (s *Screw) Angle() float64 { return s.procedural.Rotation }

// Tick applies a pending mode change.
func (s *Screw) Tick() {
	s.mode.Observe(s.OnModeChanged)
}

// Draw paints the active visual.
func (s *Screw) Draw(c render.Canvas) {
	s.active.Draw(c)
}
