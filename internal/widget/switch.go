package widget

import (
	"log"
	"math"

	"geowidgets/internal/render"
	"geowidgets/internal/vector"
)

const switchFrames = 4

// Switch is a two-state toggle with two pairs of frames: set A (images 1
// and 2) for mode 0 and set B (images 3 and 4) for every other mode. The
// toggle state picks the frame within the active pair.
type Switch struct {
	Base
	all   FrameSet
	pair  [2]*vector.Image
	value FloatSource
	state int
}

// NewSwitch returns a switch with no frames.
func NewSwitch() *Switch {
	return &Switch{Base: newBase(ScrewSize)}
}

// AddFrameSet appends the next of up to four images. The second call
// installs set A as the active pair.
func (s *Switch) AddFrameSet(img *vector.Image) {
	if s.all.Len() >= switchFrames {
		log.Printf("widget: switch already has %d frames, ignoring %q", switchFrames, img.Name())
		return
	}
	if s.all.Append(img) != 2 {
		return
	}
	s.pair = [2]*vector.Image{s.all.frames[0], s.all.frames[1]}
	s.size = s.pair[0].Size()
	s.MarkDirty()
}

// BindValue sets the source of the toggle state. Values are rounded and
// clamped to 0 or 1.
func (s *Switch) BindValue(src FloatSource) { s.value = src }

// Pair returns the active frame pair.
func (s *Switch) Pair() [2]*vector.Image { return s.pair }

// State returns the toggle state, 0 or 1.
func (s *Switch) State() int { return s.state }

// OnModeChanged installs set A for mode 0 and set B otherwise. Reassigning
// the pair is itself the visual change, so it goes out on the same channel
// as every other redraw.
func (s *Switch) OnModeChanged(mode int) error {
	first := 0
	if mode != 0 {
		first = 2
	}
	a, err := s.all.At(first)
	if err != nil {
		return err
	}
	b, err := s.all.At(first + 1)
	if err != nil {
		return err
	}
	s.pair = [2]*vector.Image{a, b}
	s.MarkDirty()
	return nil
}

func (s *Switch) Tick() {
	s.mode.Observe(s.OnModeChanged)
	if s.value == nil {
		return
	}
	state := toggleState(s.value.Value())
	if state != s.state {
		s.state = state
		s.MarkDirty()
	}
}

func (s *Switch) Draw(c render.Canvas) {
	c.Image(s.pair[s.state])
}

func toggleState(v float64) int {
	if math.IsNaN(v) || v < 0.5 {
		return 0
	}
	return 1
}
