package widget

import (
	"geowidgets/internal/render"
	"geowidgets/internal/vector"
)

// Port is a cable jack whose image follows the mode.
type Port struct {
	Base
	frames    FrameSet
	displayed *vector.Image
}

// NewPort returns a port with no frames.
func NewPort() *Port {
	return &Port{Base: newBase(ScrewSize)}
}

// AddFrame appends an image for the next mode index. The first one is
// displayed immediately and sets the box.
func (p *Port) AddFrame(img *vector.Image) {
	if p.frames.Append(img) != 1 {
		return
	}
	p.displayed = img
	p.size = img.Size()
	p.MarkDirty()
}

// Displayed returns the image currently shown.
func (p *Port) Displayed() *vector.Image { return p.displayed }

// OnModeChanged displays the frame registered for mode.
func (p *Port) OnModeChanged(mode int) error {
	img, err := p.frames.At(mode)
	if err != nil {
		return err
	}
	p.displayed = img
	p.MarkDirty()
	return nil
}

func (p *Port) Tick() {
	p.mode.Observe(p.OnModeChanged)
}

func (p *Port) Draw(c render.Canvas) {
	c.Image(p.displayed)
}
