package widget

import (
	"geowidgets/internal/render"
	"geowidgets/internal/vector"
	"geowidgets/pkg/colorutil"
	"geowidgets/pkg/geometry"
)

// PanelGrid is the module grid panels snap to: one horizontal pitch by
// the full module height.
var PanelGrid = geometry.NewSize(15, 380)

// Border outlines a panel and, when the panel has an expansion area,
// separates it with a vertical divider.
type Border struct {
	Size geometry.Size
	// Expansion is the width of the expansion area at the right edge. A nil
	// source or an unset value draws no divider.
	Expansion IntSource
}

// DividerX returns the x position of the expansion divider, if one is drawn.
func (b *Border) DividerX() (float64, bool) {
	if b.Expansion == nil {
		return 0, false
	}
	w, ok := b.Expansion.Int()
	if !ok {
		return 0, false
	}
	return b.Size.Width - float64(w), true
}

func (b *Border) Draw(c render.Canvas) {
	c.Rect(geometry.RectFromSize(b.Size).Inset(0.5), render.Style{
		Stroke:      colorutil.PanelBorder,
		StrokeWidth: 1,
	})
	x, ok := b.DividerX()
	if !ok {
		return
	}
	c.Line(geometry.NewPoint2D(x, 1), geometry.NewPoint2D(x, b.Size.Height-1), render.Style{
		Stroke:      colorutil.PanelBorder,
		StrokeWidth: 2,
	})
}

// PanelOption configures NewPanel.
type PanelOption func(*Panel)

// WithGrid overrides the grid the first panel image snaps to.
func WithGrid(grid geometry.Size) PanelOption {
	return func(p *Panel) { p.grid = grid }
}

// Panel is a module background that swaps the whole image by mode index.
type Panel struct {
	Base
	frames FrameSet
	active *vector.Image
	grid   geometry.Size
	border Border

	divider    float64
	hasDivider bool
}

// NewPanel returns an empty panel.
func NewPanel(opts ...PanelOption) *Panel {
	p := &Panel{Base: newBase(geometry.Size{}), grid: PanelGrid}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddPanel appends an image for the next mode index. The first image is
// shown immediately and its size, snapped to the grid, becomes the box of
// the panel and its border.
func (p *Panel) AddPanel(img *vector.Image) {
	if p.frames.Append(img) != 1 {
		return
	}
	p.active = img
	p.size = img.Size().SnapToGrid(p.grid)
	p.border.Size = p.size
	p.MarkDirty()
}

// SetExpansion sets the source of the expansion area width.
func (p *Panel) SetExpansion(src IntSource) {
	p.border.Expansion = src
	p.MarkDirty()
}

// Border returns the border overlay.
func (p *Panel) Border() *Border { return &p.border }

// Active returns the image currently shown.
func (p *Panel) Active() *vector.Image { return p.active }

// OnModeChanged shows the image registered for mode.
func (p *Panel) OnModeChanged(mode int) error {
	img, err := p.frames.At(mode)
	if err != nil {
		return err
	}
	p.active = img
	p.MarkDirty()
	return nil
}

// Tick applies a pending mode change and redraws when the expansion
// divider moved.
func (p *Panel) Tick() {
	p.mode.Observe(p.OnModeChanged)
	x, ok := p.border.DividerX()
	if ok != p.hasDivider || x != p.divider {
		p.divider, p.hasDivider = x, ok
		p.MarkDirty()
	}
}

// Draw paints the panel image then the border.
func (p *Panel) Draw(c render.Canvas) {
	c.Image(p.active)
	p.border.Draw(c)
}
