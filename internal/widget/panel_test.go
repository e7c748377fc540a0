package widget

import (
	"testing"

	"geowidgets/internal/render"
	"geowidgets/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelSwapsByMode(t *testing.T) {
	imgA := svg(t, "Light", 88, 379)
	imgB := svg(t, "Dark", 88, 379)

	p := NewPanel()
	p.AddPanel(imgA)
	p.AddPanel(imgB)

	// 88/15 rounds to 6 columns, 379/380 to one row.
	assert.Equal(t, geometry.NewSize(90, 380), p.Size())
	assert.Equal(t, p.Size(), p.Border().Size)
	assert.Same(t, imgA, p.Active())

	require.NoError(t, p.OnModeChanged(1))
	assert.Same(t, imgB, p.Active())
	require.NoError(t, p.OnModeChanged(0))
	assert.Same(t, imgA, p.Active())
}

func TestPanelTickIdempotent(t *testing.T) {
	p := NewPanel()
	p.AddPanel(svg(t, "a", 30, 380))
	p.AddPanel(svg(t, "b", 30, 380))
	p.ClearDirty()
	n := changes(p)

	mode := &cell{}
	mode.Set(1)
	p.BindMode(mode)

	for i := 0; i < 25; i++ {
		p.Tick()
	}
	assert.Equal(t, 1, *n)
	assert.True(t, p.IsDirty())

	p.ClearDirty()
	for i := 0; i < 25; i++ {
		p.Tick()
	}
	assert.Equal(t, 1, *n)
	assert.False(t, p.IsDirty())
	assert.Equal(t, 1, p.Mode())
}

func TestPanelOutOfRangeModeKeepsVisual(t *testing.T) {
	imgA := svg(t, "a", 30, 380)
	p := NewPanel()
	p.AddPanel(imgA)
	p.ClearDirty()

	assert.ErrorIs(t, p.OnModeChanged(3), ErrFrameOutOfRange)

	mode := &cell{}
	mode.Set(3)
	p.BindMode(mode)
	assert.NotPanics(t, p.Tick)
	assert.Same(t, imgA, p.Active())
	assert.False(t, p.IsDirty())
}

func TestPanelCustomGrid(t *testing.T) {
	p := NewPanel(WithGrid(geometry.NewSize(10, 10)))
	p.AddPanel(svg(t, "a", 44, 16))
	assert.Equal(t, geometry.NewSize(40, 20), p.Size())
}

func TestPanelDrawsImageThenBorder(t *testing.T) {
	img := svg(t, "a", 30, 380)
	p := NewPanel()
	p.AddPanel(img)

	rec := render.NewRecorder()
	p.Draw(rec)
	require.Len(t, rec.Ops, 2)
	assert.Equal(t, render.OpImage, rec.Ops[0].Kind)
	assert.Equal(t, render.OpRect, rec.Ops[1].Kind)
	assert.Equal(t, geometry.NewRect(0.5, 0.5, 29, 379), rec.Ops[1].Rect)
	assert.Equal(t, 1.0, rec.Ops[1].Style.StrokeWidth)
	assert.Nil(t, rec.Ops[1].Style.Fill)
}

func TestBorderDivider(t *testing.T) {
	b := &Border{Size: geometry.NewSize(100, 380)}

	rec := render.NewRecorder()
	b.Draw(rec)
	assert.Empty(t, rec.Filter(render.OpLine), "unbound expansion draws no divider")

	unset := &cell{}
	b.Expansion = unset
	rec.Reset()
	b.Draw(rec)
	assert.Empty(t, rec.Filter(render.OpLine), "unset expansion draws no divider")

	unset.Set(20)
	rec.Reset()
	b.Draw(rec)
	lines := rec.Filter(render.OpLine)
	require.Len(t, lines, 1)
	assert.Equal(t, geometry.NewPoint2D(80, 1), lines[0].From)
	assert.Equal(t, geometry.NewPoint2D(80, 379), lines[0].To)
	assert.Equal(t, 2.0, lines[0].Style.StrokeWidth)

	x, ok := b.DividerX()
	assert.True(t, ok)
	assert.Equal(t, 80.0, x)
}

func TestPanelExpansionSource(t *testing.T) {
	p := NewPanel()
	p.AddPanel(svg(t, "a", 100, 380))
	width := 20
	p.SetExpansion(IntFunc(func() (int, bool) { return width, true }))

	x, ok := p.Border().DividerX()
	require.True(t, ok)
	assert.Equal(t, 85.0, x, "box snapped to 105 units")

	p.SetExpansion(nil)
	_, ok = p.Border().DividerX()
	assert.False(t, ok)
}

func TestPanelRedrawsWhenDividerMoves(t *testing.T) {
	p := NewPanel()
	p.AddPanel(svg(t, "a", 60, 380))
	expansion := &cell{}
	p.SetExpansion(expansion)
	p.Tick()
	p.ClearDirty()

	p.Tick()
	assert.False(t, p.IsDirty())

	expansion.Set(15)
	p.Tick()
	assert.True(t, p.IsDirty())
	p.ClearDirty()
	p.Tick()
	assert.False(t, p.IsDirty())

	expansion.Set(30)
	p.Tick()
	assert.True(t, p.IsDirty())
}
