package widget

import (
	"testing"

	"geowidgets/internal/render"
	"geowidgets/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFrames(t *testing.T) {
	light := svg(t, "JackLight", 24, 24)
	dark := svg(t, "JackDark", 24, 24)

	p := NewPort()
	assert.Nil(t, p.Displayed())
	p.AddFrame(light)
	p.AddFrame(dark)

	assert.Same(t, light, p.Displayed())
	assert.Equal(t, geometry.NewSize(24, 24), p.Size())

	mode := &cell{}
	p.BindMode(mode)
	p.ClearDirty()
	p.Tick()
	assert.False(t, p.IsDirty(), "unset mode does nothing")

	mode.Set(1)
	p.Tick()
	assert.Same(t, dark, p.Displayed())
	assert.True(t, p.IsDirty())

	rec := render.NewRecorder()
	p.Draw(rec)
	require.Len(t, rec.Ops, 1)
	assert.Same(t, dark, rec.Ops[0].Image)
}

func TestPortWithoutFramesDrawsNothing(t *testing.T) {
	p := NewPort()
	rec := render.NewRecorder()
	p.Draw(rec)
	assert.Empty(t, rec.Ops)
	assert.ErrorIs(t, p.OnModeChanged(0), ErrFrameOutOfRange)
}
