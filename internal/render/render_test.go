package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"geowidgets/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 255, A: 255}

// dot is a widget that fills its whole box and counts calls.
type dot struct {
	size       geometry.Size
	dirty      bool
	ticks      int
	draws      int
	oversample float64
}

func (d *dot) Tick()               { d.ticks++ }
func (d *dot) Size() geometry.Size { return d.size }
func (d *dot) IsDirty() bool       { return d.dirty }
func (d *dot) ClearDirty()         { d.dirty = false }
func (d *dot) Oversample(float64) float64 {
	if d.oversample == 0 {
		return 1
	}
	return d.oversample
}
func (d *dot) Draw(c Canvas) {
	d.draws++
	c.Rect(geometry.RectFromSize(d.size), Style{Fill: red})
}

func TestRecorderTracksTransformStack(t *testing.T) {
	r := NewRecorder()
	r.Push()
	r.Transform(geometry.Translation(5, 0))
	r.Circle(geometry.NewPoint2D(1, 1), 2, Style{Fill: red})
	r.Pop()
	r.Line(geometry.Point2D{}, geometry.NewPoint2D(0, 3), Style{Stroke: red, StrokeWidth: 1})
	r.Image(nil)

	require.Len(t, r.Ops, 2)
	assert.Equal(t, OpCircle, r.Ops[0].Kind)
	assert.Equal(t, geometry.Translation(5, 0), r.Ops[0].Transform)
	assert.True(t, r.Ops[1].Transform.IsIdentity())
	assert.Len(t, r.Filter(OpLine), 1)

	r.Pop() // unbalanced pop is ignored
	r.Reset()
	assert.Empty(t, r.Ops)
}

func TestGGFillsCircle(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	c := NewGG(dst, 2)
	c.Circle(geometry.NewPoint2D(5, 5), 3, Style{Fill: red, Stroke: red, StrokeWidth: 1})

	r, _, _, a := dst.At(10, 10).RGBA()
	assert.NotZero(t, r)
	assert.NotZero(t, a)
	_, _, _, corner := dst.At(0, 0).RGBA()
	assert.Zero(t, corner)
}

func TestGGTransformMovesShapes(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	c := NewGG(dst, 1)
	c.Push()
	c.Transform(geometry.RotateAbout(geometry.NewPoint2D(10, 10), math.Pi))
	c.Rect(geometry.NewRect(0, 0, 5, 5), Style{Fill: red})
	c.Pop()

	// Rotating half a turn about the center moves the top-left square to the
	// bottom-right corner.
	_, _, _, moved := dst.At(17, 17).RGBA()
	_, _, _, origin := dst.At(2, 2).RGBA()
	assert.NotZero(t, moved)
	assert.Zero(t, origin)
}

func TestFramebufferRedrawsOnlyWhenDirty(t *testing.T) {
	w := &dot{size: geometry.NewSize(10, 4)}
	fb := NewFramebuffer(w)

	assert.True(t, fb.Step(1), "first frame always draws")
	assert.Equal(t, 1, fb.Draws())
	require.NotNil(t, fb.Pixels())
	assert.Equal(t, image.Rect(0, 0, 10, 4), fb.Pixels().Bounds())

	assert.False(t, fb.Step(1))
	assert.False(t, fb.Step(1))
	assert.Equal(t, 1, fb.Draws())
	assert.Equal(t, 3, w.ticks)

	w.dirty = true
	assert.True(t, fb.Step(1))
	assert.False(t, w.dirty, "framebuffer consumes the dirty flag")
	assert.Equal(t, 2, fb.Draws())

	assert.True(t, fb.Step(2), "pixel ratio change forces a redraw")
	assert.Equal(t, image.Rect(0, 0, 20, 8), fb.Pixels().Bounds())
}

func TestFramebufferOversamplesThenDownscales(t *testing.T) {
	w := &dot{size: geometry.NewSize(6, 6), oversample: 2}
	fb := NewFramebuffer(w)
	fb.Step(1)

	require.NotNil(t, fb.Pixels())
	assert.Equal(t, image.Rect(0, 0, 6, 6), fb.Pixels().Bounds())
	r, _, _, _ := fb.Pixels().At(3, 3).RGBA()
	assert.NotZero(t, r)
}

func TestFramebufferZeroSize(t *testing.T) {
	fb := NewFramebuffer(&dot{})
	fb.Step(1)
	assert.Nil(t, fb.Pixels())
	assert.Zero(t, fb.Draws())
}

func TestCompositePlacesFramebuffers(t *testing.T) {
	c := NewComposite(geometry.NewSize(30, 10), color.Black)
	c.Add(&dot{size: geometry.NewSize(5, 5)}, geometry.NewPoint2D(20, 2))

	assert.True(t, c.Step(1))
	assert.False(t, c.Step(1))

	out := c.Render(1)
	assert.Equal(t, image.Rect(0, 0, 30, 10), out.Bounds())
	r, _, _, _ := out.At(22, 4).RGBA()
	assert.NotZero(t, r)
	r, g, b, a := out.At(2, 2).RGBA()
	assert.Zero(t, r+g+b)
	assert.NotZero(t, a)
}
