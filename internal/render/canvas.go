// Package render provides the drawing surface widgets paint on and the
// framebuffer that caches their output between frames.
package render

import (
	"image/color"

	"geowidgets/internal/vector"
	"geowidgets/pkg/geometry"
)

// Style describes how a shape is painted. A nil Fill or Stroke skips that pass.
type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
}

// Canvas is the drawing contract shared by every widget. Coordinates are in
// panel units relative to the widget's top-left corner; the canvas maps them
// to device pixels.
type Canvas interface {
	// Push saves the current transform; Pop restores it.
	Push()
	Pop()
	// Transform post-multiplies the current transform by t.
	Transform(t geometry.AffineTransform)

	Circle(center geometry.Point2D, radius float64, style Style)
	Rect(r geometry.Rect, style Style)
	Line(from, to geometry.Point2D, style Style)
	// Image draws img at its natural size with its top-left corner at the
	// origin of the current transform. A nil image draws nothing.
	Image(img *vector.Image)
}

// Drawable is anything that can paint itself onto a Canvas.
type Drawable interface {
	Draw(c Canvas)
}
