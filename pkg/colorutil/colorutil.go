// Package colorutil provides shared colors for the widget renderers.
package colorutil

import (
	"image/color"
	"math"
)

// Common widget colors.
var (
	// ScrewGray fills and outlines the procedural screw head.
	ScrewGray = RGB(0x72, 0x72, 0x72)

	// PanelBorder outlines module panels and draws the expansion divider.
	PanelBorder = RGBAf(0.5, 0.5, 0.5, 0.5)

	// PanelBackground is the neutral face shown behind panels in the host.
	PanelBackground = RGB(0x28, 0x28, 0x28)
)

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// RGBAf returns a non-premultiplied color from components in [0, 1].
// Components outside the range are clamped.
func RGBAf(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{
		R: unit8(r),
		G: unit8(g),
		B: unit8(b),
		A: unit8(a),
	}
}

func unit8(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}
