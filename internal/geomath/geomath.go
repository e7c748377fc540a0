// Package geomath holds the pure geometry helpers shared by the widgets:
// the screw head radius and the knob value-to-angle mapping.
package geomath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// ScrewHighRadius is the head radius when the slot reads as a "+" (0 or π/2).
	ScrewHighRadius = 1.4
	// ScrewLowRadius is the head radius when the slot reads as an "×" (π/4).
	ScrewLowRadius = 1.1

	// TwoPi is a full turn in radians.
	TwoPi = 2 * math.Pi

	nearTolerance = 1e-6
)

// ScrewRadius returns the head radius for a slot rotated by angle.
// The radius falls linearly from ScrewHighRadius at 0 and π/2 to
// ScrewLowRadius at π/4. Angles outside [0, π/2] are not meaningful.
func ScrewRadius(angle float64) float64 {
	quarter := math.Pi / 4
	slope := (ScrewHighRadius - ScrewLowRadius) / quarter
	return slope*math.Abs(angle-quarter) + ScrewLowRadius
}

// Rescale maps x linearly from [xMin, xMax] onto [yMin, yMax].
func Rescale(x, xMin, xMax, yMin, yMax float64) float64 {
	return yMin + (x-xMin)/(xMax-xMin)*(yMax-yMin)
}

// WrapAngle reduces a into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// -tiny + 2π rounds up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// ValueToAngle converts a control value into a rotation angle.
//
// With a finite domain the value is rescaled from [minValue, maxValue] onto
// [minAngle, maxAngle]. An endless control (either bound infinite) is
// rescaled from [-1, 1] instead and the result, offset included, wraps into
// [0, 2π). The orientation offset is added in both cases.
func ValueToAngle(value, minValue, maxValue, minAngle, maxAngle, orientation float64) float64 {
	if isFinite(minValue) && isFinite(maxValue) {
		return Rescale(value, minValue, maxValue, minAngle, maxAngle) + orientation
	}
	return WrapAngle(Rescale(value, -1, 1, minAngle, maxAngle) + orientation)
}

// IsNear reports whether a and b differ by at most 1e-6.
func IsNear(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, nearTolerance)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
