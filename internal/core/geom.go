// Package core provides the fundamental types shared by the raycaster and its
// frontends: geometry helpers, the drawing Surface contract, the character Screen
// surface, and the player command vocabulary. It has no external dependencies
// (especially no Bubble Tea or ebiten) so the rendering core stays pure and testable.
package core

import "math"

// RectF is a rectangle in surface units. Layouts are computed in RectF and
// rounded by each surface.
type RectF struct {
	X, Y float64
	W, H float64
}

// Empty reports whether the rectangle has no area.
func (r RectF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
