package raycast

import "math"

// Axis tells which family of grid lines a ray struck.
type Axis int

const (
	AxisNone       Axis = iota // Nothing hit within the step bound
	AxisVertical               // Crossing of a vertical grid line (x = k*S)
	AxisHorizontal             // Crossing of a horizontal grid line (y = k*S)
)

// String returns a short name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Hit is the result of casting one ray. It lives for a single frame.
type Hit struct {
	Angle     float64 // Absolute world angle of the ray, radians
	Distance  float64 // Perpendicular distance to the viewer plane; +Inf on a miss
	RayLength float64 // Distance along the ray; +Inf on a miss
	X, Y      float64 // Hit point in world units
	Col, Row  int     // Cell that stopped the march
	Axis      Axis
	Steps     int // Grid-line advances taken by the winning search
}

// Found reports whether the ray struck a wall within the step bound.
func (h Hit) Found() bool {
	return h.Axis != AxisNone && !math.IsInf(h.Distance, 1)
}

// miss returns a Hit that reports nothing was struck.
func miss(angle, px, py float64) Hit {
	return Hit{
		Angle:     angle,
		Distance:  math.Inf(1),
		RayLength: math.Inf(1),
		X:         px,
		Y:         py,
		Axis:      AxisNone,
	}
}
