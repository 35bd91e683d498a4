package core

// Surface is the drawing vocabulary the renderer emits. Coordinates are in
// surface units: characters for terminal screens, pixels for windows.
// Implementations clip anything that falls outside their bounds.
type Surface interface {
	// Size returns the drawable area in surface units.
	Size() (w, h float64)

	// Clear fills the whole surface with a single color.
	Clear(c Color)

	// FillRect fills the axis-aligned rectangle at (x, y) with size (w, h).
	FillRect(x, y, w, h float64, c Color)

	// DrawLine draws a straight line segment between two points.
	DrawLine(x0, y0, x1, y1 float64, c Color)

	// Present marks the end of a frame.
	Present()
}
