// Package player holds the viewer pose: position, heading, and the heading unit
// vector derived from it. The heading is stored in radians; degrees only appear
// at the command boundary (see Steps).
package player

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

const twoPi = 2 * math.Pi

// State is the player pose. DX and DY always equal cos(Angle) and -sin(Angle);
// screen Y grows downward, so the vertical component is inverted.
type State struct {
	X, Y   float64 // Position in world units
	Angle  float64 // Heading in radians, normalized to [0, 2π)
	DX, DY float64 // Unit heading vector
}

// New creates a player at (x, y) facing angle (radians).
func New(x, y, angle float64) *State {
	p := &State{X: x, Y: y, Angle: angle}
	p.setAngle(angle)
	return p
}

// NewDegrees creates a player with the heading given in degrees.
func NewDegrees(x, y, angleDeg float64) *State {
	return New(x, y, core.DegToRad(angleDeg))
}

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// math.Mod of a tiny negative value can round up to exactly 2π.
	if a >= twoPi {
		a = 0
	}
	return a
}

// setAngle normalizes the heading and recomputes the heading vector.
func (p *State) setAngle(a float64) {
	p.Angle = NormalizeAngle(a)
	p.DX = math.Cos(p.Angle)
	p.DY = -math.Sin(p.Angle)
}

// MoveForward moves the player step units along the heading.
// There is no collision against walls.
func (p *State) MoveForward(step float64) {
	p.X += p.DX * step
	p.Y += p.DY * step
}

// MoveBackward moves the player step units against the heading.
func (p *State) MoveBackward(step float64) {
	p.X -= p.DX * step
	p.Y -= p.DY * step
}

// TurnLeft rotates the heading counter-clockwise by delta radians.
func (p *State) TurnLeft(delta float64) {
	p.setAngle(p.Angle + delta)
}

// TurnRight rotates the heading clockwise by delta radians.
func (p *State) TurnRight(delta float64) {
	p.setAngle(p.Angle - delta)
}

// Snapshot returns a copy of the pose, safe to read while the original mutates.
func (p *State) Snapshot() State {
	return *p
}

// AngleDegrees returns the heading in degrees, for display.
func (p *State) AngleDegrees() float64 {
	return core.RadToDeg(p.Angle)
}

// Steps holds the default command magnitudes, already in internal units.
type Steps struct {
	Move float64 // World units per move command
	Turn float64 // Radians per turn command
}

// StepsFromDegrees builds Steps from a move step and a turn step in degrees.
func StepsFromDegrees(move, turnDeg float64) Steps {
	return Steps{Move: move, Turn: core.DegToRad(turnDeg)}
}

// Apply executes one command. A zero magnitude uses the default from steps;
// explicit turn magnitudes are in degrees.
func (p *State) Apply(cmd core.Command, steps Steps) {
	switch cmd.Kind {
	case core.CommandMoveForward:
		p.MoveForward(moveMagnitude(cmd, steps))
	case core.CommandMoveBackward:
		p.MoveBackward(moveMagnitude(cmd, steps))
	case core.CommandTurnLeft:
		p.TurnLeft(turnMagnitude(cmd, steps))
	case core.CommandTurnRight:
		p.TurnRight(turnMagnitude(cmd, steps))
	}
}

// ApplyFrame executes all commands of a frame in order.
func (p *State) ApplyFrame(f core.CommandFrame, steps Steps) {
	for _, cmd := range f.Commands {
		p.Apply(cmd, steps)
	}
}

func moveMagnitude(cmd core.Command, steps Steps) float64 {
	if cmd.Magnitude == 0 {
		return steps.Move
	}
	return cmd.Magnitude
}

func turnMagnitude(cmd core.Command, steps Steps) float64 {
	if cmd.Magnitude == 0 {
		return steps.Turn
	}
	return core.DegToRad(cmd.Magnitude)
}
