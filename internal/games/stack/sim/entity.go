// Package sim implements the block-stacking simulation: a per-tick movement
// pass over sliding blocks and a tap-driven stacking rule that trims, spawns
// and ends the game. It contains no rendering or input code so the platform
// can drive it headlessly.
package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID is a stable index into an Arena.
type EntityID int

// NoEntity marks the absence of an entity reference.
const NoEntity EntityID = -1

// Size holds the dimensions of a block.
type Size struct {
	Width  float64
	Height float64
}

// Entity is one rectangular block in the stack.
type Entity struct {
	Position    mgl64.Vec2 // Top-left corner; X horizontal, Y level (larger = lower)
	Size        Size
	Direction   int     // +1 right, -1 left
	Speed       float64 // Horizontal units per second
	Moving      bool    // Still sliding, waiting for a tap
	Stopped     bool    // Frozen by a tap, never moves again
	ScreenWidth float64 // Right bound used for edge reflection
}

// Left returns the x-coordinate of the left edge.
func (e Entity) Left() float64 {
	return e.Position.X()
}

// Right returns the x-coordinate of the right edge.
func (e Entity) Right() float64 {
	return e.Position.X() + e.Size.Width
}

// Level returns the vertical position of the block.
func (e Entity) Level() float64 {
	return e.Position.Y()
}

// active reports whether the movement pass should advance this entity.
func (e Entity) active() bool {
	return e.Moving && !e.Stopped
}

// wellFormed reports whether the entity can be advanced without producing
// NaN or runaway positions.
func (e Entity) wellFormed() bool {
	if e.Direction == 0 {
		return false
	}
	for _, v := range []float64{e.Position.X(), e.Position.Y(), e.Speed, e.Size.Width, e.ScreenWidth} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
