package sim

import "time"

// Move advances every sliding entity by direction*speed*delta and reverses
// its direction once it has passed a screen edge. The reversal is checked
// after the update, so a block may overshoot an edge for one tick before it
// turns around. Stopped entities and non-positive deltas leave the arena as is.
func Move(arena *Arena, delta time.Duration) {
	if arena == nil || delta <= 0 {
		return
	}
	dt := delta.Seconds()

	arena.Each(func(_ EntityID, e *Entity) {
		if !e.active() || !e.wellFormed() {
			return
		}

		e.Position[0] += float64(e.Direction) * e.Speed * dt

		if e.Position.X() > e.ScreenWidth-e.Size.Width || e.Position.X() < 0 {
			e.Direction = -e.Direction
		}
	})
}
