package sim

import "github.com/go-gl/mathgl/mgl64"

// Resolve applies the stacking rule to events in arrival order and returns
// any signals emitted. Only taps are meaningful; each one freezes the
// sliding block and either trims it to its overlap with the stack top and
// spawns the next block one level up, or ends the game. A tap with no
// sliding block, as after game over, does nothing.
func (w *World) Resolve(events []Event) []Signal {
	var signals []Signal
	for _, ev := range events {
		if ev.Kind != EventTap {
			continue
		}
		if sig, ok := w.drop(); ok {
			signals = append(signals, sig)
		}
	}
	return signals
}

// drop handles a single tap. Returns a signal when the game ends.
func (w *World) drop() (Signal, bool) {
	current, ok := w.arena.Get(w.active)
	if !ok {
		return Signal{}, false
	}

	current.Moving = false
	current.Stopped = true
	currentID := w.active
	w.active = NoEntity

	width := current.Size.Width
	// w.top is the topmost settled block, not the lowest one.
	if support, ok := w.arena.Get(w.top); ok {
		start, overlap := OverlapSpan(*current, *support)
		if overlap <= 0 {
			w.phase = PhaseTerminal
			return Signal{Kind: SignalGameOver, Entity: currentID}, true
		}
		width = overlap
		current.Position[0] = start
		current.Size.Width = overlap
	}

	next := Entity{
		Position:    mgl64.Vec2{0, current.Level() - current.Size.Height},
		Size:        Size{Width: width, Height: current.Size.Height},
		Direction:   1,
		Speed:       current.Speed * w.growth,
		Moving:      true,
		ScreenWidth: current.ScreenWidth,
	}

	// Spawn may reallocate the arena, so current is not used past here.
	w.top = currentID
	w.active = w.arena.Spawn(next)
	w.placed++
	return Signal{}, false
}
