package stack

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Blocks      int // Entities in the arena, including the moving one
	ActiveX     float64
	ActiveWidth float64
	ActiveSpeed float64
	Camera      float64
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall || g.world == nil:
		return Snapshot{State: StatePausedSmall}
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.world.Ticks(),
		Score:  g.world.Placed(),
		Blocks: g.world.Len(),
		Camera: g.camera,
		State:  state,
	}
	if active, ok := g.world.Active(); ok {
		snap.ActiveX = active.Left()
		snap.ActiveWidth = active.Size.Width
		snap.ActiveSpeed = active.Speed
	}
	return snap
}
