// Package stack implements Stack Tower: blocks slide back and forth and the
// player drops each one onto the tower below. Whatever hangs over the edge
// is cut off, and a block that misses the tower entirely ends the game.
package stack

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack/sim"
	"github.com/vovakirdan/tui-stack/internal/registry"
)

// GameID is the registry identifier of Stack Tower.
const GameID = "stack"

const gameTitle = "Stack Tower"

// Layout constants, in screen cells
const (
	hudHeight    = 2 // Score line plus top border
	cameraMargin = 3 // Rows kept free above the moving block
	minScreenW   = 20
	minScreenH   = 10
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	GroundChar = '═'
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty means config default.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// Game adapts the stacking simulation to the platform's Game interface.
type Game struct {
	world      *sim.World
	queue      *sim.EventQueue
	cfg        config.StackConfig
	difficulty *config.DifficultyManager
	config     core.RuntimeConfig
	delta      time.Duration

	// Status
	gameOver bool
	paused   bool
	tooSmall bool
	missed   sim.EntityID // Block that ended the game

	// Layout
	fieldX int     // First playfield column
	fieldW int     // Playfield width in cells
	fieldH int     // Playfield height in rows
	camera float64 // World level shown at the top playfield row
}

// New creates a new Stack Tower game instance.
func New() *Game {
	return &Game{missed: sim.NoEntity}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return gameTitle
}

// Reset builds a fresh tower. The previous world is replaced in one step.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	stackCfg, err := config.LoadStack(configPath)
	if err != nil {
		stackCfg = config.DefaultStackConfig()
	}
	config.ApplyStackPreset(&stackCfg, difficultyPreset)
	g.cfg = stackCfg
	g.difficulty = config.NewDifficultyManager(stackCfg.Difficulty)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.delta = time.Second / time.Duration(tickRate)

	g.gameOver = false
	g.paused = false
	g.missed = sim.NoEntity
	g.camera = 0
	g.calculateLayout()

	g.world = nil
	g.queue = sim.NewEventQueue(sim.DefaultQueueCapacity)
	if g.tooSmall {
		return
	}

	world, err := sim.NewWorld(g.params())
	if err != nil {
		g.tooSmall = true
		return
	}
	g.world = world
}

// calculateLayout derives the playfield from the screen size.
func (g *Game) calculateLayout() {
	g.fieldX = 1
	g.fieldW = g.config.ScreenW - 2
	g.fieldH = g.config.ScreenH - hudHeight - 1
	g.tooSmall = g.config.ScreenW < minScreenW || g.config.ScreenH < minScreenH
}

// params converts config and layout into simulation parameters.
func (g *Game) params() sim.Params {
	width := math.Round(float64(g.fieldW) * g.cfg.Block.WidthRatio)
	if width < 1 {
		width = 1
	}
	height := float64(g.cfg.Block.Height)

	return sim.Params{
		ScreenWidth:  float64(g.fieldW),
		BlockWidth:   width,
		BlockHeight:  height,
		BaseY:        float64(g.fieldH-g.cfg.Block.BaseOffset) - height,
		SeedSpeed:    g.difficulty.SeedSpeed(g.cfg.Physics.BaseSpeed),
		GrowthFactor: g.cfg.Physics.GrowthFactor,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for i := 0; i < in.Count(core.ActionTap); i++ {
		g.queue.Push(sim.Tap())
	}

	res := g.world.Tick(g.delta, g.queue)

	finished := false
	if res.GameOver() {
		g.gameOver = true
		g.missed = res.Missed
		finished = true
	}
	g.followActive()

	return core.StepResult{State: g.State(), Finished: finished}
}

// followActive scrolls the camera up so the moving block stays visible.
// The camera never scrolls back down during a game.
func (g *Game) followActive() {
	active, ok := g.world.Active()
	if !ok {
		return
	}
	if limit := active.Level() - cameraMargin; limit < g.camera {
		g.camera = limit
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Placed()
	}
	return core.GameState{
		Score:    score,
		Height:   score * g.cfg.Block.Height,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// World exposes the simulation for read-only inspection.
func (g *Game) World() *sim.World {
	return g.world
}

func init() {
	registry.MustRegister(registry.GameInfo{
		ID:      GameID,
		Title:   gameTitle,
		Summary: "Drop sliding blocks and build the tallest tower",
	}, func() registry.Game {
		return New()
	})
}
