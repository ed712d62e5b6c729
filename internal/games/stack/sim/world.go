package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultGrowthFactor scales the speed of every newly spawned block.
const DefaultGrowthFactor = 1.1

// ErrInvalidParams is returned by NewWorld for unusable parameters.
var ErrInvalidParams = errors.New("sim: invalid params")

// Phase is the coarse game state.
type Phase int

const (
	PhaseActive   Phase = iota // One block is sliding
	PhaseTerminal              // Game over; absorbing until a new World is built
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Params describes the seed block and the playfield.
type Params struct {
	ScreenWidth  float64 // Horizontal bound for reflection
	BlockWidth   float64 // Seed block width
	BlockHeight  float64 // Height of every block
	BaseY        float64 // Level of the seed block
	SeedSpeed    float64 // Seed block speed, units per second
	GrowthFactor float64 // Speed multiplier per spawn, must be > 1
}

// Validate checks that the parameters describe a playable game.
func (p Params) Validate() error {
	switch {
	case !(p.ScreenWidth > 0):
		return fmt.Errorf("%w: screen width %v", ErrInvalidParams, p.ScreenWidth)
	case !(p.BlockWidth > 0) || p.BlockWidth > p.ScreenWidth:
		return fmt.Errorf("%w: block width %v", ErrInvalidParams, p.BlockWidth)
	case !(p.BlockHeight > 0):
		return fmt.Errorf("%w: block height %v", ErrInvalidParams, p.BlockHeight)
	case !(p.SeedSpeed > 0) || math.IsInf(p.SeedSpeed, 0):
		return fmt.Errorf("%w: seed speed %v", ErrInvalidParams, p.SeedSpeed)
	case !(p.GrowthFactor > 1) || math.IsInf(p.GrowthFactor, 0):
		return fmt.Errorf("%w: growth factor %v", ErrInvalidParams, p.GrowthFactor)
	case math.IsNaN(p.BaseY) || math.IsInf(p.BaseY, 0):
		return fmt.Errorf("%w: base y %v", ErrInvalidParams, p.BaseY)
	}
	return nil
}

// World is the complete simulation state: the entity arena plus explicit
// references to the sliding block and the top of the settled stack.
type World struct {
	arena  *Arena
	active EntityID // Sliding block, NoEntity when none
	top    EntityID // Highest stopped block, NoEntity before the first drop
	phase  Phase
	growth float64
	placed int // Successful drops
	ticks  uint64
}

// NewWorld builds a fresh world holding only the seed block.
func NewWorld(p Params) (*World, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	arena := NewArena(32)
	seed := arena.Spawn(Entity{
		Position:    mgl64.Vec2{0, p.BaseY},
		Size:        Size{Width: p.BlockWidth, Height: p.BlockHeight},
		Direction:   1,
		Speed:       p.SeedSpeed,
		Moving:      true,
		ScreenWidth: p.ScreenWidth,
	})

	return &World{
		arena:  arena,
		active: seed,
		top:    NoEntity,
		phase:  PhaseActive,
		growth: p.GrowthFactor,
	}, nil
}

// NewWorldFromEntities builds a world around an existing entity collection.
// The active block is the first moving one; the stack top is the stopped
// block directly beneath it. Without a moving block the world starts in
// the terminal phase. A growth factor <= 1 falls back to the default.
func NewWorldFromEntities(growth float64, entities []Entity) *World {
	if !(growth > 1) {
		growth = DefaultGrowthFactor
	}

	arena := NewArena(len(entities) + 16)
	w := &World{
		arena:  arena,
		active: NoEntity,
		top:    NoEntity,
		growth: growth,
	}

	for _, e := range entities {
		id := arena.Spawn(e)
		if e.active() && w.active == NoEntity {
			w.active = id
		}
	}

	if w.active == NoEntity {
		w.phase = PhaseTerminal
		return w
	}
	w.top = w.supportOf(w.active)
	return w
}

// supportOf scans for the stopped block directly beneath id: the one with
// the smallest level that is still below it. Levels grow downward.
func (w *World) supportOf(id EntityID) EntityID {
	current, ok := w.arena.Get(id)
	if !ok {
		return NoEntity
	}

	support := NoEntity
	best := math.Inf(1)
	w.arena.Each(func(other EntityID, e *Entity) {
		if other == id || !e.Stopped || e.Level() <= current.Level() {
			return
		}
		if e.Level() < best {
			best = e.Level()
			support = other
		}
	})
	return support
}

// Tick advances the world by one step: movement first, then every queued
// event in arrival order. A nil queue means no events this tick.
func (w *World) Tick(delta time.Duration, queue *EventQueue) TickResult {
	w.ticks++
	Move(w.arena, delta)

	var events []Event
	if queue != nil {
		events = queue.Drain()
	}
	placedBefore := w.placed
	signals := w.Resolve(events)

	res := TickResult{
		Signals: signals,
		Placed:  w.placed - placedBefore,
		Phase:   w.phase,
		Missed:  NoEntity,
	}
	for _, s := range signals {
		if s.Kind == SignalGameOver {
			res.Missed = s.Entity
		}
	}
	return res
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Signals []Signal // Emitted signals, in order
	Placed  int      // Successful drops this tick
	Phase   Phase    // Phase after the tick
	Missed  EntityID // Block whose drop ended the game, or NoEntity
}

// GameOver reports whether the tick ended the game.
func (r TickResult) GameOver() bool {
	for _, s := range r.Signals {
		if s.Kind == SignalGameOver {
			return true
		}
	}
	return false
}

// Entities returns a copy of every entity in spawn order.
func (w *World) Entities() []Entity {
	return w.arena.Snapshot()
}

// Entity returns a copy of the entity with the given id.
func (w *World) Entity(id EntityID) (Entity, bool) {
	e, ok := w.arena.Get(id)
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// ActiveID returns the id of the sliding block, or NoEntity.
func (w *World) ActiveID() EntityID {
	return w.active
}

// Active returns a copy of the sliding block.
func (w *World) Active() (Entity, bool) {
	return w.Entity(w.active)
}

// TopID returns the id of the highest settled block, or NoEntity.
func (w *World) TopID() EntityID {
	return w.top
}

// Phase returns the current phase.
func (w *World) Phase() Phase {
	return w.phase
}

// GameOver reports whether the world is in the terminal phase.
func (w *World) GameOver() bool {
	return w.phase == PhaseTerminal
}

// Placed returns the number of successful drops, seed included.
func (w *World) Placed() int {
	return w.placed
}

// Len returns the number of entities in the arena.
func (w *World) Len() int {
	return w.arena.Len()
}

// Ticks returns the number of Tick calls since the world was built.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// GrowthFactor returns the per-spawn speed multiplier.
func (w *World) GrowthFactor() float64 {
	return w.growth
}
