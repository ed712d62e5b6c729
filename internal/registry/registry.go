// Package registry is the catalog of playable games. Games add themselves
// from init(); the CLI, the menu and the SSH sessions look them up by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-stack/internal/core"
)

var (
	ErrUnknownGame   = errors.New("unknown game")
	ErrDuplicateGame = errors.New("game already registered")
	ErrInvalidEntry  = errors.New("invalid game entry")
)

// Game is the interface every playable game implements.
// Games hold pure logic with no Bubble Tea imports; the host maps keys to
// actions, drives the tick and paints the screen.
type Game interface {
	// ID returns the identifier used by the CLI and the score store.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new run for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Summary string // One line for `stacker list`
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

type catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var games = &catalog{entries: make(map[string]entry)}

// Register adds a game under info.ID.
func Register(info GameInfo, f Factory) error {
	if info.ID == "" || f == nil {
		return fmt.Errorf("%w: id %q", ErrInvalidEntry, info.ID)
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	games.mu.Lock()
	defer games.mu.Unlock()

	if _, exists := games.entries[info.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateGame, info.ID)
	}
	games.entries[info.ID] = entry{info: info, factory: f}
	return nil
}

// MustRegister is Register for init() functions. It panics on error.
func MustRegister(info GameInfo, f Factory) {
	if err := Register(info, f); err != nil {
		panic("registry: " + err.Error())
	}
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, error) {
	games.mu.RLock()
	defer games.mu.RUnlock()

	e, ok := games.entries[id]
	if !ok {
		return GameInfo{}, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return e.info, nil
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	games.mu.RLock()
	defer games.mu.RUnlock()

	result := make([]GameInfo, 0, len(games.entries))
	for _, e := range games.entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	games.mu.RLock()
	e, ok := games.entries[id]
	games.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}
