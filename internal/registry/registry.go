// Package registry is the catalogue of game modes. Modes register a
// factory from init(); the CLI, the level picker and the SSH server list
// and create them by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/shape-shifter/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "shifter").
	// Used for CLI commands and the run journal.
	ID() string

	// Title returns a human-readable name for display (e.g., "Shape Shifter").
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions, RNG seed and start level.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, level, phase).
	State() core.GameState
}

// Seated is implemented by games played by more than one person at the
// same keyboard.
type Seated interface {
	Players() int
}

// Players returns how many people play g at once.
func Players(g Game) int {
	if s, ok := g.(Seated); ok && s.Players() > 1 {
		return s.Players()
	}
	return 1
}

// GameInfo describes a registered game mode.
type GameInfo struct {
	ID      string
	Title   string
	Players int
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. It panics on an empty or
// duplicate id, or when the factory builds a game reporting another ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, g.ID()))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: g.Title(), Players: Players(g)},
		factory: f,
	}
}

// List returns every registered mode: single-player modes first, then by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		if c := cmp.Compare(a.Players, b.Players); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Lookup returns the description of a registered mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
