// Package duel implements the two-player mode of Shape Shifter. Two
// players share one keyboard and one arena, shoot at each other and at
// drifting enemy shapes, and the last one standing wins.
package duel

import (
	"time"

	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Match to the arcade's registry.Game interface.
type Game struct {
	match  *Match
	cfg    config.ShifterConfig
	cfgErr error
}

// New creates a new duel instance.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return "duel" }
func (g *Game) Title() string { return "Shape Shifter Duel" }

// Players reports the two seats at the keyboard.
func (g *Game) Players() int { return 2 }

// Reset loads the configuration and creates a fresh match at the runtime
// start level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadShifter(configPath)
	if err != nil {
		cfg = config.DefaultShifterConfig()
	}
	g.cfgErr = err
	g.ResetWith(runtime, cfg)
}

// ResetWith creates a fresh match from an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.ShifterConfig) {
	g.cfg = cfg
	g.match = NewMatch(cfg, runtime.Seed, runtime.StartLevel)
}

// TickInterval returns the real time one step stands for.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.Timing.TickInterval()
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.match.Step(in)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.match.Snapshot()
	return snap.State()
}

// Snapshot returns the current match snapshot.
func (g *Game) Snapshot() Snapshot { return g.match.Snapshot() }

// Match exposes the underlying match.
func (g *Game) Match() *Match { return g.match }

// Config returns the configuration in use.
func (g *Game) Config() config.ShifterConfig { return g.cfg }

// ConfigError returns the error from loading a custom config, if the game
// fell back to defaults because of it.
func (g *Game) ConfigError() error { return g.cfgErr }

func (g *Game) Seed() int64          { return g.match.Seed() }
func (g *Game) StartLevel() int      { return g.match.Level().Number() }
func (g *Game) ConfigDigest() string { return g.cfg.Digest() }
func (g *Game) HighestLevel() int    { return g.match.Level().Number() }

// Hash returns the determinism hash of the current state.
func (g *Game) Hash() uint64 {
	snap := g.match.Snapshot()
	return snap.Hash()
}

// Render draws the current match to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.match.Snapshot()
	Draw(dst, &snap)
}

func init() {
	registry.Register("duel", func() registry.Game {
		return New()
	})
}
