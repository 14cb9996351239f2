// Package shifter implements Shape Shifter, a level-based arcade shooter:
// the player changes between three shapes and fires at falling enemy
// shapes, scoring double for hitting an enemy of its own shape.
package shifter

import (
	"time"

	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game adapts a Session to the arcade's registry.Game interface.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.ShifterConfig
	cfgErr  error
}

// New creates a new Shape Shifter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shifter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shape Shifter"
}

// Reset loads the configuration and creates a fresh session in the Start
// phase. The start level comes from the runtime config, then the
// difficulty preset, then level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShifter(configPath)
	if err != nil {
		cfg = config.DefaultShifterConfig()
	}
	g.cfg = cfg
	g.cfgErr = err

	g.session = NewSession(cfg, runtime.Seed, g.startLevel())
}

func (g *Game) startLevel() int {
	switch {
	case g.runtime.StartLevel > 0:
		return g.runtime.StartLevel
	case difficultyPreset != "":
		return difficultyPreset.StartLevel()
	default:
		return 1
	}
}

// ResetWith creates a fresh session from an explicit configuration,
// bypassing the config search. Used for replays.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.ShifterConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.cfgErr = nil
	g.session = NewSession(cfg, runtime.Seed, g.startLevel())
}

// TickInterval returns the real time one step stands for. The platform
// steps the game at this interval.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.Timing.TickInterval()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.session.Step(in)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level().Number(),
		Phase:    string(g.session.Phase()),
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.session.Phase() == PhasePaused,
	}
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration in use.
func (g *Game) Config() config.ShifterConfig {
	return g.cfg
}

// ConfigError returns the error from loading a custom config, if the game
// fell back to defaults because of it.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.session.Seed()
}

// StartLevel returns the level the current session starts and restarts at.
func (g *Game) StartLevel() int {
	return g.session.StartLevel()
}

// ConfigDigest fingerprints the configuration in use so a recorded run can
// be checked before replay.
func (g *Game) ConfigDigest() string {
	return g.cfg.Digest()
}

// HighestLevel returns the highest level reached in the current game.
func (g *Game) HighestLevel() int {
	return g.session.HighestLevel()
}

// Hash returns the determinism hash of the current state.
func (g *Game) Hash() uint64 {
	snap := g.session.Snapshot()
	return snap.Hash()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.session.Snapshot()
	Draw(dst, &snap)
}

// Register the game with the registry
func init() {
	registry.Register("shifter", func() registry.Game {
		return New()
	})
}
