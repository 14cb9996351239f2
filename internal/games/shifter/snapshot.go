package shifter

import (
	"math"
	"slices"

	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
)

// PlayerView is the player as seen by rendering.
type PlayerView struct {
	X, Y         int
	Kind         Shape
	Health       int
	MaxHealth    int
	Lives        int
	Speed        int
	Invulnerable bool
}

// TransitionView describes the level fade.
type TransitionView struct {
	Active    bool
	Alpha     float64
	Direction FadeDirection
	Shown     LevelInfo // Banner currently displayed
	Target    LevelInfo // Level being entered
}

// Snapshot is an immutable copy of the session state taken after a step.
// Slices are owned by the snapshot; rendering may read them freely.
type Snapshot struct {
	Tick         uint64
	Elapsed      int64 // Tick times tick_ms: game time including frozen ticks
	Now          int64
	Phase        Phase
	Paused       bool
	Player       PlayerView
	Enemies      []Enemy
	Projectiles  []Projectile
	PowerUps     []PowerUp
	Level        LevelInfo
	Points       int
	Progress     float64
	Score        int
	HighestLevel int
	Transition   TransitionView
	Width        int
	Height       int

	// Determinism state
	Pending  []ScheduledEvent
	RNGState uint64
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.ticks,
		Elapsed: int64(s.ticks) * int64(s.cfg.Timing.TickMs), //#nosec G115 -- tick counts stay far below 2^63
		Now:     s.now,
		Phase:   s.phase,
		Player: PlayerView{
			X:            s.player.X,
			Y:            s.player.Y,
			Kind:         s.player.Kind,
			Health:       s.player.Health,
			MaxHealth:    s.player.MaxHealth,
			Lives:        s.player.Lives,
			Speed:        s.player.Speed,
			Invulnerable: s.player.Invulnerable(s.now),
		},
		Enemies:      slices.Clone(s.enemies),
		Projectiles:  slices.Clone(s.projectiles),
		PowerUps:     slices.Clone(s.powerUps),
		Level:        s.level.Info(),
		Points:       s.level.CurrentPoints(),
		Progress:     s.level.Progress(),
		Score:        s.score,
		HighestLevel: s.highestLevel,
		Width:        s.cfg.PlayArea.Width,
		Height:       s.cfg.PlayArea.Height,
		Pending:      s.sched.events(),
		RNGState:     s.rng.State(),
	}
	snap.Paused = s.phase == PhasePaused
	if s.transition.Active() {
		snap.Transition = TransitionView{
			Active:    true,
			Alpha:     s.transition.Alpha(),
			Direction: s.transition.Direction(),
			Shown:     s.transition.Shown().Info(),
			Target:    s.transition.Target().Info(),
		}
	}
	return snap
}

// State converts the snapshot to the platform's summary.
func (snap *Snapshot) State() core.GameState {
	return core.GameState{
		Score:    snap.Score,
		Level:    snap.Level.Number,
		Phase:    string(snap.Phase),
		GameOver: snap.Phase == PhaseGameOver,
		Paused:   snap.Paused,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	mixF := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}

	h = h*31 + uint64(snap.Now) //#nosec G115 -- hash computation
	for _, r := range snap.Phase {
		mix(int(r))
	}

	p := snap.Player
	mix(p.X)
	mix(p.Y)
	mix(int(p.Kind))
	mix(p.Health)
	mix(p.MaxHealth)
	mix(p.Lives)
	mix(p.Speed)
	if p.Invulnerable {
		mix(1)
	}

	mix(len(snap.Enemies))
	for _, e := range snap.Enemies {
		mix(e.X)
		mix(e.Y)
		mix(int(e.Kind))
		mix(e.Health)
		mix(e.MaxHealth)
		mix(e.Damage)
		mixF(e.Speed)
		mixF(e.yExact)
	}

	mix(len(snap.Projectiles))
	for _, pr := range snap.Projectiles {
		mix(pr.X)
		mix(pr.Y)
		mix(pr.DX)
		mix(pr.DY)
		mix(int(pr.Kind))
	}

	mix(len(snap.PowerUps))
	for _, pu := range snap.PowerUps {
		mix(pu.X)
		mix(pu.Y)
		mix(int(pu.Type))
		mixF(pu.yExact)
	}

	mix(snap.Level.Number)
	mix(snap.Points)
	mix(snap.Score)
	mix(snap.HighestLevel)

	if snap.Transition.Active {
		mix(int(snap.Transition.Direction))
		mixF(snap.Transition.Alpha)
		mix(snap.Transition.Target.Number)
	}

	for _, ev := range snap.Pending {
		mix(int(ev.Kind))
		h = h*31 + uint64(ev.Due) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}

// Replay runs a fresh session over recorded input frames and returns the
// final snapshot. Identical seed, level, config and frames always yield an
// identical snapshot.
func Replay(cfg config.ShifterConfig, seed int64, startLevel int, frames []core.InputFrame) Snapshot {
	s := NewSession(cfg, seed, startLevel)
	for _, in := range frames {
		s.Step(in)
	}
	return s.Snapshot()
}
