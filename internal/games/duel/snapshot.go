package duel

import (
	"math"
	"slices"

	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
)

// Snapshot is an immutable copy of the match taken after a step.
type Snapshot struct {
	Tick     uint64
	Elapsed  int64 // Tick times tick_ms: game time including frozen ticks
	Now      int64
	Phase    Phase
	Level    int
	Fighters [2]Fighter
	Drones   []Drone
	Shots    []Shot
	Pickups  []Pickup
	Result   Result
	Wins     [2]int
	Width    int
	Height   int
	RNGState uint64
}

// Snapshot returns the current state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Tick:     m.ticks,
		Elapsed:  int64(m.ticks) * int64(m.cfg.Timing.TickMs), //#nosec G115 -- tick counts stay far below 2^63
		Now:      m.now,
		Phase:    m.phase,
		Level:    m.level.Number(),
		Fighters: m.fighters,
		Drones:   slices.Clone(m.drones),
		Shots:    slices.Clone(m.shots),
		Pickups:  slices.Clone(m.pickups),
		Result:   m.result,
		Wins:     m.wins,
		Width:    m.cfg.PlayArea.Width,
		Height:   m.cfg.PlayArea.Height,
		RNGState: m.rng.State(),
	}
}

// State converts the snapshot to the platform's summary. The score of a
// finished duel is the winner's remaining health.
func (snap *Snapshot) State() core.GameState {
	score := 0
	switch snap.Result {
	case PlayerOneWins:
		score = snap.Fighters[PlayerOne].Health
	case PlayerTwoWins:
		score = snap.Fighters[PlayerTwo].Health
	}
	return core.GameState{
		Score:    score,
		Level:    snap.Level,
		Phase:    string(snap.Phase),
		GameOver: snap.Phase == PhaseGameOver,
		Paused:   snap.Phase == PhasePaused,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	mix64 := func(v int64) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	mixF := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}

	mix64(snap.Now)
	for _, r := range snap.Phase {
		mix(int(r))
	}
	mix(snap.Level)

	for _, f := range snap.Fighters {
		mix(f.X)
		mix(f.Y)
		mix(int(f.Kind))
		mix(f.Health)
		mix64(f.ShieldUntil)
		mix64(f.BoostUntil)
		mix64(f.InvulnerableUntil)
		mix64(f.LastShotAt)
		mix(f.Hits)
		mix(f.Kills)
	}

	mix(len(snap.Drones))
	for _, d := range snap.Drones {
		mix(int(d.Kind))
		mix(d.Health)
		mix(d.Damage)
		mixF(d.FX)
		mixF(d.FY)
		mixF(d.DX)
		mixF(d.DY)
	}

	mix(len(snap.Shots))
	for _, s := range snap.Shots {
		mix(s.X)
		mix(s.Y)
		mix(s.DY)
		mix(int(s.Kind))
		mix(int(s.Owner))
	}

	mix(len(snap.Pickups))
	for _, p := range snap.Pickups {
		mix(p.X)
		mix(p.Y)
		mix(int(p.Type))
		mix64(p.ExpiresAt)
	}

	mix(int(snap.Result))
	mix(snap.Wins[PlayerOne])
	mix(snap.Wins[PlayerTwo])

	h = h*31 + snap.RNGState
	return h
}

// Replay runs a fresh match over recorded input frames and returns the
// final snapshot.
func Replay(cfg config.ShifterConfig, seed int64, level int, frames []core.InputFrame) Snapshot {
	m := NewMatch(cfg, seed, level)
	for _, in := range frames {
		m.Step(in)
	}
	return m.Snapshot()
}
