package duel

import (
	"testing"
	"time"

	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/registry"
)

func TestDuelRegistered(t *testing.T) {
	info, ok := registry.Lookup("duel")
	if !ok {
		t.Fatal("duel should be registered")
	}
	if info.Title != "Shape Shifter Duel" || info.Players != 2 {
		t.Errorf("registry entry = %+v", info)
	}

	g, err := registry.Create("duel")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if registry.Players(g) != 2 {
		t.Error("duel should seat two players")
	}
}

func TestGameReset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 5, StartLevel: 3})

	if g.ConfigError() != nil {
		t.Errorf("default config should load: %v", g.ConfigError())
	}
	if g.Seed() != 5 || g.StartLevel() != 3 || g.HighestLevel() != 3 {
		t.Errorf("seed=%d start=%d highest=%d", g.Seed(), g.StartLevel(), g.HighestLevel())
	}
	if g.ConfigDigest() != config.DefaultShifterConfig().Digest() {
		t.Error("digest should fingerprint the loaded config")
	}
	if g.TickInterval() != 16*time.Millisecond {
		t.Errorf("TickInterval() = %v", g.TickInterval())
	}
	if st := g.State(); st.Phase != string(PhaseStart) || st.Level != 3 || st.GameOver {
		t.Errorf("state = %+v", st)
	}
}

func TestGameResetBadConfigFallsBack(t *testing.T) {
	SetConfigPath("/no/such/duel.yaml")
	defer SetConfigPath("")

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.ConfigError() == nil {
		t.Error("missing custom config should be reported")
	}
	if g.Config() != config.DefaultShifterConfig() {
		t.Error("defaults should be used")
	}
}

func TestGameStepReportsState(t *testing.T) {
	g := newTestGame(1)
	res := g.Step(core.FrameOf(core.ActionConfirm))
	if res.State.Phase != string(PhasePlaying) || len(res.Events) == 0 {
		t.Errorf("step result = %+v", res)
	}

	res = g.Step(core.FrameOf(core.ActionPause))
	if !res.State.Paused {
		t.Error("State should report pause")
	}
}
