package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/games/duel"
	"github.com/vovakirdan/shape-shifter/internal/games/shifter"
	"github.com/vovakirdan/shape-shifter/internal/registry"
	"github.com/vovakirdan/shape-shifter/internal/storage"
)

func TestGameArg(t *testing.T) {
	if got := gameArg(nil); got != "shifter" {
		t.Errorf("gameArg(nil) = %q, expected shifter", got)
	}
	if got := gameArg([]string{"other"}); got != "other" {
		t.Errorf("gameArg = %q, expected other", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/.arcade/shifter.log", filepath.Join(home, ".arcade", "shifter.log")},
		{"/tmp/x.log", "/tmp/x.log"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandHome(tt.in)
			if err != nil {
				t.Fatalf("expandHome: %v", err)
			}
			if got != tt.want {
				t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shifter.log")
	f, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString("hello\n"); err != nil {
		t.Errorf("Log file should be writable: %v", err)
	}
}

func TestRunsTable(t *testing.T) {
	runs := []storage.Run{
		{
			ID:           "0b5e4c0e-0d5a-4e8e-9a55-1f2d7c8e4a10",
			Seed:         42,
			StartLevel:   3,
			HighestLevel: 5,
			Score:        1234,
			Games:        2,
			Ticks:        9000,
			CreatedAt:    time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
		},
	}

	out := runsTable(runs)
	for _, want := range []string{"ID", "Ticks", runs[0].ID, "1234", "9000", "2025-03-01 12:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table should contain %q:\n%s", want, out)
		}
	}
}

func TestModesTable(t *testing.T) {
	out := modesTable(registry.List())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected a header and two modes, got:\n%s", out)
	}
	if !strings.Contains(lines[1], "shifter") || !strings.HasSuffix(lines[1], "1") {
		t.Errorf("Solo mode should come first with one player: %q", lines[1])
	}
	if !strings.Contains(lines[2], "duel") || !strings.Contains(lines[2], "2 (shared keyboard)") {
		t.Errorf("Duel should list two players: %q", lines[2])
	}
	if strings.Index(lines[1], "Shape Shifter") != strings.Index(lines[2], "Shape Shifter Duel") {
		t.Errorf("Title column should be aligned:\n%s", out)
	}
}

func TestReplayRunDispatchesByGame(t *testing.T) {
	cfg := config.DefaultShifterConfig()
	frames := []core.InputFrame{core.FrameOf(core.ActionConfirm)}
	for i := 0; i < 300; i++ {
		frames = append(frames, core.FrameOf(core.ActionFire, core.ActionP2Fire, core.ActionLeft))
	}

	run := storage.Run{GameID: "shifter", Seed: 7, StartLevel: 2, Frames: frames}
	hash, summary, err := replayRun(run, cfg)
	if err != nil {
		t.Fatalf("replayRun(shifter): %v", err)
	}
	shifterSnap := shifter.Replay(cfg, 7, 2, frames)
	if want := shifterSnap.Hash(); hash != want {
		t.Errorf("shifter hash %016x, expected %016x", hash, want)
	}
	if !strings.Contains(summary, "score") {
		t.Errorf("Shifter summary should carry the score: %q", summary)
	}

	run.GameID = "duel"
	duelHash, summary, err := replayRun(run, cfg)
	if err != nil {
		t.Fatalf("replayRun(duel): %v", err)
	}
	duelSnap := duel.Replay(cfg, 7, 2, frames)
	if want := duelSnap.Hash(); duelHash != want {
		t.Errorf("duel hash %016x, expected %016x", duelHash, want)
	}
	if !strings.Contains(summary, "wins") {
		t.Errorf("Duel summary should carry the wins: %q", summary)
	}

	run.GameID = "pong"
	if _, _, err := replayRun(run, cfg); err == nil {
		t.Error("Unknown games should not replay")
	}
}

func TestConfigError(t *testing.T) {
	if err := configError(nil); err != nil {
		t.Errorf("No game should mean no error, got %v", err)
	}
	g, err := registry.Create("duel")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: 1})
	if err := configError(g); err != nil {
		t.Errorf("Default config should load cleanly: %v", err)
	}
}
