package registry

import (
	"slices"
	"testing"

	"github.com/vovakirdan/shape-shifter/internal/core"
)

type stubGame struct {
	id      string
	players int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type seatedStub struct{ stubGame }

func (g *seatedStub) Players() int { return g.players }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q", g.ID())
	}

	info, ok := Lookup("stub-a")
	if !ok || info.Title != "Stub stub-a" || info.Players != 1 {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}
}

func TestListOrdersSoloModesFirst(t *testing.T) {
	Register("stub-versus", func() Game { return &seatedStub{stubGame{id: "stub-versus", players: 2}} })
	Register("stub-z", func() Game { return &stubGame{id: "stub-z"} })

	ids := make([]string, 0)
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	solo, versus := slices.Index(ids, "stub-z"), slices.Index(ids, "stub-versus")
	if solo < 0 || versus < 0 {
		t.Fatalf("List() = %v, missing registered modes", ids)
	}
	if versus < solo {
		t.Errorf("two-player mode listed before a solo one: %v", ids)
	}
	if info, _ := Lookup("stub-versus"); info.Players != 2 {
		t.Errorf("Players = %d, expected 2", info.Players)
	}
}

func TestPlayers(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want int
	}{
		{"plain game", &stubGame{id: "a"}, 1},
		{"two seats", &seatedStub{stubGame{id: "b", players: 2}}, 2},
		{"zero seats", &seatedStub{stubGame{id: "c", players: 0}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Players(tt.game); got != tt.want {
				t.Errorf("Players() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists() should be false for an unknown id")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "stub-dup", func() Game { return &stubGame{id: "stub-dup"} }},
		{"empty id", "", func() Game { return &stubGame{} }},
		{"mismatched id", "stub-b", func() Game { return &stubGame{id: "other"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) should panic", tt.id)
				}
			}()
			Register(tt.id, tt.f)
		})
	}
}
