package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shape-shifter/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "SCORE")
	s.SetColored(2, 1, '●', core.ColorEnemyCircle)
	s.SetColored(3, 1, '●', core.ColorEnemyCircle)
	s.SetColored(4, 2, '▲', core.ColorPlayerTriangle)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "SCORE") {
		t.Errorf("First line should contain SCORE: %q", lines[0])
	}
	if !strings.Contains(lines[1], "●●") {
		t.Errorf("Same-colored cells should render as one run: %q", lines[1])
	}
	if !strings.Contains(lines[2], "▲") {
		t.Errorf("Third line should contain the player: %q", lines[2])
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("Line %d has width %d, expected 10", i, w)
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(250))

	if out := RenderScreen(s); !strings.Contains(out, "x") {
		t.Errorf("Unknown colors should fall back to the default style: %q", out)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	palette := []core.Color{
		core.ColorDefault, core.ColorText, core.ColorGrid, core.ColorHealthRed,
		core.ColorSuccessGreen, core.ColorAccentYellow, core.ColorPlayerCircle,
		core.ColorPlayerTriangle, core.ColorPlayerCube, core.ColorEnemyCircle,
		core.ColorEnemyTriangle, core.ColorEnemyCube, core.ColorSpeedBlue, core.ColorDim,
	}
	for _, c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("No style for color %d", c)
		}
	}
}
