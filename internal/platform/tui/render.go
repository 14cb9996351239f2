package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shape-shifter/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:        lipgloss.NewStyle(),
	core.ColorText:           lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGrid:           lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorHealthRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorSuccessGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorAccentYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorPlayerCircle:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorPlayerTriangle: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorPlayerCube:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorEnemyCircle:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorEnemyTriangle:  lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColorEnemyCube:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorSpeedBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorDim:            lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
