// Package tui provides the Bubble Tea integration for the arcade: the game
// loop, key bindings, the level picker, run recording and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is used for games that do not fix their own tick.
const DefaultTickInterval = 16 * time.Millisecond

// Clocked is implemented by games whose simulation advances a fixed amount
// of game time per step. The loop ticks at exactly that interval so game
// time and wall time stay in step.
type Clocked interface {
	TickInterval() time.Duration
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the real-time interval between steps of game.
func tickInterval(game any) time.Duration {
	if c, ok := game.(Clocked); ok && c.TickInterval() > 0 {
		return c.TickInterval()
	}
	return DefaultTickInterval
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
