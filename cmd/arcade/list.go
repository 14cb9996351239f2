package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-shifter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long: `Shows every game mode with the number of players at one keyboard.
Any mode can be passed to 'arcade play'.`,
	Run: runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true)

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No game modes registered.")
		return
	}

	fmt.Print(modesTable(modes))
	fmt.Println()
	fmt.Println("Run 'arcade play <mode>' to start one.")
}

// modesTable lays the modes out in aligned columns.
func modesTable(modes []registry.GameInfo) string {
	idWidth, titleWidth := len("MODE"), len("TITLE")
	for _, m := range modes {
		idWidth = max(idWidth, len(m.ID))
		titleWidth = max(titleWidth, len(m.Title))
	}

	var b strings.Builder
	header := fmt.Sprintf("%-*s  %-*s  %s", idWidth, "MODE", titleWidth, "TITLE", "PLAYERS")
	b.WriteString(listHeaderStyle.Render(header))
	b.WriteByte('\n')
	for _, m := range modes {
		fmt.Fprintf(&b, "%-*s  %-*s  %s\n", idWidth, m.ID, titleWidth, m.Title, seats(m.Players))
	}
	return b.String()
}

func seats(players int) string {
	if players <= 1 {
		return "1"
	}
	return fmt.Sprintf("%d (shared keyboard)", players)
}
