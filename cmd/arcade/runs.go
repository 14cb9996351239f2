package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-shifter/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "List recently recorded runs",
	Long: `Show the most recent recorded runs, newest first.

Every session is recorded with its seed, start level and per-tick input,
so any listed run can be re-simulated with 'arcade replay <id>'.

Examples:
  arcade runs
  arcade runs --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println(runsTable(runs))
	fmt.Println()
	if stats, err := store.GetRunStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Games: %d  Highest level: %d  Last played: %s\n",
			stats.Runs, stats.Games, stats.HighestLevel, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println("Run 'arcade replay <id>' to verify a run.")
}

// runsTable renders runs as a static table.
func runsTable(runs []storage.Run) string {
	columns := []table.Column{
		{Title: "ID", Width: 36},
		{Title: "Date", Width: 16},
		{Title: "Seed", Width: 20},
		{Title: "Start", Width: 5},
		{Title: "Best", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Games", Width: 5},
		{Title: "Ticks", Width: 8},
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.StartLevel),
			strconv.Itoa(r.HighestLevel),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Ticks),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("11"))
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
