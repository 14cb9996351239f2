// arcade runs Shape Shifter, a terminal arcade shooter, and its local
// two-player duel.
//
// Usage:
//
//	arcade list              - List available game modes
//	arcade play [game]       - Play (defaults to shifter)
//	arcade serve             - Start SSH server for remote play
//	arcade runs [game]       - List recently recorded runs
//	arcade replay <run-id>   - Re-simulate a recorded run and verify it
//
// The frame rate follows timing.tick_ms in the game config.
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/shifter.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/shape-shifter/internal/games/duel"
	_ "github.com/vovakirdan/shape-shifter/internal/games/shifter"
)

const defaultGameID = "shifter"

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Shape Shifter - a shape-matching shooter for your terminal",
	Long: `Shape Shifter is a level-based arcade shooter played in the terminal.
Switch between circle, triangle and cube, and hit enemies of your own
shape for double points. Two players can share the keyboard in duel mode.

Available commands:
  list     - Show all game modes
  play     - Pick a level and play
  serve    - Start SSH server for remote play
  runs     - List recorded runs
  replay   - Verify a recorded run

Examples:
  arcade play
  arcade play --level 3
  arcade play duel
  arcade serve --ssh :2222
  arcade runs
  arcade replay 6f1c...`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/shifter.db", "Path to the run journal database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGameID
}
