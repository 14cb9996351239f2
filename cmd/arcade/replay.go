package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/games/duel"
	"github.com/vovakirdan/shape-shifter/internal/games/shifter"
	"github.com/vovakirdan/shape-shifter/internal/storage"
)

var flagReplayConfig string

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run and verify it",
	Long: `Replay a recorded run headless from its seed, start level and input,
and check the final state hash against the one recorded.

The run must be replayed with the same configuration it was played with.
Use --config when the run was played with a custom config.

Examples:
  arcade replay 0b5e4c0e-0d5a-4e8e-9a55-1f2d7c8e4a10
  arcade replay <id> --config ./my-shifter.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayConfig, "config", "", "Path to the config YAML the run was played with")
}

func runReplay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "replay"})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}

	run, err := store.Run(args[0])
	store.Close()
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no run %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'arcade runs' to see recorded runs.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadShifter(flagReplayConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if digest := cfg.Digest(); digest != run.ConfigDigest {
		logger.Warn("config differs from the one recorded", "digest", digest, "recorded", run.ConfigDigest)
	}

	got, summary, err := replayRun(run, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %s (%s)\n", run.ID, run.GameID)
	fmt.Printf("  Seed:        %d\n", run.Seed)
	fmt.Printf("  Start level: %d\n", run.StartLevel)
	fmt.Printf("  Ticks:       %d\n", len(run.Frames))
	fmt.Printf("  Final state: %s\n", summary)
	fmt.Println()

	if got != run.Hash {
		logger.Error("replay diverged", "run", run.ID, "hash", fmt.Sprintf("%016x", got), "recorded", fmt.Sprintf("%016x", run.Hash))
		fmt.Println("MISMATCH")
		os.Exit(1)
	}
	fmt.Printf("OK: hash %016x matches\n", run.Hash)
}

// replayRun re-simulates run with the engine of its game and returns the
// final hash with a one-line summary of the final state.
func replayRun(run storage.Run, cfg config.ShifterConfig) (uint64, string, error) {
	switch run.GameID {
	case "shifter":
		snap := shifter.Replay(cfg, run.Seed, run.StartLevel, run.Frames)
		return snap.Hash(), fmt.Sprintf("%s, level %d, score %d", snap.Phase, snap.Level.Number, snap.Score), nil
	case "duel":
		snap := duel.Replay(cfg, run.Seed, run.StartLevel, run.Frames)
		summary := fmt.Sprintf("%s, level %d, wins %d-%d", snap.Phase, snap.Level, snap.Wins[0], snap.Wins[1])
		if snap.Result != duel.Undecided {
			summary += ", " + snap.Result.String()
		}
		return snap.Hash(), summary, nil
	default:
		return 0, "", fmt.Errorf("runs of %q cannot be replayed", run.GameID)
	}
}
