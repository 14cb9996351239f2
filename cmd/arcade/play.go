package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shape-shifter/internal/config"
	"github.com/vovakirdan/shape-shifter/internal/core"
	"github.com/vovakirdan/shape-shifter/internal/games/duel"
	"github.com/vovakirdan/shape-shifter/internal/games/shifter"
	"github.com/vovakirdan/shape-shifter/internal/platform/tui"
	"github.com/vovakirdan/shape-shifter/internal/registry"
	"github.com/vovakirdan/shape-shifter/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Pick a game mode and a starting level, then play.
Left/Right in the picker switches between shifter and duel.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  1/2/3        - Circle/Triangle/Cube
  P            - Pause

Duel (two players, one keyboard):
  Player 1     - Arrows, Space, 1/2/3
  Player 2     - WASD, F, Z/X/C
  Enter        - Start / restart
  Esc          - Back to the level picker (paused or game over)
  Ctrl+S       - Screenshot
  ?            - Help
  Q/Ctrl+C     - Quit

Difficulty presets pick the start level when --level is not given:
  easy   - level 1
  normal - level 3
  hard   - level 5
  insane - level 8

Examples:
  arcade play
  arcade play --level 4
  arcade play --difficulty hard
  arcade play duel --level 2
  arcade play --seed 42 --config ./my-shifter.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (0 = choose interactively)")
	playCmd.Flags().StringVar(&flagLogPath, "log", "~/.arcade/shifter.log", "Path to log file")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if flagLevel < 0 {
		fmt.Fprintf(os.Stderr, "Error: --level must be positive, got %d\n", flagLevel)
		os.Exit(1)
	}

	shifter.SetConfigPath(flagConfig)
	shifter.SetDifficultyPreset(flagDifficulty)
	duel.SetConfigPath(flagConfig)

	// The terminal belongs to Bubble Tea, so logs go to a file
	logFile, err := openLogFile(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	var logger *log.Logger
	if logFile != nil {
		defer logFile.Close()
		logger = log.NewWithOptions(logFile, log.Options{
			ReportTimestamp: true,
			Prefix:          "shifter",
			Level:           log.DebugLevel,
		})
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		Seed:       flagSeed,
		StartLevel: flagLevel,
	}
	// A preset skips the picker like an explicit level does
	if cfg.StartLevel == 0 && flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		cfg.StartLevel = preset.StartLevel()
	}

	var lastGame registry.Game
	newGame := func(id string) (registry.Game, error) {
		g, createErr := registry.Create(id)
		if createErr != nil {
			return nil, createErr
		}
		lastGame = g
		return g, nil
	}

	// Continue without storage - game still works
	var recorder tui.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
	} else {
		recorder = store
	}

	runErr := tui.RunSession(tui.SessionOptions{
		NewGame:  newGame,
		GameID:   gameID,
		Modes:    registry.List(),
		Recorder: recorder,
		Logger:   logger,
	}, cfg)

	if store != nil {
		store.Close()
	}

	if err := configError(lastGame); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config not loaded, defaults were used: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// configError reports the config load failure of games that fall back to
// defaults.
func configError(g registry.Game) error {
	if c, ok := g.(interface{ ConfigError() error }); ok {
		return c.ConfigError()
	}
	return nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
