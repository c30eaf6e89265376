package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-runner/internal/config"
	"github.com/vovakirdan/star-runner/internal/core"
	"github.com/vovakirdan/star-runner/internal/games/starrunner"
	"github.com/vovakirdan/star-runner/internal/platform/tui"
	"github.com/vovakirdan/star-runner/internal/registry"
	"github.com/vovakirdan/star-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (Star Runner by default).

Controls:
  Arrows/WASD  - Steer (the ship stops shortly after you let go)
  Space        - Stop
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Comets and rocks spawn less often
  normal - Default tuning
  hard   - Comets and rocks spawn more often
  fixed  - Comets never grow

Examples:
  starrunner play
  starrunner play --difficulty hard
  starrunner play --config ./my-starrunner.yaml
  starrunner play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the game tuning flags on a command.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play goes on without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := starrunner.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starrunner list' to see available games.")
		os.Exit(1)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Surface config problems before the screen is taken over
	if _, err := config.LoadStarRunner(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	configureGames()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	// Run the game
	runErr := tui.Run(game, store, terminalConfig(), tuiLogger())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
