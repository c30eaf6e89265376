// starrunner is a terminal arcade game: steer through falling stars and
// power-ups, dodge comets and homing rocks.
//
// Usage:
//
//	starrunner                 - Play Star Runner
//	starrunner play [game]     - Play a game (default: starrunner)
//	starrunner menu            - Start menu with scoreboard
//	starrunner list            - List available games
//	starrunner scores [game]   - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.starrunner/scores.db)
//	--log-file <path>  - Write logs to a file while the game runs
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-runner/internal/games/starrunner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

var (
	logger  = log.New(os.Stderr)
	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starrunner",
	Short: "Star Runner - dodge comets, catch stars, in your terminal",
	Long: `Star Runner is a terminal arcade game. Steer your ship to catch
falling stars while avoiding comets and the rocks that hunt you.

Power-ups:
  ϟ  lightning - double horizontal speed for a while
  $  frenzy    - a shower of stars
  ↺  reset     - shrink comets and slow rocks back down

Available commands:
  play     - Play directly (default)
  menu     - Interactive menu with scoreboard
  list     - Show all available games
  scores   - View high scores

Examples:
  starrunner
  starrunner play --difficulty hard
  starrunner menu
  starrunner scores`,
	PersistentPreRunE: setupLogger,
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starrunner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogger builds the process logger from the global flags.
func setupLogger(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logFile = f
	}

	level := log.WarnLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "starrunner",
		Level:           level,
	})
	return nil
}

// tuiLogger returns the logger to use while the TUI owns the terminal.
// Without a log file anything written would corrupt the screen.
func tuiLogger() *log.Logger {
	if logFile == nil {
		return nil
	}
	return logger
}

// configureGames passes CLI settings to the games before they are created.
func configureGames() {
	starrunner.SetConfigPath(flagConfig)
	starrunner.SetDifficultyPreset(flagDifficulty)
	starrunner.SetLogger(tuiLogger())
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
