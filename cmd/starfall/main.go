// starfall is an arcade shooter: dodge and shoot the falling squares, chase
// the high score. It runs in the terminal, in a desktop window or as an SSH
// server.
//
// Usage:
//
//	starfall                 - Play in the terminal (same as "starfall play")
//	starfall window          - Play in a desktop window
//	starfall serve           - Start SSH server for remote play
//	starfall scores          - Show recorded runs
//	starfall config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60; window: config tps)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set run history path (default: ~/.starfall/runs.db)
//	--highscore <path>     - Keep the best score in this file
//	--config <path>        - Load a custom shooter.yaml
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagHighScore  string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - an arcade shooter for your terminal",
	Long: `Starfall is a small arcade shooter. Squares fall from the top of the
screen; shoot them for points and do not let them touch your ship.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print the effective configuration

Examples:
  starfall
  starfall play --difficulty hard
  starfall window --sound
  starfall serve --ssh :2222
  starfall scores --plain`,
	Run: runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate in frames per second (window default comes from config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	flags.StringVar(&flagHighScore, "highscore", "", "Path to high score file (default: app data directory)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file for terminal play")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVar(&flagSound, "sound", false, "Enable sound cues (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
