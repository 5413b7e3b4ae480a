package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/platform/audio"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/recorder"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Move
  Space             - Fire
  P/Esc             - Pause / resume
  Enter             - Start / back to menu
  Q                 - Quit (main menu)
  Ctrl+S            - Save screenshot
  Ctrl+C            - Force quit

Difficulty options:
  easy    - Fewer, slower enemies
  normal  - Values from the config file
  hard    - More, faster enemies

Examples:
  starfall play
  starfall play --difficulty hard
  starfall play --seed 42 --fps 30
  starfall play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fatal("loading config: %v", err)
	}

	logger, closer, err := newLogger(flagLogFile)
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Default size if we can't detect
		width, height = 80, 24
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	scores := openHighScore(logger)
	runs := openRuns(logger)
	if runs != nil {
		defer runs.Close()
	}

	sound := audio.New(cfg.Audio, logger)
	if err := sound.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer sound.Close()

	err = tui.Run(tui.Options{
		Config:   cfg,
		Runtime:  rt,
		Store:    scores,
		Recorder: recorder.New(sound, runSaver(runs), logger, "tui"),
		Logger:   logger,
	})
	if err != nil {
		fatal("running game: %v", err)
	}
}
