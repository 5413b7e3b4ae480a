package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/platform/audio"
	"github.com/vovakirdan/starfall/internal/platform/window"
	"github.com/vovakirdan/starfall/internal/recorder"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there. Unlike the terminal, the window
sees real key releases, so movement follows the keys exactly.

Window size, title and tick rate come from the "window" section of the
config; --fps overrides the tick rate. Logs go to stderr unless --log-file
is set explicitly.

Examples:
  starfall window
  starfall window --sound --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fatal("loading config: %v", err)
	}

	logPath := ""
	if cmd.Flags().Changed("log-file") {
		logPath = flagLogFile
	}
	logger, closer, err := newLogger(logPath)
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

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

	err = window.Run(window.Options{
		Config:   cfg,
		Seed:     flagSeed,
		Store:    scores,
		Recorder: recorder.New(sound, runSaver(runs), logger, "window"),
		Logger:   logger,
	})
	if err != nil {
		fatal("running game: %v", err)
	}
}
