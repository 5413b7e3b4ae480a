package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/highscore"
	"github.com/vovakirdan/starfall/internal/recorder"
	"github.com/vovakirdan/starfall/internal/storage"
)

const defaultLogFile = "~/" + config.AppDir + "/starfall.log"

// loadConfig resolves the shooter config from --config, --difficulty and the
// explicit overrides.
func loadConfig(cmd *cobra.Command) (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyShooterPreset(&cfg, preset)

	applyOverrides(cmd, &cfg)
	return cfg, cfg.Validate()
}

// applyOverrides copies explicitly set global flags into cfg. The terminal
// reads --fps directly; the window reads it from cfg.Window.TPS.
func applyOverrides(cmd *cobra.Command, cfg *config.ShooterConfig) {
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}
	if cmd.Flags().Changed("fps") {
		cfg.Window.TPS = flagFPS
	}
}

// newLogger creates the app logger. An empty path logs to stderr; otherwise
// the file is opened for append, since stderr belongs to the game screen.
// The returned closer is never nil.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if path != "" {
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", expanded, err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall",
		Level:           level,
	})
	return logger, closer, nil
}

// openHighScore opens the best-score store. Failure is not fatal: the game
// falls back to an in-memory best.
func openHighScore(logger *log.Logger) highscore.Store {
	store, err := highscore.Open(flagHighScore, logger)
	if err != nil {
		logger.Warn("high score storage unavailable", "err", err)
		return nil
	}
	return store
}

// openRuns opens the run history. Failure is not fatal.
func openRuns(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
		return nil
	}
	return store
}

// runSaver avoids handing a typed nil store to an interface.
func runSaver(store *storage.Store) recorder.RunSaver {
	if store == nil {
		return nil
	}
	return store
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
