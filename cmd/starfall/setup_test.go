package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
)

// overrideCommand parses args against the global flags that applyOverrides reads.
func overrideCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) failed: %v", args, err)
	}
	return cmd
}

func TestApplyOverrides(t *testing.T) {
	defaults := config.DefaultShooterConfig()

	tests := []struct {
		name  string
		args  []string
		tps   int
		sound bool
	}{
		{"no flags", nil, defaults.Window.TPS, defaults.Audio.Enabled},
		{"fps", []string{"--fps", "30"}, 30, defaults.Audio.Enabled},
		{"sound", []string{"--sound"}, defaults.Window.TPS, true},
		{"sound off", []string{"--sound=false", "--fps=144"}, 144, false},
	}

	for _, tt := range tests {
		cfg := config.DefaultShooterConfig()
		applyOverrides(overrideCommand(t, tt.args...), &cfg)

		if cfg.Window.TPS != tt.tps {
			t.Errorf("%s: Window.TPS = %d, want %d", tt.name, cfg.Window.TPS, tt.tps)
		}
		if cfg.Audio.Enabled != tt.sound {
			t.Errorf("%s: Audio.Enabled = %v, want %v", tt.name, cfg.Audio.Enabled, tt.sound)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"[::1]:22":       "22",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}
