package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Size:  32,
			Speed: 200,
		},
		Projectile: ProjectileConfig{
			Size:        6,
			SpeedFactor: 2,
			Offset:      0,
		},
		Spawner: SpawnerConfig{
			Roll:      100,
			Threshold: 95,
			MinSize:   16,
			MaxSize:   64,
			MinSpeed:  50,
			MaxSpeed:  150,
		},
		Cleanup: CleanupConfig{
			EnemyExitBound: ExitBoundWidth,
		},
		Terminal: TerminalConfig{
			CellWidth:    8,
			CellHeight:   16,
			HoldWindowMS: 250,
			HUDRows:      1,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			TPS:    60,
			Title:  "Starfall",
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     -1,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
