// Package config provides YAML-based game configuration loading and
// difficulty presets for starfall.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all configuration for the shooter and its frontends.
type ShooterConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Cleanup    CleanupConfig    `yaml:"cleanup"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Window     WindowConfig     `yaml:"window"`
	Audio      AudioConfig      `yaml:"audio"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Size  float32 `yaml:"size"`  // Side of the square hitbox, also the clamp margin
	Speed float32 `yaml:"speed"` // Movement speed in world units per second
}

// ProjectileConfig defines projectiles fired by the player.
type ProjectileConfig struct {
	Size        float32 `yaml:"size"`
	SpeedFactor float32 `yaml:"speed_factor"` // Multiplier applied to the player speed
	Offset      float32 `yaml:"offset"`       // Spawn distance above the player center
}

// SpawnerConfig defines the per-frame enemy spawn draw.
// Each frame draws an integer in [0, Roll); a draw >= Threshold spawns one enemy.
type SpawnerConfig struct {
	Roll      int     `yaml:"roll"`
	Threshold int     `yaml:"threshold"`
	MinSize   float32 `yaml:"min_size"`
	MaxSize   float32 `yaml:"max_size"`
	MinSpeed  float32 `yaml:"min_speed"`
	MaxSpeed  float32 `yaml:"max_speed"`
}

// ExitBound selects which screen dimension enemies must pass to be removed.
type ExitBound string

const (
	ExitBoundWidth  ExitBound = "width"
	ExitBoundHeight ExitBound = "height"
)

// CleanupConfig defines off-screen removal.
type CleanupConfig struct {
	EnemyExitBound ExitBound `yaml:"enemy_exit_bound"`
}

// TerminalConfig defines how the world maps onto terminal cells.
type TerminalConfig struct {
	CellWidth    float32 `yaml:"cell_width"`     // World units per column
	CellHeight   float32 `yaml:"cell_height"`    // World units per row
	HoldWindowMS int     `yaml:"hold_window_ms"` // How long a direction stays held after a key event
	HUDRows      int     `yaml:"hud_rows"`       // Rows reserved for score and help
}

// WindowConfig defines the desktop window frontend.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// AudioConfig defines the sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Base-2 exponent, 0 is unchanged
	SampleRate int     `yaml:"sample_rate"`
}

// Validate reports every invalid setting at once.
func (c ShooterConfig) Validate() error {
	var errs []error

	if !(c.Player.Size > 0) {
		errs = append(errs, fmt.Errorf("player.size must be positive, got %v", c.Player.Size))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %v", c.Player.Speed))
	}
	if !(c.Projectile.Size > 0) {
		errs = append(errs, fmt.Errorf("projectile.size must be positive, got %v", c.Projectile.Size))
	}
	if c.Projectile.SpeedFactor < 0 {
		errs = append(errs, fmt.Errorf("projectile.speed_factor must not be negative, got %v", c.Projectile.SpeedFactor))
	}
	if c.Spawner.Roll <= 0 {
		errs = append(errs, fmt.Errorf("spawner.roll must be positive, got %d", c.Spawner.Roll))
	}
	if c.Spawner.Threshold < 0 {
		errs = append(errs, fmt.Errorf("spawner.threshold must not be negative, got %d", c.Spawner.Threshold))
	}
	if !(c.Spawner.MinSize > 0) || c.Spawner.MaxSize < c.Spawner.MinSize {
		errs = append(errs, fmt.Errorf("spawner size range [%v, %v] is invalid", c.Spawner.MinSize, c.Spawner.MaxSize))
	}
	if c.Spawner.MinSpeed < 0 || c.Spawner.MaxSpeed < c.Spawner.MinSpeed {
		errs = append(errs, fmt.Errorf("spawner speed range [%v, %v] is invalid", c.Spawner.MinSpeed, c.Spawner.MaxSpeed))
	}
	switch c.Cleanup.EnemyExitBound {
	case ExitBoundWidth, ExitBoundHeight:
	default:
		errs = append(errs, fmt.Errorf("cleanup.enemy_exit_bound must be %q or %q, got %q",
			ExitBoundWidth, ExitBoundHeight, c.Cleanup.EnemyExitBound))
	}
	if !(c.Terminal.CellWidth > 0) || !(c.Terminal.CellHeight > 0) {
		errs = append(errs, fmt.Errorf("terminal cell size %vx%v is invalid", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	if c.Terminal.HUDRows < 0 {
		errs = append(errs, fmt.Errorf("terminal.hud_rows must not be negative, got %d", c.Terminal.HUDRows))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window %dx%d@%d is invalid", c.Window.Width, c.Window.Height, c.Window.TPS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Empty means "keep the config".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyShooterPreset adjusts spawn pressure for a difficulty preset.
// Normal leaves the configuration untouched.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.Threshold = cfg.Spawner.Roll - cfg.Spawner.Roll*3/100
		cfg.Spawner.MinSpeed *= 0.8
		cfg.Spawner.MaxSpeed *= 0.8
	case DifficultyHard:
		cfg.Spawner.Threshold = cfg.Spawner.Roll - cfg.Spawner.Roll*8/100
		cfg.Spawner.MinSpeed *= 1.3
		cfg.Spawner.MaxSpeed *= 1.3
	}
}
