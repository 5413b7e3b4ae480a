package starfall

import (
	"github.com/vovakirdan/starfall/internal/config"
)

// Rand is the random source the spawner draws from.
// *math/rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Intn(n int) int
	Float32() float32
}

// Spawner rolls once per frame for a new enemy.
// The chance is per frame rather than per second, so spawn density follows
// the frame rate.
type Spawner struct {
	rng Rand
	cfg config.SpawnerConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand, cfg config.SpawnerConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Roll draws for this frame and returns a new enemy above the top edge when
// the draw hits the threshold.
func (s *Spawner) Roll(width float32) (Entity, bool) {
	if s.rng.Intn(s.cfg.Roll) < s.cfg.Threshold {
		return Entity{}, false
	}

	size := s.uniform(s.cfg.MinSize, s.cfg.MaxSize)
	speed := s.uniform(s.cfg.MinSpeed, s.cfg.MaxSpeed)

	// Narrow areas cannot fit the margin; center the enemy instead.
	x := width / 2
	if lo, hi := size/2, width-size/2; hi > lo {
		x = s.uniform(lo, hi)
	}

	return newEntity(x, -size, size, speed), true
}

func (s *Spawner) uniform(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}
