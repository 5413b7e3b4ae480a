// Package audio plays short synthesized cues for game events.
// Cues are generated tones, so no sound assets ship with the binary.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/games/starfall"
)

// Cue is one tone: a frequency held for a duration.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

// cueFor maps an event to its tone. Events without a sound return false.
func cueFor(kind starfall.EventKind) (Cue, bool) {
	switch kind {
	case starfall.EventFired:
		return Cue{Freq: 880, Duration: 40 * time.Millisecond}, true
	case starfall.EventEnemyDestroyed:
		return Cue{Freq: 440, Duration: 90 * time.Millisecond}, true
	case starfall.EventPlayerHit:
		return Cue{Freq: 110, Duration: 400 * time.Millisecond}, true
	case starfall.EventNewHighScore:
		return Cue{Freq: 1320, Duration: 250 * time.Millisecond}, true
	case starfall.EventStarted:
		return Cue{Freq: 660, Duration: 120 * time.Millisecond}, true
	default:
		return Cue{}, false
	}
}

// Player mixes cues onto the default output device.
// A nil or disabled Player ignores every call.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

// New creates a player. Nothing is opened until Init.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. It is a no-op when audio is disabled.
func (p *Player) Init() error {
	if p == nil || !p.cfg.Enabled {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle plays the cue for each event that has one.
func (p *Player) Handle(events []starfall.Event) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	for _, e := range events {
		cue, ok := cueFor(e.Kind)
		if !ok {
			continue
		}
		s, err := p.tone(cue)
		if err != nil {
			if p.logger != nil {
				p.logger.Debug("cue skipped", "event", e.Kind, "err", err)
			}
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// tone renders a cue at the configured volume.
func (p *Player) tone(c Cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(p.rate, c.Freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(p.rate.N(c.Duration), sine),
		Base:     2,
		Volume:   p.cfg.Volume,
	}, nil
}

// Close stops all cues and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
