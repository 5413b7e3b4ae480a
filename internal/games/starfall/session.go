package starfall

import (
	"fmt"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// Session owns all mutable game state: the screen, the player, both entity
// collections and the ledger. It is driven by a single caller; Step is not
// safe for concurrent use.
type Session struct {
	cfg         config.ShooterConfig
	screen      Screen
	player      *Entity // nil until the first session starts
	projectiles []Entity
	enemies     []Entity
	spawner     *Spawner
	ledger      *Ledger
	newHigh     bool
	tick        uint64
	elapsed     float64 // Seconds spent in Playing this session
	events      []Event
}

// NewSession creates a session on the main menu. The high score is read from
// store once, here.
func NewSession(cfg config.ShooterConfig, rng Rand, store HighScoreStore) *Session {
	return &Session{
		cfg:         cfg,
		screen:      ScreenMainMenu,
		projectiles: make([]Entity, 0, 16),
		enemies:     make([]Entity, 0, 32),
		spawner:     NewSpawner(rng, cfg.Spawner),
		ledger:      NewLedger(store),
	}
}

// Screen returns the active screen.
func (s *Session) Screen() Screen {
	return s.screen
}

// Step advances the session by one frame of dt seconds inside a play area of
// width x height world units. The area is read fresh every frame.
func (s *Session) Step(in core.InputFrame, dt, width, height float32) StepResult {
	if !(dt >= 0) {
		panic(fmt.Sprintf("starfall: frame delta must be non-negative, got %v", dt))
	}
	if !(width > 0) || !(height > 0) {
		panic(fmt.Sprintf("starfall: play area must be positive, got %vx%v", width, height))
	}

	s.events = s.events[:0]
	s.tick++

	quit := false
	switch s.screen {
	case ScreenMainMenu:
		if in.Has(core.ActionConfirm) {
			s.start(width, height)
		} else if in.Has(core.ActionQuit) {
			quit = true
		}
	case ScreenPlaying:
		s.stepPlaying(in, dt, width, height)
	case ScreenPaused:
		if in.Has(core.ActionPause) {
			s.screen = ScreenPlaying
			s.emit(Event{Kind: EventResumed})
		}
	case ScreenGameOver:
		if in.Has(core.ActionConfirm) {
			s.screen = ScreenMainMenu
			s.newHigh = false
		}
	}

	return StepResult{
		Screen: s.screen,
		Events: append([]Event(nil), s.events...),
		Quit:   quit,
	}
}

// start clears the field and puts a fresh ship in the middle of the area.
func (s *Session) start(width, height float32) {
	s.projectiles = s.projectiles[:0]
	s.enemies = s.enemies[:0]
	player := newEntity(width/2, height/2, s.cfg.Player.Size, s.cfg.Player.Speed)
	s.player = &player
	s.ledger.ResetScore()
	s.newHigh = false
	s.elapsed = 0
	s.screen = ScreenPlaying
	s.emit(Event{Kind: EventStarted, X: player.X, Y: player.Y})
}

// stepPlaying runs one simulation frame. Pass order matters: cleanup must see
// this frame's hits, and the player check must only see survivors.
func (s *Session) stepPlaying(in core.InputFrame, dt, width, height float32) {
	if in.Has(core.ActionPause) {
		s.screen = ScreenPaused
		s.emit(Event{Kind: EventPaused})
		return
	}
	s.elapsed += float64(dt)

	movePlayer(s.player, in, dt, width, height)

	if in.Has(core.ActionFire) {
		s.fire()
	}

	if enemy, ok := s.spawner.Roll(width); ok {
		s.enemies = append(s.enemies, enemy)
	}

	rise(s.projectiles, dt)
	fall(s.enemies, dt)

	for _, h := range resolveHits(s.projectiles, s.enemies) {
		s.ledger.Add(h.points)
		s.emit(Event{Kind: EventEnemyDestroyed, X: h.enemy.X, Y: h.enemy.Y, Points: h.points})
	}

	s.projectiles, s.enemies = sweep(s.projectiles, s.enemies, s.enemyBound(width, height))

	if playerHit(*s.player, s.enemies) {
		s.gameOver()
	}
}

// fire launches one projectile from the ship's nose.
func (s *Session) fire() {
	p := s.player
	shot := newEntity(p.X, p.Y-s.cfg.Projectile.Offset, s.cfg.Projectile.Size, p.Speed*s.cfg.Projectile.SpeedFactor)
	s.projectiles = append(s.projectiles, shot)
	s.emit(Event{Kind: EventFired, X: shot.X, Y: shot.Y})
}

// gameOver ends the session; a score equal to the best is persisted.
func (s *Session) gameOver() {
	s.screen = ScreenGameOver
	s.emit(Event{Kind: EventPlayerHit, X: s.player.X, Y: s.player.Y, Points: s.ledger.Score()})
	if s.ledger.Settle() {
		s.newHigh = true
		s.emit(Event{Kind: EventNewHighScore, Points: s.ledger.HighScore()})
	}
}

// enemyBound is the coordinate enemies must pass, plus their size, to leave.
func (s *Session) enemyBound(width, height float32) float32 {
	if s.cfg.Cleanup.EnemyExitBound == config.ExitBoundHeight {
		return height
	}
	return width
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
