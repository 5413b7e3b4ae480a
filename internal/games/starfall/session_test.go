package starfall

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

const (
	testW = 800
	testH = 600
)

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startedSession returns a session already on the playing screen.
func startedSession(t *testing.T, rng Rand, store HighScoreStore) *Session {
	t.Helper()
	s := NewSession(config.DefaultShooterConfig(), rng, store)
	res := s.Step(pressed(core.ActionConfirm), 0, testW, testH)
	if res.Screen != ScreenPlaying {
		t.Fatalf("expected playing after confirm, got %v", res.Screen)
	}
	return s
}

func TestNewSessionStartsOnMenu(t *testing.T) {
	s := NewSession(config.DefaultShooterConfig(), neverSpawn(), &memStore{high: 77})
	snap := s.Snapshot()

	if snap.Screen != ScreenMainMenu {
		t.Errorf("expected main menu, got %v", snap.Screen)
	}
	if snap.HighScore != 77 {
		t.Errorf("expected stored best 77, got %d", snap.HighScore)
	}
	if snap.Player != nil {
		t.Error("no player should exist before the first start")
	}

	// Frames on the menu only advance the tick.
	for i := 0; i < 10; i++ {
		s.Step(core.NewInputFrame(), 1.0/60, testW, testH)
	}
	if s.Screen() != ScreenMainMenu {
		t.Error("menu should wait for confirm")
	}
}

func TestStartPlacesPlayer(t *testing.T) {
	s := NewSession(config.DefaultShooterConfig(), neverSpawn(), nil)
	res := s.Step(pressed(core.ActionConfirm), 0, testW, testH)

	if !res.Has(EventStarted) {
		t.Error("expected started event")
	}
	snap := s.Snapshot()
	if snap.Player == nil {
		t.Fatal("expected a player")
	}
	if snap.Player.X != testW/2 || snap.Player.Y != testH/2 {
		t.Errorf("player should start centered, got (%v, %v)", snap.Player.X, snap.Player.Y)
	}
	if snap.Player.Size != 32 || snap.Player.Speed != 200 {
		t.Errorf("unexpected player size/speed %v/%v", snap.Player.Size, snap.Player.Speed)
	}
	if len(snap.Projectiles) != 0 || len(snap.Enemies) != 0 || snap.Score != 0 {
		t.Error("a new session starts empty")
	}
}

func TestMenuQuit(t *testing.T) {
	s := NewSession(config.DefaultShooterConfig(), neverSpawn(), nil)
	if res := s.Step(pressed(core.ActionQuit), 0, testW, testH); !res.Quit {
		t.Error("quit on the menu should request exit")
	}

	// Quit means nothing while playing.
	s = startedSession(t, neverSpawn(), nil)
	if res := s.Step(pressed(core.ActionQuit), 0, testW, testH); res.Quit {
		t.Error("quit should be ignored while playing")
	}
}

func TestEnemyOnPlayerEndsSession(t *testing.T) {
	s := startedSession(t, neverSpawn(), nil)
	s.enemies = append(s.enemies, newEntity(s.player.X, s.player.Y, 20, 100))

	res := s.Step(core.NewInputFrame(), 0, testW, testH)

	if res.Screen != ScreenGameOver {
		t.Fatalf("expected game over, got %v", res.Screen)
	}
	if !res.Has(EventPlayerHit) {
		t.Error("expected player hit event")
	}
}

func TestProjectileDestroysEnemy(t *testing.T) {
	s := startedSession(t, neverSpawn(), nil)
	s.enemies = append(s.enemies, newEntity(100, 100, 30, 0))
	s.projectiles = append(s.projectiles, newEntity(100, 100, 6, 0))

	res := s.Step(core.NewInputFrame(), 0, testW, testH)

	snap := s.Snapshot()
	if snap.Score != 30 {
		t.Errorf("expected score 30, got %d", snap.Score)
	}
	if len(snap.Enemies) != 0 || len(snap.Projectiles) != 0 {
		t.Errorf("both sides should be removed, got %d enemies %d projectiles",
			len(snap.Enemies), len(snap.Projectiles))
	}
	if !res.Has(EventEnemyDestroyed) {
		t.Error("expected destroyed event")
	}
	if res.Events[0].Points != 30 {
		t.Errorf("event points = %d, want 30", res.Events[0].Points)
	}
	if snap.Screen != ScreenPlaying {
		t.Errorf("session should continue, got %v", snap.Screen)
	}
}

func TestFireSpawnsProjectileAtPlayer(t *testing.T) {
	s := startedSession(t, neverSpawn(), nil)

	res := s.Step(pressed(core.ActionFire), 0, testW, testH)
	if !res.Has(EventFired) {
		t.Error("expected fired event")
	}

	snap := s.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(snap.Projectiles))
	}
	shot := snap.Projectiles[0]
	if shot.X != snap.Player.X || shot.Y != snap.Player.Y {
		t.Errorf("projectile should start at the player, got (%v, %v)", shot.X, shot.Y)
	}
	if shot.Size != 6 || shot.Speed != 400 {
		t.Errorf("unexpected projectile size/speed %v/%v", shot.Size, shot.Speed)
	}

	// One projectile per press, not per held frame.
	held := core.NewInputFrame()
	held.Hold(core.ActionFire)
	s.Step(held, 0, testW, testH)
	if n := len(s.Snapshot().Projectiles); n != 1 {
		t.Errorf("holding fire should not shoot, got %d projectiles", n)
	}
}

func TestFireUsesPositionAfterMove(t *testing.T) {
	s := startedSession(t, neverSpawn(), nil)
	in := pressed(core.ActionFire)
	in.Hold(core.ActionRight)

	s.Step(in, 0.1, testW, testH)

	snap := s.Snapshot()
	if snap.Player.X != 420 {
		t.Fatalf("player x = %v, want 420", snap.Player.X)
	}
	// The shot spawns after the move and rises in the same frame.
	shot := snap.Projectiles[0]
	if shot.X != 420 || shot.Y != 300-400*0.1 {
		t.Errorf("projectile at (%v, %v), want (420, 260)", shot.X, shot.Y)
	}
}

func TestEnemyLeavesBottom(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Cleanup.EnemyExitBound = config.ExitBoundHeight
	s := NewSession(cfg, neverSpawn(), nil)
	s.Step(pressed(core.ActionConfirm), 0, testW, testH)

	// Far from the centered player.
	s.enemies = append(s.enemies, newEntity(50, -20, 20, 100))

	for i := 0; i < 60; i++ {
		s.Step(core.NewInputFrame(), 0.1, testW, testH)
	}
	if len(s.Snapshot().Enemies) != 1 {
		t.Fatal("enemy should still be on screen after 6s")
	}

	for i := 0; i < 10; i++ {
		s.Step(core.NewInputFrame(), 0.1, testW, testH)
	}
	snap := s.Snapshot()
	if len(snap.Enemies) != 0 {
		t.Errorf("enemy should be cleaned up, y = %v", snap.Enemies[0].Y)
	}
	if snap.Score != 0 {
		t.Errorf("leaving the screen scores nothing, got %d", snap.Score)
	}
}

func TestEnemyExitDefaultsToWidth(t *testing.T) {
	s := startedSession(t, neverSpawn(), nil)
	s.enemies = append(s.enemies, newEntity(50, 700, 20, 0))

	s.Step(core.NewInputFrame(), 0, testW, testH)
	if len(s.Snapshot().Enemies) != 1 {
		t.Error("with the width bound an enemy below the height stays until x extent")
	}

	s.enemies[0].Y = testW + 20
	s.Step(core.NewInputFrame(), 0, testW, testH)
	if len(s.Snapshot().Enemies) != 0 {
		t.Error("enemy past width plus size should be removed")
	}
}

func TestNewHighScoreOnEqualScore(t *testing.T) {
	store := &memStore{high: 40}
	s := startedSession(t, neverSpawn(), store)
	s.ledger.Add(40)
	s.enemies = append(s.enemies, newEntity(s.player.X, s.player.Y, 20, 0))

	res := s.Step(core.NewInputFrame(), 0, testW, testH)

	if res.Screen != ScreenGameOver {
		t.Fatalf("expected game over, got %v", res.Screen)
	}
	if !res.Has(EventNewHighScore) {
		t.Error("expected new high score event")
	}
	snap := s.Snapshot()
	if !snap.NewHighScore {
		t.Error("snapshot should flag the record")
	}
	if len(store.saves) != 1 || store.saves[0] != 40 {
		t.Errorf("expected a write of 40, got %v", store.saves)
	}
}

func TestNoHighScoreBelowBest(t *testing.T) {
	store := &memStore{high: 500}
	s := startedSession(t, neverSpawn(), store)
	s.ledger.Add(10)
	s.enemies = append(s.enemies, newEntity(s.player.X, s.player.Y, 20, 0))

	res := s.Step(core.NewInputFrame(), 0, testW, testH)
	if res.Has(EventNewHighScore) || s.Snapshot().NewHighScore {
		t.Error("score below the best is not a record")
	}
	if len(store.saves) != 0 {
		t.Errorf("no write expected, got %v", store.saves)
	}
}

func TestSharedStoreNeverLowersBest(t *testing.T) {
	store := &memStore{high: 10}
	first := startedSession(t, neverSpawn(), store)
	second := startedSession(t, neverSpawn(), store)

	first.ledger.Add(40)
	first.enemies = append(first.enemies, newEntity(first.player.X, first.player.Y, 20, 0))
	if res := first.Step(core.NewInputFrame(), 0, testW, testH); !res.Has(EventNewHighScore) {
		t.Fatal("first session should set a record")
	}

	second.ledger.Add(10)
	second.enemies = append(second.enemies, newEntity(second.player.X, second.player.Y, 20, 0))
	res := second.Step(core.NewInputFrame(), 0, testW, testH)

	if res.Screen != ScreenGameOver {
		t.Fatalf("expected game over, got %v", res.Screen)
	}
	if res.Has(EventNewHighScore) || second.Snapshot().NewHighScore {
		t.Error("a score below the stored best is not a record")
	}
	if store.high != 40 {
		t.Errorf("stored best = %d, want 40", store.high)
	}
	if got := second.Snapshot().HighScore; got != 40 {
		t.Errorf("game over screen shows best %d, want 40", got)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	s := startedSession(t, alwaysSpawn(), nil)
	s.enemies = append(s.enemies, newEntity(50, 50, 20, 100))
	s.projectiles = append(s.projectiles, newEntity(700, 500, 6, 400))
	s.ledger.Add(12)

	res := s.Step(pressed(core.ActionPause), 0.1, testW, testH)
	if res.Screen != ScreenPaused || !res.Has(EventPaused) {
		t.Fatalf("expected paused, got %v", res.Screen)
	}
	before := s.Snapshot()

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	in.Hold(core.ActionLeft)
	for i := 0; i < 50; i++ {
		s.Step(in, 0.1, testW, testH)
	}
	after := s.Snapshot()

	if !reflect.DeepEqual(before.Enemies, after.Enemies) {
		t.Error("enemies moved while paused")
	}
	if !reflect.DeepEqual(before.Projectiles, after.Projectiles) {
		t.Error("projectiles changed while paused")
	}
	if *before.Player != *after.Player {
		t.Error("player moved while paused")
	}
	if before.Score != after.Score || before.Elapsed != after.Elapsed {
		t.Error("score or clock changed while paused")
	}

	res = s.Step(pressed(core.ActionPause), 0, testW, testH)
	if res.Screen != ScreenPlaying || !res.Has(EventResumed) {
		t.Errorf("expected resume, got %v", res.Screen)
	}
}

func TestGameOverReturnsToMenu(t *testing.T) {
	s := startedSession(t, neverSpawn(), nil)
	s.enemies = append(s.enemies, newEntity(s.player.X, s.player.Y, 20, 0))
	s.Step(core.NewInputFrame(), 0, testW, testH)

	// Other inputs are ignored on the game over screen.
	for _, a := range []core.Action{core.ActionPause, core.ActionFire, core.ActionQuit} {
		if res := s.Step(pressed(a), 0, testW, testH); res.Screen != ScreenGameOver || res.Quit {
			t.Errorf("%v should be ignored on game over", a)
		}
	}

	res := s.Step(pressed(core.ActionConfirm), 0, testW, testH)
	if res.Screen != ScreenMainMenu {
		t.Fatalf("expected main menu, got %v", res.Screen)
	}
	if s.Snapshot().NewHighScore {
		t.Error("record flag should clear on the way back to the menu")
	}

	// A restart clears the field and the score.
	s.ledger.Add(5)
	s.Step(pressed(core.ActionConfirm), 0, testW, testH)
	snap := s.Snapshot()
	if snap.Score != 0 || len(snap.Enemies) != 0 {
		t.Error("restart should reset score and enemies")
	}
}

func TestSpawnDuringPlay(t *testing.T) {
	s := startedSession(t, alwaysSpawn(), nil)
	s.Step(core.NewInputFrame(), 0, testW, testH)

	snap := s.Snapshot()
	if len(snap.Enemies) != 1 {
		t.Fatalf("expected 1 enemy, got %d", len(snap.Enemies))
	}
	if snap.Enemies[0].Y != -snap.Enemies[0].Size {
		t.Errorf("enemy should appear above the top, y = %v", snap.Enemies[0].Y)
	}
}

func TestResizeKeepsPlayerInside(t *testing.T) {
	s := startedSession(t, neverSpawn(), nil)
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	s.Step(in, 10, testW, testH)

	s.Step(core.NewInputFrame(), 0.01, 200, 150)
	p := s.Snapshot().Player
	if p.X > 200-p.Size/2 || p.Y > 150-p.Size/2 {
		t.Errorf("player outside shrunk area at (%v, %v)", p.X, p.Y)
	}
}

func TestStepRejectsBadFrames(t *testing.T) {
	s := NewSession(config.DefaultShooterConfig(), neverSpawn(), nil)
	in := core.NewInputFrame()

	expectPanic(t, "negative dt", func() { s.Step(in, -0.1, testW, testH) })
	expectPanic(t, "zero width", func() { s.Step(in, 0.1, 0, testH) })
	expectPanic(t, "negative height", func() { s.Step(in, 0.1, testW, -1) })
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(config.DefaultShooterConfig(), rand.New(rand.NewSource(2024)), nil)
		s.Step(pressed(core.ActionConfirm), 0, testW, testH)

		in := core.NewInputFrame()
		for i := 0; i < 600; i++ {
			in.Clear()
			if i%7 == 0 {
				in.Set(core.ActionFire)
			}
			switch {
			case i%120 < 40:
				in.Hold(core.ActionLeft)
			case i%120 < 80:
				in.Hold(core.ActionRight)
			}
			s.Step(in, 1.0/60, testW, testH)
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Screen != snap2.Screen {
		t.Errorf("Screen mismatch: %v vs %v", snap1.Screen, snap2.Screen)
	}
	if !reflect.DeepEqual(snap1.Enemies, snap2.Enemies) {
		t.Error("Enemy mismatch between seeded runs")
	}
	if !reflect.DeepEqual(snap1.Projectiles, snap2.Projectiles) {
		t.Error("Projectile mismatch between seeded runs")
	}
}

func TestStepEventsOutliveNextStep(t *testing.T) {
	s := NewSession(config.DefaultShooterConfig(), neverSpawn(), nil)
	started := s.Step(pressed(core.ActionConfirm), 0, testW, testH)

	s.Step(pressed(core.ActionFire), 0, testW, testH)
	s.Step(pressed(core.ActionPause), 0, testW, testH)

	if len(started.Events) != 1 || started.Events[0].Kind != EventStarted {
		t.Errorf("earlier result was overwritten: %+v", started.Events)
	}
}
