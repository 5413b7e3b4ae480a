package starfall

// Snapshot captures everything a renderer or audio layer needs after a step.
// Entity slices are copies; holding a snapshot never aliases session state.
type Snapshot struct {
	Tick         uint64
	Screen       Screen
	Score        int
	HighScore    int
	NewHighScore bool
	Elapsed      float64 // Seconds played in the current session
	Player       *Entity // nil before the first session starts
	Projectiles  []Entity
	Enemies      []Entity
}

// Snapshot returns the current state for drawing and determinism checks.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         s.tick,
		Screen:       s.screen,
		Score:        s.ledger.Score(),
		HighScore:    s.ledger.HighScore(),
		NewHighScore: s.newHigh,
		Elapsed:      s.elapsed,
		Projectiles:  append([]Entity(nil), s.projectiles...),
		Enemies:      append([]Entity(nil), s.enemies...),
	}
	if s.player != nil {
		p := *s.player
		snap.Player = &p
	}
	return snap
}
