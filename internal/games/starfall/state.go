package starfall

// Screen is the top-level mode that decides which logic runs each frame.
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenGameOver
)

// String returns the screen name used in logs and snapshots.
func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "main_menu"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventStarted        EventKind = iota // A new session began
	EventFired                           // A projectile was launched
	EventEnemyDestroyed                  // A projectile destroyed an enemy
	EventPlayerHit                       // An enemy reached the player, the session ended
	EventNewHighScore                    // The session ended on a record
	EventPaused
	EventResumed
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFired:
		return "fired"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventNewHighScore:
		return "new_high_score"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is reported by Step so audio and effects can react without reading
// simulation internals. Position and Points are set where they apply.
type Event struct {
	Kind   EventKind
	X, Y   float32
	Points int
}

// StepResult is returned by Session.Step after each frame.
type StepResult struct {
	Screen Screen
	Events []Event // Owned by the caller; later steps do not reuse it
	Quit   bool    // The player chose to exit from the main menu
}

// Has reports whether an event of the given kind happened this step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
