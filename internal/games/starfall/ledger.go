package starfall

import "fmt"

// HighScoreStore persists the best score between runs.
// Implementations report failures; the ledger absorbs them.
type HighScoreStore interface {
	Load() (int, error)
	// Raise stores score unless the stored best is higher, and returns the
	// best after the call. Sessions sharing a store rely on it being atomic.
	Raise(score int) (int, error)
}

// Ledger tracks the session score and the running best.
// The score never decreases within a session and the best is never below it.
type Ledger struct {
	score int
	high  int
	store HighScoreStore
}

// NewLedger loads the stored best. A nil store keeps scores in memory only;
// a failed or negative load counts as zero.
func NewLedger(store HighScoreStore) *Ledger {
	l := &Ledger{store: store}
	if store != nil {
		if high, err := store.Load(); err == nil && high > 0 {
			l.high = high
		}
	}
	return l
}

// Score returns the current session score.
func (l *Ledger) Score() int {
	return l.score
}

// HighScore returns the best score seen so far.
func (l *Ledger) HighScore() int {
	return l.high
}

// Add credits points and raises the best when the score passes it.
func (l *Ledger) Add(points int) {
	if points < 0 {
		panic(fmt.Sprintf("starfall: negative score delta %d", points))
	}
	l.score += points
	if l.score > l.high {
		l.high = l.score
	}
}

// ResetScore starts a new session at zero. The best is kept.
func (l *Ledger) ResetScore() {
	l.score = 0
}

// Settle is called when a session ends. A score at or above the best is
// raised in the store; the store's answer decides the record, since another
// session may have stored a higher one meanwhile. Write errors are dropped
// and the in-memory best stands.
func (l *Ledger) Settle() bool {
	if l.score < l.high {
		return false
	}
	if l.store == nil {
		return true
	}
	best, err := l.store.Raise(l.score)
	if err != nil {
		return true
	}
	if best > l.high {
		l.high = best
	}
	return l.score >= best
}
