package starfall

import (
	"errors"
	"testing"
)

// memStore is an in-memory HighScoreStore that records writes.
type memStore struct {
	high    int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.high, nil
}

func (m *memStore) Raise(score int) (int, error) {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	if score > m.high {
		m.high = score
	}
	return m.high, nil
}

func TestLedgerLoad(t *testing.T) {
	tests := []struct {
		name  string
		store HighScoreStore
		want  int
	}{
		{"nil store", nil, 0},
		{"stored value", &memStore{high: 120}, 120},
		{"load error", &memStore{high: 120, loadErr: errors.New("corrupt")}, 0},
		{"negative value", &memStore{high: -5}, 0},
	}

	for _, tt := range tests {
		l := NewLedger(tt.store)
		if l.HighScore() != tt.want {
			t.Errorf("%s: HighScore = %d, want %d", tt.name, l.HighScore(), tt.want)
		}
		if l.Score() != 0 {
			t.Errorf("%s: Score = %d, want 0", tt.name, l.Score())
		}
	}
}

func TestLedgerAdd(t *testing.T) {
	l := NewLedger(&memStore{high: 50})

	l.Add(30)
	if l.Score() != 30 || l.HighScore() != 50 {
		t.Errorf("expected 30/50, got %d/%d", l.Score(), l.HighScore())
	}

	l.Add(30)
	if l.Score() != 60 || l.HighScore() != 60 {
		t.Errorf("expected 60/60, got %d/%d", l.Score(), l.HighScore())
	}

	l.Add(0)
	if l.Score() != 60 {
		t.Errorf("zero delta changed score to %d", l.Score())
	}

	l.ResetScore()
	if l.Score() != 0 || l.HighScore() != 60 {
		t.Errorf("reset should keep the best, got %d/%d", l.Score(), l.HighScore())
	}

	expectPanic(t, "negative delta", func() { l.Add(-1) })
}

func TestLedgerSettle(t *testing.T) {
	store := &memStore{high: 100}
	l := NewLedger(store)

	l.Add(40)
	if l.Settle() {
		t.Error("score below best should not be a record")
	}
	if len(store.saves) != 0 {
		t.Errorf("no write expected, got %v", store.saves)
	}

	l.Add(70)
	if !l.Settle() {
		t.Error("score above the old best should be a record")
	}
	if len(store.saves) != 1 || store.saves[0] != 110 {
		t.Errorf("expected one write of 110, got %v", store.saves)
	}
}

func TestLedgerSettleEqualScore(t *testing.T) {
	store := &memStore{high: 40}
	l := NewLedger(store)
	l.Add(40)

	if !l.Settle() {
		t.Error("score equal to the best counts as a record")
	}
	if len(store.saves) != 1 || store.saves[0] != 40 {
		t.Errorf("expected a write of 40, got %v", store.saves)
	}
}

func TestLedgerSettleIgnoresWriteFailure(t *testing.T) {
	store := &memStore{saveErr: errors.New("read-only")}
	l := NewLedger(store)
	l.Add(25)

	if !l.Settle() {
		t.Error("write failure must not hide the record")
	}
	if l.HighScore() != 25 {
		t.Errorf("in-memory best should survive a failed write, got %d", l.HighScore())
	}
}

func TestLedgerSettleDefersToStoredBest(t *testing.T) {
	store := &memStore{high: 10}
	first := NewLedger(store)
	second := NewLedger(store)

	first.Add(40)
	if !first.Settle() {
		t.Fatal("40 over a stored 10 should be a record")
	}

	// second still caches 10 from when it loaded.
	second.Add(10)
	if second.Settle() {
		t.Error("10 is not a record once 40 is stored")
	}
	if store.high != 40 {
		t.Errorf("stored best regressed to %d, want 40", store.high)
	}
	if second.HighScore() != 40 {
		t.Errorf("HighScore = %d, want the stored 40", second.HighScore())
	}
}
