package highscore

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

const (
	scoresObject = "scores"
	bestProperty = "best"
)

// DataStore keeps the best score in the platform app-data directory.
type DataStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// OpenDataStore opens the app-data directory for appName.
func OpenDataStore(appName string) (*DataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open app data: %w", err)
	}
	return NewDataStore(m), nil
}

// NewDataStore wraps an already opened manager.
func NewDataStore(m *gdata.Manager) *DataStore {
	return &DataStore{manager: m}
}

// Load reads the stored score; nothing stored yet is 0.
func (s *DataStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Raise stores score unless a higher one is stored, and returns the best
// after the call.
func (s *DataStore) Raise(score int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, err := s.load(); err == nil && stored > score {
		return stored, nil
	}
	if err := s.manager.SaveObjectProp(scoresObject, bestProperty, Format(score)); err != nil {
		return score, fmt.Errorf("highscore: cannot save app data: %w", err)
	}
	return score, nil
}

func (s *DataStore) load() (int, error) {
	if !s.manager.ObjectPropExists(scoresObject, bestProperty) {
		return 0, nil
	}
	data, err := s.manager.LoadObjectProp(scoresObject, bestProperty)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot load app data: %w", err)
	}
	return Parse(data)
}
