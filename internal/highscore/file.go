package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// FileStore keeps the best score in a plain text file.
// It is safe for concurrent use; SSH sessions share one store.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path. The file is not touched until
// the first Load or Raise.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored score. A missing file is 0 with no error; unreadable
// or corrupt content is 0 with an error.
func (s *FileStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Raise writes score unless the file already holds a higher one, and returns
// the best after the call. Unreadable or corrupt content is replaced.
func (s *FileStore) Raise(score int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, err := s.load(); err == nil && stored > score {
		return stored, nil
	}
	return score, s.write(score)
}

func (s *FileStore) load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	return Parse(data)
}

func (s *FileStore) write(score int) error {
	if err := ensureDir(s.path); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, Format(score), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}
