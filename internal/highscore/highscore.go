// Package highscore persists the all-time best score between runs.
// The value is a single non-negative integer stored as decimal text.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/config"
)

// AppName names the per-user data directory used by the app-data store.
const AppName = "starfall"

// DefaultFile is the fallback high-score file when no app-data directory exists.
const DefaultFile = "~/" + config.AppDir + "/highscore"

// Store reads and raises the persisted best score. Raise must be atomic with
// respect to other callers of the same store: it never lowers the best.
type Store interface {
	Load() (int, error)
	Raise(score int) (int, error)
}

// Parse decodes the stored decimal text. Surrounding whitespace is ignored.
func Parse(data []byte) (int, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, fmt.Errorf("highscore: empty value")
	}
	n, err := strconv.ParseUint(text, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("highscore: invalid value %q: %w", text, err)
	}
	return int(n), nil
}

// Format encodes a score as decimal text. Negative scores are stored as 0.
func Format(score int) []byte {
	if score < 0 {
		score = 0
	}
	return []byte(strconv.Itoa(score))
}

// Open picks a store: an explicit path means a plain file, otherwise the
// platform app-data directory, otherwise DefaultFile.
// The returned store logs failures to logger before returning them.
func Open(path string, logger *log.Logger) (Store, error) {
	if path != "" {
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return nil, fmt.Errorf("highscore: %w", err)
		}
		return Logged(NewFileStore(expanded), logger), nil
	}

	data, err := OpenDataStore(AppName)
	if err == nil {
		return Logged(data, logger), nil
	}
	if logger != nil {
		logger.Warn("app data unavailable, using file", "err", err)
	}

	fallback, err := config.ExpandHome(DefaultFile)
	if err != nil {
		return nil, fmt.Errorf("highscore: %w", err)
	}
	return Logged(NewFileStore(fallback), logger), nil
}

// loggedStore reports store failures at warn level.
type loggedStore struct {
	Store
	logger *log.Logger
}

// Logged wraps s so read and write failures are logged. A nil logger
// returns s unchanged.
func Logged(s Store, logger *log.Logger) Store {
	if logger == nil {
		return s
	}
	return &loggedStore{Store: s, logger: logger}
}

func (l *loggedStore) Load() (int, error) {
	score, err := l.Store.Load()
	if err != nil {
		l.logger.Warn("high score unreadable, starting from 0", "err", err)
	}
	return score, err
}

func (l *loggedStore) Raise(score int) (int, error) {
	best, err := l.Store.Raise(score)
	if err != nil {
		l.logger.Warn("high score not saved", "score", score, "err", err)
	} else {
		l.logger.Debug("high score settled", "score", score, "best", best)
	}
	return best, err
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}
	return nil
}
