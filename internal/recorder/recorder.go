// Package recorder connects a running session to its side effects:
// sound cues and run history. Every sink is optional and best-effort.
package recorder

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/storage"
)

// EventSink consumes the events of one step.
type EventSink interface {
	Handle(events []starfall.Event)
}

// RunSaver persists a finished run.
type RunSaver interface {
	SaveRun(run storage.Run) (int64, error)
}

// Recorder watches step results and reacts to session boundaries.
type Recorder struct {
	sink      EventSink
	runs      RunSaver
	logger    *log.Logger
	source    string
	startTick uint64
}

// New creates a recorder. Any argument may be nil.
func New(sink EventSink, runs RunSaver, logger *log.Logger, source string) *Recorder {
	return &Recorder{
		sink:   sink,
		runs:   runs,
		logger: logger,
		source: source,
	}
}

// Observe is called after every step with its result and the snapshot taken
// right after it.
func (r *Recorder) Observe(res starfall.StepResult, snap starfall.Snapshot) {
	if r == nil || len(res.Events) == 0 {
		return
	}
	if r.sink != nil {
		r.sink.Handle(res.Events)
	}

	for _, e := range res.Events {
		switch e.Kind {
		case starfall.EventStarted:
			r.startTick = snap.Tick
			r.debug("session started", "high", snap.HighScore)
		case starfall.EventPlayerHit:
			r.finish(snap)
		case starfall.EventPaused, starfall.EventResumed:
			r.debug(e.Kind.String(), "score", snap.Score)
		}
	}
}

// finish records the run that just ended.
func (r *Recorder) finish(snap starfall.Snapshot) {
	run := storage.Run{
		Score:     snap.Score,
		HighScore: snap.HighScore,
		NewRecord: snap.NewHighScore,
		Duration:  time.Duration(snap.Elapsed * float64(time.Second)),
		Frames:    snap.Tick - r.startTick,
		Source:    r.source,
	}
	if r.logger != nil {
		r.logger.Info("game over", "score", run.Score, "high", run.HighScore, "record", run.NewRecord, "duration", run.Duration.Round(time.Millisecond))
	}
	if r.runs == nil {
		return
	}
	if _, err := r.runs.SaveRun(run); err != nil && r.logger != nil {
		r.logger.Warn("run not recorded", "err", err)
	}
}

func (r *Recorder) debug(msg string, keyvals ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, keyvals...)
	}
}
