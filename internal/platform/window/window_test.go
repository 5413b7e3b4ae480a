package window

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestReadInput(t *testing.T) {
	frame := core.NewInputFrame()
	readInput(&frame, keySet(ebiten.KeyA, ebiten.KeyArrowUp, ebiten.KeySpace), keySet(ebiten.KeySpace, ebiten.KeyEscape))

	if !frame.IsHeld(core.ActionLeft) || !frame.IsHeld(core.ActionUp) {
		t.Error("held directions missing")
	}
	if frame.IsHeld(core.ActionRight) || frame.IsHeld(core.ActionDown) {
		t.Error("unexpected held directions")
	}
	if !frame.Has(core.ActionFire) || !frame.Has(core.ActionPause) {
		t.Error("pressed actions missing")
	}
	if frame.Has(core.ActionConfirm) || frame.Has(core.ActionQuit) {
		t.Error("unexpected pressed actions")
	}
	// Holding space does not fire by itself.
	frame.Clear()
	readInput(&frame, keySet(ebiten.KeySpace), keySet())
	if frame.Has(core.ActionFire) {
		t.Error("held fire key should not fire")
	}
}

func TestPanelLines(t *testing.T) {
	if lines := panelLines(starfall.Snapshot{Screen: starfall.ScreenPlaying}); lines != nil {
		t.Errorf("no panel while playing, got %v", lines)
	}

	menu := strings.Join(panelLines(starfall.Snapshot{Screen: starfall.ScreenMainMenu, HighScore: 12}), "\n")
	if !strings.Contains(menu, "High score: 12") {
		t.Errorf("menu = %q", menu)
	}

	over := panelLines(starfall.Snapshot{Screen: starfall.ScreenGameOver, Score: 7, NewHighScore: true})
	found := false
	for _, l := range over {
		if l == newRecordLine {
			found = true
		}
	}
	if !found {
		t.Errorf("game over should announce the record, got %v", over)
	}
}
