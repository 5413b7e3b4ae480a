// Package tui runs the shooter in a terminal with Bubble Tea, locally or
// over SSH. The simulation works in world units; this package maps them to
// character cells and turns key events into held input.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps a single step after the program was suspended or the
// terminal stalled, so entities do not jump across the screen.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick, a clock
// going backwards and long stalls fall back to sane values.
func frameDelta(prev, now time.Time, tickRate int) float32 {
	nominal := time.Second / time.Duration(tickRate)
	if prev.IsZero() {
		return float32(nominal.Seconds())
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return float32(d.Seconds())
}
