package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/recorder"
)

// Options configures a terminal game model.
type Options struct {
	Config   config.ShooterConfig
	Runtime  core.RuntimeConfig
	Store    starfall.HighScoreStore // nil keeps the best score in memory
	Recorder *recorder.Recorder      // nil disables sound and run history
	Logger   *log.Logger
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	session    *starfall.Session
	snap       starfall.Snapshot
	screen     *core.Screen
	layout     Layout
	holds      *core.HoldTracker
	inputFrame core.InputFrame
	keys       GameKeyMap
	help       help.Model
	recorder   *recorder.Recorder
	logger     *log.Logger
	runtime    core.RuntimeConfig
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a model on the main menu.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	session := starfall.NewSession(opts.Config, rand.New(rand.NewSource(rt.Seed)), opts.Store)
	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		session:    session,
		snap:       session.Snapshot(),
		screen:     core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-helpRows, 1)),
		layout:     NewLayout(opts.Config.Terminal),
		holds:      core.NewHoldTracker(time.Duration(opts.Config.Terminal.HoldWindowMS) * time.Millisecond),
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		runtime:    rt,
	}
	if m.logger != nil {
		m.logger.Debug("terminal game ready", "cols", rt.ScreenW, "rows", rt.ScreenH, "seed", rt.Seed)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records input for the next step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case action.IsDirection():
		now := time.Now()
		m.holds.Press(action, now)
		m.holds.Apply(&m.inputFrame, now)
	case action == core.ActionFire:
		// A held space bar auto-repeats; one hold fires once.
		if !m.holds.Repeat(action, time.Now()) {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize resizes the buffer. The session keeps running; the next step
// sees the new play area and clamps the ship into it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.runtime.TickRate)
	m.lastTick = now

	m.holds.Apply(&m.inputFrame, now)
	w, h := m.layout.World(m.screen.Width(), m.screen.Height())
	res := m.session.Step(m.inputFrame, dt, w, h)
	m.snap = m.session.Snapshot()
	m.recorder.Observe(res, m.snap)

	// Held keys do not carry over a pause or a finished run.
	if res.Screen != starfall.ScreenPlaying {
		m.holds.Release()
	}
	m.inputFrame.Clear()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.layout, m.snap)

	dir, err := config.ExpandHome(filepath.Join("~", config.AppDir, "screenshots"))
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("starfall_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		if m.logger != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return
	}
	if m.logger != nil {
		m.logger.Info("screenshot saved", "path", path)
	}
}

// Snapshot returns the state after the most recent step.
func (m Model) Snapshot() starfall.Snapshot {
	return m.snap
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.layout, m.snap)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
