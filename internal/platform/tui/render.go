package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Glyphs for world entities.
const (
	playerRune     = '█'
	enemyRune      = '▓'
	projectileRune = '│'
	starRune       = '·'
)

// helpRows is the height of the help bar below the screen buffer.
const helpRows = 1

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Layout maps terminal cells to world units.
type Layout struct {
	CellW, CellH float32
	HUDRows      int // Rows above the play area
}

// NewLayout builds a layout from the terminal section of the config.
func NewLayout(cfg config.TerminalConfig) Layout {
	return Layout{CellW: cfg.CellWidth, CellH: cfg.CellHeight, HUDRows: cfg.HUDRows}
}

// PlayRows is the number of screen rows given to the play area.
func (l Layout) PlayRows(screenH int) int {
	return core.Max(screenH-l.HUDRows, 1)
}

// World returns the play-area size in world units for a screen buffer.
func (l Layout) World(screenW, screenH int) (width, height float32) {
	return float32(core.Max(screenW, 1)) * l.CellW, float32(l.PlayRows(screenH)) * l.CellH
}

// project maps an entity to screen cells below the HUD.
func (l Layout) project(e starfall.Entity) core.Rect {
	r := e.Box().ToCells(l.CellW, l.CellH)
	r.Y += l.HUDRows
	return r
}

// DrawSnapshot renders the session state into the screen buffer.
func DrawSnapshot(s *core.Screen, l Layout, snap starfall.Snapshot) {
	s.Clear()

	drawStars(s, l, snap.Tick)
	drawHUD(s, snap)

	if snap.Screen != starfall.ScreenMainMenu {
		drawWorld(s, l, snap)
	}

	switch snap.Screen {
	case starfall.ScreenMainMenu:
		drawMenu(s, snap)
	case starfall.ScreenPaused:
		drawPaused(s)
	case starfall.ScreenGameOver:
		drawGameOver(s, snap)
	}
}

// drawStars scrolls a sparse background. Purely cosmetic.
func drawStars(s *core.Screen, l Layout, tick uint64) {
	rows := l.PlayRows(s.Height())
	shift := int(tick / 8)
	for y := 0; y < rows; y++ {
		for x := (y*7 + 3) % 23; x < s.Width(); x += 23 {
			row := (y + shift) % rows
			s.SetColored(x, row+l.HUDRows, starRune, core.ColorGray)
		}
	}
}

func drawHUD(s *core.Screen, snap starfall.Snapshot) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)
	s.DrawText(1, 0, fmt.Sprintf("SCORE %d", snap.Score), core.ColorWhite)

	high := fmt.Sprintf("HIGH %d", snap.HighScore)
	s.DrawText(s.Width()-len(high)-1, 0, high, core.ColorYellow)

	if snap.Screen == starfall.ScreenPlaying {
		s.DrawTextCentered(0, fmt.Sprintf("%.1fs", snap.Elapsed), core.ColorGray)
	}
}

func drawWorld(s *core.Screen, l Layout, snap starfall.Snapshot) {
	for _, e := range snap.Enemies {
		s.DrawRect(clipHUD(l.project(e), l), enemyRune, core.ColorRed)
	}
	for _, p := range snap.Projectiles {
		s.DrawRect(clipHUD(l.project(p), l), projectileRune, core.ColorYellow)
	}
	if snap.Player != nil {
		s.DrawRect(clipHUD(l.project(*snap.Player), l), playerRune, core.ColorCyan)
	}
}

// clipHUD trims the part of r that would overwrite the HUD rows.
func clipHUD(r core.Rect, l Layout) core.Rect {
	if r.Y < l.HUDRows {
		r.H -= l.HUDRows - r.Y
		r.Y = l.HUDRows
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// drawPanel draws a centered box with one line of text per row.
func drawPanel(s *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}
	w := width + 4
	h := len(lines) + 2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.DrawRect(core.NewRect(x, y, w, h), ' ', core.ColorDefault)
	s.DrawBox(core.NewRect(x, y, w, h), c)
	for i, line := range lines {
		s.DrawTextCentered(y+1+i, line, c)
	}
}

func drawMenu(s *core.Screen, snap starfall.Snapshot) {
	drawPanel(s, []string{
		"S T A R F A L L",
		"",
		fmt.Sprintf("High score: %d", snap.HighScore),
		"",
		"ENTER start   Q quit",
	}, core.ColorCyan)
}

func drawPaused(s *core.Screen) {
	drawPanel(s, []string{"PAUSED", "", "P resume"}, core.ColorYellow)
}

func drawGameOver(s *core.Screen, snap starfall.Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", snap.Score),
	}
	if snap.NewHighScore {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines, "", "ENTER menu")

	color := core.ColorRed
	if snap.NewHighScore {
		color = core.ColorGreen
	}
	drawPanel(s, lines, color)
}
