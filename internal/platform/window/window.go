// Package window runs the shooter in a desktop window with Ebitengine.
// One world unit is one logical pixel, and the play area follows the window
// size.
package window

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/recorder"
)

var (
	backgroundColor = color.RGBA{R: 10, G: 12, B: 28, A: 255}
	playerColor     = color.RGBA{R: 80, G: 220, B: 255, A: 255}
	enemyColor      = color.RGBA{R: 235, G: 70, B: 70, A: 255}
	projectileColor = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	panelColor      = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	textColor       = color.White
	recordColor     = color.RGBA{R: 120, G: 255, B: 120, A: 255}
)

// lineHeight is the text advance for the HUD font.
const lineHeight = 16

// Options configures the window frontend.
type Options struct {
	Config   config.ShooterConfig
	Seed     int64                   // 0 derives one from the clock
	Store    starfall.HighScoreStore // nil keeps the best score in memory
	Recorder *recorder.Recorder
	Logger   *log.Logger
}

// keyBinding maps one action to its keys.
type keyBinding struct {
	action core.Action
	keys   []ebiten.Key
}

var (
	heldBindings = []keyBinding{
		{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
		{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
		{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	}
	pressBindings = []keyBinding{
		{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
		{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
		{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}},
		{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
	}
)

// readInput builds a frame from key state. held reports keys that are down,
// pressed reports keys that went down this tick.
func readInput(frame *core.InputFrame, held, pressed func(ebiten.Key) bool) {
	for _, b := range heldBindings {
		for _, k := range b.keys {
			if held(k) {
				frame.Hold(b.action)
				break
			}
		}
	}
	for _, b := range pressBindings {
		for _, k := range b.keys {
			if pressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
}

// Game implements ebiten.Game around one session.
type Game struct {
	session  *starfall.Session
	snap     starfall.Snapshot
	input    core.InputFrame
	recorder *recorder.Recorder
	logger   *log.Logger
	face     *text.GoXFace
	dt       float32
	width    int
	height   int
}

// NewGame creates a game on the main menu.
func NewGame(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := starfall.NewSession(opts.Config, rand.New(rand.NewSource(seed)), opts.Store)

	tps := opts.Config.Window.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	return &Game{
		session:  session,
		snap:     session.Snapshot(),
		input:    core.NewInputFrame(),
		recorder: opts.Recorder,
		logger:   opts.Logger,
		face:     text.NewGoXFace(basicfont.Face7x13),
		dt:       1 / float32(tps),
		width:    opts.Config.Window.Width,
		height:   opts.Config.Window.Height,
	}
}

// Update runs one simulation step at the fixed tick rate.
func (g *Game) Update() error {
	g.input.Clear()
	readInput(&g.input, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)

	res := g.session.Step(g.input, g.dt, float32(g.width), float32(g.height))
	g.snap = g.session.Snapshot()
	g.recorder.Observe(res, g.snap)

	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.snap
	if snap.Screen != starfall.ScreenMainMenu {
		for _, e := range snap.Enemies {
			drawEntity(screen, e, enemyColor)
		}
		for _, p := range snap.Projectiles {
			drawEntity(screen, p, projectileColor)
		}
		if snap.Player != nil {
			drawEntity(screen, *snap.Player, playerColor)
		}
	}

	g.drawText(screen, fmt.Sprintf("SCORE %d", snap.Score), 8, 8, textColor)
	high := fmt.Sprintf("HIGH %d", snap.HighScore)
	g.drawText(screen, high, float64(g.width-8-7*len(high)), 8, textColor)

	if lines := panelLines(snap); len(lines) > 0 {
		g.drawPanel(screen, lines, snap.NewHighScore)
	}
}

// Layout makes the logical screen match the window, so resizing the window
// resizes the play area.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = core.Max(outsideWidth, 1)
	g.height = core.Max(outsideHeight, 1)
	return g.width, g.height
}

func drawEntity(dst *ebiten.Image, e starfall.Entity, clr color.Color) {
	b := e.Box()
	vector.DrawFilledRect(dst, b.MinX, b.MinY, b.Width(), b.Height(), clr, false)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}

// drawPanel draws centered lines on a translucent backdrop.
func (g *Game) drawPanel(dst *ebiten.Image, lines []string, record bool) {
	widest := 0
	for _, l := range lines {
		widest = core.Max(widest, len(l))
	}
	w := float32(widest*7 + 32)
	h := float32(len(lines)*lineHeight + 24)
	x := (float32(g.width) - w) / 2
	y := (float32(g.height) - h) / 2
	vector.DrawFilledRect(dst, x, y, w, h, panelColor, false)

	for i, l := range lines {
		var clr color.Color = textColor
		if record && l == newRecordLine {
			clr = recordColor
		}
		tx := float64(g.width)/2 - float64(len(l)*7)/2
		g.drawText(dst, l, tx, float64(y)+12+float64(i*lineHeight), clr)
	}
}

const newRecordLine = "NEW HIGH SCORE!"

// panelLines returns the overlay text for the current screen, if any.
func panelLines(snap starfall.Snapshot) []string {
	switch snap.Screen {
	case starfall.ScreenMainMenu:
		return []string{"S T A R F A L L", "", fmt.Sprintf("High score: %d", snap.HighScore), "", "ENTER start   Q quit"}
	case starfall.ScreenPaused:
		return []string{"PAUSED", "", "P resume"}
	case starfall.ScreenGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score)}
		if snap.NewHighScore {
			lines = append(lines, newRecordLine)
		}
		return append(lines, "", "ENTER menu")
	default:
		return nil
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	w := opts.Config.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if w.TPS > 0 {
		ebiten.SetTPS(w.TPS)
	}

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
