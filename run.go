package bramble

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width, Height is the window size in device-independent pixels.
	// Zero selects 1280x720.
	Width, Height int
	// Speed is the initial rotation speed. Zero selects DefaultSpeed.
	Speed float64
	// Tree controls how trees are grown.
	Tree Config
	// Style controls how trees are drawn.
	Style Style
	// GrowDuration is the replant fade-in length in seconds. Zero selects
	// the default; negative disables the fade entirely.
	GrowDuration float32
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame render stats to stderr. Toggle at runtime with D.
	Debug bool
	// ScreenshotDir receives captured PNGs. Empty selects "screenshots".
	ScreenshotDir string
}

const (
	defaultWindowWidth   = 1280
	defaultWindowHeight  = 720
	defaultGrowDuration  = 0.6
	defaultScreenshotDir = "screenshots"
)

// withDefaults returns the config with zero fields resolved to defaults.
func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "bramble"
	}
	if c.Width <= 0 {
		c.Width = defaultWindowWidth
	}
	if c.Height <= 0 {
		c.Height = defaultWindowHeight
	}
	if c.GrowDuration == 0 {
		c.GrowDuration = defaultGrowDuration
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	return c
}

// Game is the ebiten.Game that drives a clockwork tree: it polls pointer
// input, ticks the State once per frame, and draws through a Renderer.
// Create one with NewGame when embedding bramble in a larger game; plain
// toys can call Run instead.
type Game struct {
	state    *State
	renderer *Renderer

	fade         *gween.Tween
	fadeDone     bool
	growDuration float32

	injectQueue []syntheticPointerEvent
	script      *Script

	screenshotQueue []string
	screenshotDir   string

	overlay *fpsOverlay

	debug    bool
	paused   bool
	stopped  atomic.Bool
	replants int

	cursorX, cursorY int
	cursorPrimed     bool
	touchBuf         []ebiten.TouchID
}

// NewGame creates a Game from the config. Zero config fields resolve to
// defaults.
func NewGame(cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		state:         NewState(cfg.Tree, float64(cfg.Width), float64(cfg.Height)),
		renderer:      NewRenderer(cfg.Style),
		growDuration:  cfg.GrowDuration,
		screenshotDir: cfg.ScreenshotDir,
		debug:         cfg.Debug,
	}
	if cfg.Speed != 0 {
		g.state.SetSpeed(cfg.Speed)
		g.state.Replant()
	}
	if cfg.ShowFPS {
		g.overlay = newFPSOverlay()
	}
	if g.debug {
		debugCheckTreeSize(g.state.cfg)
	}
	g.startGrowFade()
	return g
}

// State returns the game's controller state.
func (g *Game) State() *State {
	return g.state
}

// Renderer returns the game's renderer for live style tuning.
func (g *Game) Renderer() *Renderer {
	return g.renderer
}

// SetDebug enables or disables per-frame render stats on stderr.
func (g *Game) SetDebug(enabled bool) {
	g.debug = enabled
}

// Stop requests a clean shutdown: the next Update returns
// ebiten.Termination. Safe to call from any goroutine.
func (g *Game) Stop() {
	g.stopped.Store(true)
}

// replant rebuilds the tree and restarts the grow-in fade.
func (g *Game) replant() {
	g.state.Replant()
	g.replants++
	g.startGrowFade()
}

// startGrowFade resets the renderer alpha and arms the fade tween.
func (g *Game) startGrowFade() {
	if g.growDuration <= 0 {
		g.renderer.Alpha = 1
		g.fade = nil
		g.fadeDone = true
		return
	}
	g.renderer.Alpha = 0
	g.fade = gween.New(0, 1, g.growDuration, ease.OutCubic)
	g.fadeDone = false
}

// Update runs one frame: input first, then one tree tick, then animations.
// Pointer events therefore always land between ticks, never inside one.
func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	dt := float32(1.0 / float64(ebiten.TPS()))

	g.pollInput()
	g.processInjectedInput()
	if g.script != nil {
		g.script.step(g)
	}

	if !g.paused {
		g.state.Tick()
	}

	if g.fade != nil && !g.fadeDone {
		v, done := g.fade.Update(dt)
		g.renderer.Alpha = float64(v)
		g.fadeDone = done
	}
	if g.overlay != nil {
		g.overlay.update(float64(dt))
	}
	return nil
}

// pollInput reads hardware input. Skipped entirely while synthetic events
// are queued, so scripts own the pointer.
func (g *Game) pollInput() {
	if len(g.injectQueue) > 0 {
		return
	}

	x, y := ebiten.CursorPosition()
	if !g.cursorPrimed {
		// First poll seeds the previous position without emitting a move,
		// so a cursor parked inside the window doesn't kick the speed.
		g.cursorPrimed = true
		g.cursorX, g.cursorY = x, y
	} else if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.state.PointerMove(float64(x), float64(y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.replant()
	}
	g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
	if len(g.touchBuf) > 0 {
		tx, ty := ebiten.TouchPosition(g.touchBuf[0])
		g.state.PointerMove(float64(tx), float64(ty))
		g.replant()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.SetDebug(!g.debug)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Screenshot("capture")
	}
}

// Draw renders the current tree, then the FPS overlay, then flushes any
// queued screenshots so captures include the full frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.debug {
		g.renderer.Draw(screen, g.state)
	} else {
		g.drawTimed(screen)
	}
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
	g.flushScreenshots(screen)
}

// drawTimed is Draw's stage-by-stage path with per-stage timing for debug
// stats.
func (g *Game) drawTimed(screen *ebiten.Image) {
	if bg := g.renderer.Style.Background; bg.A > 0 {
		screen.Fill(bg.toRGBA())
	}
	scale := float64(screen.Bounds().Dx()) / g.state.Width

	var stats debugStats
	t0 := time.Now()
	cmds := g.renderer.Compile(&g.state.Tree)
	stats.compileTime = time.Since(t0)

	t0 = time.Now()
	g.renderer.submit(screen, scale)
	stats.submitTime = time.Since(t0)

	stats.branchCount = g.state.Tree.Count()
	stats.commandCount = len(cmds)
	stats.levelCount = countLevels(cmds)
	stats.replantCount = g.replants
	g.debugLog(stats)
}

// Layout implements ebiten.Game. The logical size tracks the window so
// pointer coordinates arrive in viewport space.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and runs a clockwork tree until the window closes or
// Game.Stop is called.
func Run(cfg RunConfig) error {
	cfg = cfg.withDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(NewGame(cfg))
}
