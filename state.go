package bramble

import "math"

// State owns a tree and the handful of values the game loop steers it with:
// the global rotation speed, the logical canvas size, and the viewport size
// used for pointer math. All event methods are synchronous and total;
// malformed events are dropped and the prior state retained.
type State struct {
	// Tree is the current clockwork tree. Replaced wholesale by Tick and
	// Replant; never mutated in place.
	Tree Branch
	// Speed is the signed global rotation speed. Negative values spin every
	// branch against its natural direction.
	Speed float64
	// Width, Height is the logical canvas the tree lives on. Width is fixed
	// at 2000; Height follows the viewport aspect ratio.
	Width, Height float64
	// ViewportWidth, ViewportHeight is the window size pointer coordinates
	// arrive in.
	ViewportWidth, ViewportHeight float64

	cfg Config
}

// NewState creates a State for the given viewport, grows the first tree at
// the canvas center, and starts at DefaultSpeed. The viewport dimensions
// must be positive and finite.
func NewState(cfg Config, viewportWidth, viewportHeight float64) *State {
	if !isFinite(viewportWidth) || !isFinite(viewportHeight) ||
		viewportWidth <= 0 || viewportHeight <= 0 {
		panic("bramble: NewState viewport dimensions must be positive")
	}
	s := &State{
		Speed:          DefaultSpeed,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		cfg:            cfg.withDefaults(),
	}
	s.Replant()
	return s
}

// Replant discards the tree and grows a fresh one at the canvas center,
// keeping the current speed. The canvas is re-derived from the viewport
// aspect ratio. Wired to pointer clicks by the game loop.
func (s *State) Replant() {
	s.Width = canvasWidth
	s.Height = canvasWidth * s.ViewportHeight / s.ViewportWidth
	s.Tree = Build(s.cfg, 1, s.Width/2, s.Height/2, s.Speed)
}

// Tick advances the tree by one rotation step at the current speed. The root
// stays pinned to the canvas center.
func (s *State) Tick() {
	s.Tree = Update(s.Tree, s.Width/2, s.Height/2, s.Speed)
}

// PointerMove retunes the speed from a pointer position in viewport
// coordinates. The magnitude is the pointer's distance from the viewport
// center divided by a third of the viewport width; the sign follows the
// pointer's side of center, negative on the left. Non-finite coordinates are
// ignored.
func (s *State) PointerMove(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	dx := x - s.ViewportWidth/2
	dy := y - s.ViewportHeight/2
	dist := math.Hypot(dx, dy)
	factor := s.ViewportWidth / 3
	if dx < 0 {
		factor = -factor
	}
	s.Speed = dist / factor
}

// SetSpeed overrides the rotation speed directly. Non-finite values are
// ignored.
func (s *State) SetSpeed(speed float64) {
	if !isFinite(speed) {
		return
	}
	s.Speed = speed
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
