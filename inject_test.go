package bramble

import (
	"math"
	"testing"
)

// newTestGame builds a Game for direct stepping, without a window. Tests
// drive processInjectedInput and the state by hand instead of Update, which
// would poll real hardware.
func newTestGame(seed uint64) *Game {
	return NewGame(RunConfig{
		Width:  800,
		Height: 600,
		Tree:   Config{Source: NewSource(seed)},
	})
}

func TestInjectMoveRetunesSpeed(t *testing.T) {
	g := newTestGame(1)

	g.InjectMove(410, 300)
	if len(g.injectQueue) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(g.injectQueue))
	}
	g.processInjectedInput()

	assertNear(t, "speed", g.state.Speed, 10/(800.0/3))
	if len(g.injectQueue) != 0 {
		t.Errorf("queue not drained: %d left", len(g.injectQueue))
	}
}

func TestInjectClickReplants(t *testing.T) {
	g := newTestGame(2)
	if g.replants != 0 {
		t.Fatalf("fresh game replants = %d, want 0", g.replants)
	}

	g.InjectClick(50, 50)
	g.processInjectedInput()

	if g.replants != 1 {
		t.Errorf("replants = %d, want 1", g.replants)
	}
	// A replant restarts the grow-in fade from invisible.
	assertNear(t, "renderer alpha", g.renderer.Alpha, 0)
}

func TestInjectConsumesOneEventPerFrame(t *testing.T) {
	g := newTestGame(3)
	g.InjectMove(100, 100)
	g.InjectMove(200, 200)
	g.InjectClick(300, 300)

	for want := 2; want >= 0; want-- {
		g.processInjectedInput()
		if len(g.injectQueue) != want {
			t.Fatalf("queue length = %d, want %d", len(g.injectQueue), want)
		}
	}
	// Draining an empty queue is a no-op.
	g.processInjectedInput()
	if g.replants != 1 {
		t.Errorf("replants = %d, want 1", g.replants)
	}
}

func TestInjectSweep(t *testing.T) {
	g := newTestGame(4)
	g.InjectSweep(100, 300, 700, 300, 5)

	if len(g.injectQueue) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(g.injectQueue))
	}
	first, last := g.injectQueue[0], g.injectQueue[4]
	assertNear(t, "first.x", first.x, 100)
	assertNear(t, "last.x", last.x, 700)
	assertNear(t, "mid.x", g.injectQueue[2].x, 400)
}

func TestInjectSweepMinimumFrames(t *testing.T) {
	g := newTestGame(5)
	g.InjectSweep(0, 0, 100, 100, 0)
	if len(g.injectQueue) != 2 {
		t.Errorf("expected 2 queued events, got %d", len(g.injectQueue))
	}
}

func TestInjectSweepCrossesSign(t *testing.T) {
	g := newTestGame(6)
	g.InjectSweep(100, 300, 700, 300, 7)

	var speeds []float64
	for len(g.injectQueue) > 0 {
		g.processInjectedInput()
		speeds = append(speeds, g.state.Speed)
	}
	if speeds[0] >= 0 {
		t.Errorf("sweep start speed = %v, want negative", speeds[0])
	}
	if speeds[len(speeds)-1] <= 0 {
		t.Errorf("sweep end speed = %v, want positive", speeds[len(speeds)-1])
	}
	if math.Abs(speeds[0]) != math.Abs(speeds[len(speeds)-1]) {
		t.Errorf("sweep endpoints not symmetric: %v vs %v", speeds[0], speeds[len(speeds)-1])
	}
}
