package bramble

import (
	"math"
	"testing"
)

func newTestState(seed uint64) *State {
	return NewState(Config{Source: NewSource(seed)}, 800, 600)
}

// --- NewState / Replant ---

func TestNewStateCanvas(t *testing.T) {
	s := newTestState(1)
	assertNear(t, "width", s.Width, 2000)
	assertNear(t, "height", s.Height, 1500) // 2000 * 600/800
	assertNear(t, "speed", s.Speed, DefaultSpeed)
	assertNear(t, "root.X", s.Tree.X, 1000)
	assertNear(t, "root.Y", s.Tree.Y, 750)
	if s.Tree.Depth() != DefaultMaxDepth {
		t.Errorf("depth = %d, want %d", s.Tree.Depth(), DefaultMaxDepth)
	}
}

func TestNewStateWideViewport(t *testing.T) {
	s := NewState(Config{Source: NewSource(2)}, 1600, 400)
	assertNear(t, "width", s.Width, 2000)
	assertNear(t, "height", s.Height, 500)
	assertNear(t, "root.Y", s.Tree.Y, 250)
}

func TestNewStateBadViewportPanics(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"negative width", -800, 600},
		{"nan height", 800, math.NaN()},
		{"inf width", math.Inf(1), 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewState should panic")
				}
			}()
			NewState(Config{}, tt.w, tt.h)
		})
	}
}

func TestReplantGrowsFreshTree(t *testing.T) {
	s := newTestState(3)
	var before []float64
	forEach(&s.Tree, func(b *Branch) { before = append(before, b.Rotation, b.RotationChange) })

	s.Speed = -2.5
	s.Replant()

	assertNear(t, "speed survives replant", s.Speed, -2.5)
	assertNear(t, "root.X", s.Tree.X, 1000)
	if s.Tree.Count() != 255 {
		t.Fatalf("count = %d, want 255", s.Tree.Count())
	}

	var after []float64
	forEach(&s.Tree, func(b *Branch) { after = append(after, b.Rotation, b.RotationChange) })
	same := true
	for i := range before {
		if before[i] != after[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("replant produced a byte-identical tree")
	}
}

// --- Tick ---

func TestTickAdvancesRotations(t *testing.T) {
	s := newTestState(4)
	want := wrapRotation(s.Tree.Rotation + s.Tree.RotationChange*s.Speed)
	s.Tick()
	assertNear(t, "root rotation", s.Tree.Rotation, want)
}

func TestTickKeepsRootPinned(t *testing.T) {
	s := newTestState(5)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	assertNear(t, "root.X", s.Tree.X, s.Width/2)
	assertNear(t, "root.Y", s.Tree.Y, s.Height/2)
}

func TestTickPreservesTopology(t *testing.T) {
	s := newTestState(6)
	original := s.Tree
	for i := 0; i < 60; i++ {
		s.Tick()
	}
	assertSameTopology(t, &original, &s.Tree)
}

// --- PointerMove ---

func TestPointerMoveSpeedSign(t *testing.T) {
	// Viewport 800 wide: ten pixels left of center must spin backward, ten
	// pixels right forward, with equal magnitude.
	s := newTestState(7)

	s.PointerMove(390, 300)
	left := s.Speed
	if left >= 0 {
		t.Errorf("speed left of center = %v, want negative", left)
	}
	assertNear(t, "left magnitude", left, -10/(800.0/3))

	s.PointerMove(410, 300)
	right := s.Speed
	if right <= 0 {
		t.Errorf("speed right of center = %v, want positive", right)
	}
	assertNear(t, "right magnitude", right, 10/(800.0/3))
}

func TestPointerMoveDistanceScalesSpeed(t *testing.T) {
	s := newTestState(8)

	s.PointerMove(500, 300)
	near := s.Speed
	s.PointerMove(790, 300)
	far := s.Speed

	if math.Abs(far) <= math.Abs(near) {
		t.Errorf("far speed %v not larger than near speed %v", far, near)
	}
	assertNear(t, "near", near, 100/(800.0/3))
	assertNear(t, "far", far, 390/(800.0/3))
}

func TestPointerMoveUsesFullDistance(t *testing.T) {
	// Vertical offset counts toward the magnitude even at the center line.
	s := newTestState(9)
	s.PointerMove(400, 0)
	assertNear(t, "speed", s.Speed, 300/(800.0/3))
}

func TestPointerMoveAtCenterStops(t *testing.T) {
	s := newTestState(10)
	s.PointerMove(400, 300)
	assertNear(t, "speed", s.Speed, 0)
}

func TestPointerMoveIgnoresNonFinite(t *testing.T) {
	s := newTestState(11)
	s.PointerMove(500, 300)
	want := s.Speed

	s.PointerMove(math.NaN(), 300)
	s.PointerMove(500, math.NaN())
	s.PointerMove(math.Inf(1), 300)
	s.PointerMove(500, math.Inf(-1))

	assertNear(t, "speed after bad events", s.Speed, want)
}

// --- SetSpeed ---

func TestSetSpeed(t *testing.T) {
	s := newTestState(12)
	s.SetSpeed(-3)
	assertNear(t, "speed", s.Speed, -3)

	s.SetSpeed(math.NaN())
	assertNear(t, "speed after NaN", s.Speed, -3)
	s.SetSpeed(math.Inf(1))
	assertNear(t, "speed after Inf", s.Speed, -3)
}

// --- Benchmarks ---

func BenchmarkTick(b *testing.B) {
	s := newTestState(1)
	b.ReportAllocs()
	for b.Loop() {
		s.Tick()
	}
}
