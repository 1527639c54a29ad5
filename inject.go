package bramble

// syntheticPointerEvent represents a single injected pointer event in
// viewport coordinates, matching what real hardware input would deliver.
type syntheticPointerEvent struct {
	x, y  float64
	click bool
}

// InjectMove queues a pointer move at the given viewport coordinates. The
// event is consumed on the next frame's Update, retuning the speed exactly
// like a real pointer move.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a pointer click at the given viewport coordinates,
// replanting the tree when consumed.
func (g *Game) InjectClick(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, click: true})
}

// InjectSweep queues a linear pointer sweep from (fromX, fromY) to
// (toX, toY), one move per frame over the given number of frames. Sweeps
// drive the speed through a whole range of values, crossing sign at the
// viewport center line. Minimum frames is 2 (the two endpoints).
func (g *Game) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one queued event per frame and feeds it through
// the same State methods hardware input uses. While events remain queued,
// pollInput yields the pointer to the queue.
func (g *Game) processInjectedInput() {
	if len(g.injectQueue) == 0 {
		return
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	if evt.click {
		g.replant()
		return
	}
	g.state.PointerMove(evt.x, evt.y)
}
