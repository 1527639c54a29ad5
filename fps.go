package bramble

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the top-left corner.
// The text is re-rendered every ~0.5 seconds via ebitenutil.DebugPrint.
type fpsOverlay struct {
	img         *ebiten.Image
	sinceRedraw float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{
		img:         ebiten.NewImage(100, 32),
		sinceRedraw: 0.5, // force a redraw on the first frame
	}
}

// update re-renders the overlay text when the refresh interval has elapsed.
func (o *fpsOverlay) update(dt float64) {
	o.sinceRedraw += dt
	if o.sinceRedraw < 0.5 {
		return
	}
	o.sinceRedraw = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// draw blits the overlay onto the screen.
func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
