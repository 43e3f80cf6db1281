package worldview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws FPS, TPS and the visible entity counts in the top-left
// corner. The text is redrawn about every half second.
type fpsOverlay struct {
	img        *ebiten.Image
	sinceDraw  float64
	op         ebiten.DrawImageOptions
	ground     int
	standing   int
	hasContent bool
}

func newFPSOverlay() *fpsOverlay {
	// 140x48 fits three lines of debug font.
	return &fpsOverlay{img: ebiten.NewImage(140, 48)}
}

// record stores the latest frame's counts for the next redraw.
func (o *fpsOverlay) record(res *FrameResult) {
	o.ground = len(res.Ground)
	o.standing = len(res.Standing)
}

func (o *fpsOverlay) update(dt float64) {
	o.sinceDraw += dt
	if o.hasContent && o.sinceDraw < 0.5 {
		return
	}
	o.sinceDraw = 0
	o.hasContent = true

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nDrawn: %d+%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), o.ground, o.standing))
}

func (o *fpsOverlay) draw(target *ebiten.Image) {
	if !o.hasContent {
		return
	}
	o.op.GeoM.Reset()
	o.op.GeoM.Translate(4, 4)
	target.DrawImage(o.img, &o.op)
}
