package worldview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a SnapshotSource and a Pipeline to [ebiten.Game]. Each Draw
// takes one snapshot, runs it through the pipeline and draws the result.
type Game struct {
	// Source supplies the entity collections for each frame.
	Source SnapshotSource
	// Pipeline runs cull, filter, compose and animate.
	Pipeline *Pipeline
	// Renderer draws the pipeline output.
	Renderer *Renderer
	// Clock returns the current time in milliseconds. Defaults to the wall
	// clock.
	Clock func() int64
	// Frames drives the shared walk cycle.
	Frames *FrameCounter
	// ClearColor fills the screen before drawing. Zero alpha leaves it as is.
	ClearColor Color
	// LocalPlayer is the identity the camera follows, if non-empty.
	LocalPlayer string
	// FollowLerp is the camera follow easing, 1 snaps.
	FollowLerp float64
	// ShowFPS draws an FPS and entity-count overlay.
	ShowFPS bool

	cfg      Config
	updateFn func() error
	cursor   Vec2
	snap     Snapshot
	hasSnap  bool
	overlay  *fpsOverlay
}

// NewGame wires a pipeline, renderer and frame counter from cfg around src.
// Images are resolved from assets; pass NewAssets() to draw placeholders only.
func NewGame(cfg Config, src SnapshotSource, assets *Assets) *Game {
	cam := NewCamera(float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.TileSize)
	assets.SetDebug(cfg.Debug)
	return &Game{
		Source:     src,
		Pipeline:   NewPipeline(cfg, cam, nil),
		Renderer:   NewRenderer(assets),
		Clock:      func() int64 { return time.Now().UnixMilli() },
		Frames:     NewFrameCounter(cfg.Animation.WalkFrames, cfg.Animation.TicksPerFrame),
		ClearColor: Color{R: 0.18, G: 0.32, B: 0.16, A: 1},
		FollowLerp: 0.15,
		cfg:        cfg,
	}
}

// SetUpdateFunc registers a callback run at the start of every Update. An
// error returned from it stops the game loop.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.updateFn = fn
}

// Update advances the walk cycle and the camera.
func (g *Game) Update() error {
	if g.updateFn != nil {
		if err := g.updateFn(); err != nil {
			return err
		}
	}
	dt := 1.0 / float64(ebiten.TPS())
	g.Frames.Tick()

	cam := g.Pipeline.Camera()
	if p := g.localPlayer(); p != nil {
		cam.Follow(p.Position.X, p.Position.Y, g.FollowLerp)
	}
	cam.Update(float32(dt))

	cx, cy := ebiten.CursorPosition()
	g.cursor.X, g.cursor.Y = cam.ScreenToWorld(float64(cx), float64(cy))

	if g.ShowFPS {
		if g.overlay == nil {
			g.overlay = newFPSOverlay()
		}
		g.overlay.update(dt)
	}
	return nil
}

// localPlayer finds the followed player in the last drawn snapshot.
func (g *Game) localPlayer() *Player {
	if g.LocalPlayer == "" || !g.hasSnap {
		return nil
	}
	for _, p := range g.snap.Players {
		if p != nil && p.Identity == g.LocalPlayer {
			return p
		}
	}
	return nil
}

// Draw takes a snapshot and renders one frame. Nothing is drawn while the
// canvas has no size.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ClearColor.A > 0 {
		screen.Fill(g.ClearColor.toRGBA())
	}
	g.snap = g.Source.Snapshot()
	g.hasSnap = true

	res, ok := g.Pipeline.Frame(&g.snap, g.Clock(), g.Frames.Frame())
	if !ok {
		return
	}
	g.Renderer.Build(&res, g.Pipeline.Camera(), g.cursor)
	g.Renderer.Submit(screen)

	if g.overlay != nil {
		g.overlay.record(&res)
		g.overlay.draw(screen)
	}
}

// Layout uses the outside size as the canvas size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Pipeline.Camera().SetCanvasSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window sized from the game's config and runs g until the window
// closes or an update returns an error.
func Run(g *Game) error {
	w := g.cfg.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
