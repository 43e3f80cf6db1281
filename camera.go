package worldview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cullBufferTiles is how many tiles the visible rectangle is grown by on every
// side so entities don't pop in at the screen edge.
const cullBufferTiles = 2

// ViewportBounds is the world-space rectangle considered visible this frame,
// already expanded by the cull buffer.
type ViewportBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ComputeBounds returns the visible world rectangle for a camera offset and
// canvas size. The camera offset is the translation applied to world
// coordinates to get canvas coordinates, so the canvas origin sits at world
// (-offsetX, -offsetY).
func ComputeBounds(offsetX, offsetY, canvasW, canvasH, tileSize float64) ViewportBounds {
	buffer := cullBufferTiles * tileSize
	return ViewportBounds{
		MinX: -offsetX - buffer,
		MaxX: -offsetX + canvasW + buffer,
		MinY: -offsetY - buffer,
		MaxY: -offsetY + canvasH + buffer,
	}
}

// InView reports whether an entity's footprint strictly overlaps b on both
// axes. A footprint that only touches an edge is not visible. Unclassifiable
// entities are never in view.
func InView(e Entity, b ViewportBounds) bool {
	sp, ok := Classify(e)
	if !ok {
		return false
	}
	return sp.overlaps(b)
}

func (sp Spatial) overlaps(b ViewportBounds) bool {
	halfW, halfH := sp.Width/2, sp.Height/2
	return sp.X-halfW < b.MaxX &&
		sp.X+halfW > b.MinX &&
		sp.Y-halfH < b.MaxY &&
		sp.Y+halfH > b.MinY
}

// scrollAnim holds active scroll-to tweens for the camera offset.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera tracks the view offset and canvas size and caches the resulting
// ViewportBounds.
type Camera struct {
	// OffsetX and OffsetY translate world coordinates to canvas coordinates.
	OffsetX, OffsetY float64
	// CanvasWidth and CanvasHeight are the drawable size in pixels.
	CanvasWidth, CanvasHeight float64
	// TileSize is the world tile width, used for the cull buffer.
	TileSize float64

	following  bool
	followX    float64
	followY    float64
	followLerp float64

	bounds      ViewportBounds
	boundsInput [5]float64
	boundsValid bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera for the given canvas size and tile size.
func NewCamera(canvasW, canvasH, tileSize float64) *Camera {
	return &Camera{
		CanvasWidth:  canvasW,
		CanvasHeight: canvasH,
		TileSize:     tileSize,
	}
}

// Ready reports whether the canvas has a drawable area. Frames are skipped
// while it does not.
func (c *Camera) Ready() bool {
	return c.CanvasWidth > 0 && c.CanvasHeight > 0
}

// SetCanvasSize updates the canvas dimensions.
func (c *Camera) SetCanvasSize(w, h float64) {
	c.CanvasWidth = w
	c.CanvasHeight = h
}

// Follow makes the camera center on a world position. A lerp of 1.0 snaps
// immediately; lower values ease toward the target each update.
func (c *Camera) Follow(x, y, lerp float64) {
	c.following = true
	c.followX = x
	c.followY = y
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.following = false
}

// CenterOn sets the offset so world (x, y) is at the canvas center.
func (c *Camera) CenterOn(x, y float64) {
	c.OffsetX, c.OffsetY = c.centeredOffset(x, y)
}

func (c *Camera) centeredOffset(x, y float64) (float64, float64) {
	return c.CanvasWidth/2 - x, c.CanvasHeight/2 - y
}

// ScrollTo animates the camera until world (x, y) is centered, over duration
// seconds. Following is suspended while the scroll runs.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	tx, ty := c.centeredOffset(x, y)
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.OffsetX), float32(tx), duration, easeFn),
		tweenY: gween.New(float32(c.OffsetY), float32(ty), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances follow and scroll by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.OffsetX = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.OffsetY = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
		return
	}

	if c.following {
		tx, ty := c.centeredOffset(c.followX, c.followY)
		c.OffsetX += (tx - c.OffsetX) * c.followLerp
		c.OffsetY += (ty - c.OffsetY) * c.followLerp
	}
}

// Bounds returns the visible world rectangle, recomputing it only when the
// offset, canvas size or tile size changed since the last call.
func (c *Camera) Bounds() ViewportBounds {
	in := [5]float64{c.OffsetX, c.OffsetY, c.CanvasWidth, c.CanvasHeight, c.TileSize}
	if c.boundsValid && in == c.boundsInput {
		return c.bounds
	}
	c.bounds = ComputeBounds(c.OffsetX, c.OffsetY, c.CanvasWidth, c.CanvasHeight, c.TileSize)
	c.boundsInput = in
	c.boundsValid = true
	return c.bounds
}

// WorldToScreen converts world coordinates to canvas coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx + c.OffsetX, wy + c.OffsetY
}

// ScreenToWorld converts canvas coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx - c.OffsetX, sy - c.OffsetY
}
