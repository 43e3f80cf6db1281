package worldview

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandSprite CommandType = iota // DrawImage of a named asset
	CommandRect                      // flat colored rectangle
	CommandText                      // debug-font label
)

// Player decoration sizes, in pixels.
const (
	itemIconSize    = 32
	shadowWidth     = 40
	shadowHeight    = 10
	nameTagGap      = 14
	debugGlyphWidth = 6
)

var shadowColor = Color{R: 0, G: 0, B: 0, A: 0.35}

// DrawCommand is a single draw instruction in screen space. X and Y are the
// center of the destination rectangle.
type DrawCommand struct {
	Type  CommandType
	Kind  Kind
	Asset string
	// Src is the sub-rectangle of the asset to draw; empty means the whole image.
	Src           image.Rectangle
	X, Y          float64
	Width, Height float64
	Rotation      float64
	Color         Color
	Text          string
}

// Renderer turns a FrameResult into draw commands and submits them to an
// ebiten image.
type Renderer struct {
	assets   *Assets
	commands []DrawCommand
	op       ebiten.DrawImageOptions
}

// NewRenderer creates a renderer resolving images from assets.
func NewRenderer(assets *Assets) *Renderer {
	return &Renderer{
		assets:   assets,
		commands: make([]DrawCommand, 0, 1024),
	}
}

// Build emits draw commands for res: the ground group in order, then the
// standing group in order. cursor is the pointer position in world space;
// hovered, living players get a name tag. The returned slice is reused by the
// next call.
func (r *Renderer) Build(res *FrameResult, cam *Camera, cursor Vec2) []DrawCommand {
	r.commands = r.commands[:0]
	for i := range res.Ground {
		r.emitEntity(res.Ground[i].Entity, cam)
	}
	for i := range res.Standing {
		it := &res.Standing[i]
		if p, ok := it.Entity.(*Player); ok {
			v, ok := res.Players[p.Identity]
			if !ok {
				continue
			}
			r.emitPlayer(v, cam, hovered(p, cursor))
			continue
		}
		r.emitEntity(it.Entity, cam)
	}
	return r.commands
}

// hovered reports whether the world-space cursor lies over the player's
// footprint.
func hovered(p *Player, cursor Vec2) bool {
	return math.Abs(cursor.X-p.Position.X) < PlayerSize/2 &&
		math.Abs(cursor.Y-p.Position.Y) < PlayerSize/2
}

func (r *Renderer) emitEntity(e Entity, cam *Camera) {
	sp, ok := Classify(e)
	if !ok {
		return
	}
	sx, sy := cam.WorldToScreen(sp.X, sp.Y)
	name := r.resolve(e)
	if name == "" {
		r.emitRect(sp.Kind, sx, sy, sp.Width, sp.Height, 0, PlaceholderColor(sp.Kind))
		return
	}
	r.commands = append(r.commands, DrawCommand{
		Type:   CommandSprite,
		Kind:   sp.Kind,
		Asset:  name,
		X:      sx,
		Y:      sy,
		Width:  sp.Width,
		Height: sp.Height,
	})
}

// resolve returns the asset to draw e with, or "" when a placeholder is
// needed. Typed trees fall back to the generic tree sprite.
func (r *Renderer) resolve(e Entity) string {
	name := spriteAsset(e)
	if name != "" && r.assets.Has(name) {
		return name
	}
	if _, ok := e.(*Tree); ok && r.assets.Has(AssetTree) {
		return AssetTree
	}
	return ""
}

func (r *Renderer) emitRect(k Kind, x, y, w, h, rot float64, c Color) {
	r.commands = append(r.commands, DrawCommand{
		Type:     CommandRect,
		Kind:     k,
		X:        x,
		Y:        y,
		Width:    w,
		Height:   h,
		Rotation: rot,
		Color:    c,
	})
}

// emitPlayer emits shadow, held item, body and name tag for one player. The
// item goes before or after the body according to v.ItemOrder.
func (r *Renderer) emitPlayer(v PlayerVisual, cam *Camera, hover bool) {
	p := v.Player
	sx, sy := cam.WorldToScreen(p.Position.X, p.Position.Y)
	bodyX := sx + v.Shake.X
	bodyY := sy + v.Shake.Y - v.Lift

	if v.ShowShadow {
		if r.assets.Has(AssetShadow) {
			r.commands = append(r.commands, DrawCommand{
				Type: CommandSprite, Kind: KindPlayer, Asset: AssetShadow,
				X: sx, Y: sy + PlayerSize/2 - shadowHeight/2,
				Width: shadowWidth, Height: shadowHeight,
			})
		} else {
			r.emitRect(KindPlayer, sx, sy+PlayerSize/2-shadowHeight/2, shadowWidth, shadowHeight, 0, shadowColor)
		}
	}

	item := p.EquippedItem
	drawItem := item != "" && r.assets.Has(item)
	if drawItem && v.ItemOrder == ItemBehind {
		r.emitItem(item, bodyX, bodyY, p.Direction)
	}

	if r.assets.Has(AssetPlayerSheet) {
		r.commands = append(r.commands, DrawCommand{
			Type:  CommandSprite,
			Kind:  KindPlayer,
			Asset: AssetPlayerSheet,
			Src: image.Rect(
				v.Frame*PlayerFrameSize, v.Row*PlayerFrameSize,
				(v.Frame+1)*PlayerFrameSize, (v.Row+1)*PlayerFrameSize,
			),
			X:        bodyX,
			Y:        bodyY,
			Width:    PlayerSize,
			Height:   PlayerSize,
			Rotation: v.Rotation,
		})
	} else {
		r.emitRect(KindPlayer, bodyX, bodyY, PlayerSize, PlayerSize, v.Rotation, PlaceholderColor(KindPlayer))
	}

	if drawItem && v.ItemOrder == ItemInFront {
		r.emitItem(item, bodyX, bodyY, p.Direction)
	}

	if v.ShowNameTag && hover {
		label := p.Username
		if label == "" {
			label = p.Identity
		}
		r.commands = append(r.commands, DrawCommand{
			Type: CommandText,
			Kind: KindPlayer,
			Text: label,
			X:    sx,
			Y:    bodyY - PlayerSize/2 - nameTagGap,
		})
	}
}

// handOffsets places the held item at the hand for each facing.
var handOffsets = map[Direction]Vec2{
	DirectionUp:    {X: 14, Y: -6},
	DirectionRight: {X: 18, Y: 8},
	DirectionDown:  {X: -14, Y: 10},
	DirectionLeft:  {X: -18, Y: 8},
}

func (r *Renderer) emitItem(name string, bodyX, bodyY float64, d Direction) {
	off, ok := handOffsets[d]
	if !ok {
		off = handOffsets[DirectionDown]
	}
	r.commands = append(r.commands, DrawCommand{
		Type:   CommandSprite,
		Kind:   KindPlayer,
		Asset:  name,
		X:      bodyX + off.X,
		Y:      bodyY + off.Y,
		Width:  itemIconSize,
		Height: itemIconSize,
	})
}

// Submit draws the most recently built commands to target. A sprite whose
// image disappeared since Build is drawn as a placeholder rectangle.
func (r *Renderer) Submit(target *ebiten.Image) {
	for i := range r.commands {
		cmd := &r.commands[i]
		switch cmd.Type {
		case CommandSprite:
			r.submitSprite(target, cmd)
		case CommandRect:
			r.submitRect(target, cmd, cmd.Color)
		case CommandText:
			x := int(cmd.X) - len(cmd.Text)*debugGlyphWidth/2
			ebitenutil.DebugPrintAt(target, cmd.Text, x, int(cmd.Y))
		}
	}
}

func (r *Renderer) submitSprite(target *ebiten.Image, cmd *DrawCommand) {
	img := r.assets.Image(cmd.Asset)
	if img == nil {
		r.submitRect(target, cmd, PlaceholderColor(cmd.Kind))
		return
	}
	if !cmd.Src.Empty() {
		img = img.SubImage(cmd.Src).(*ebiten.Image)
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	op := &r.op
	op.GeoM.Reset()
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(cmd.Width/w, cmd.Height/h)
	if cmd.Rotation != 0 {
		op.GeoM.Rotate(cmd.Rotation)
	}
	op.GeoM.Translate(cmd.X, cmd.Y)
	op.ColorScale.Reset()
	op.Filter = ebiten.FilterNearest
	target.DrawImage(img, op)
}

func (r *Renderer) submitRect(target *ebiten.Image, cmd *DrawCommand, c Color) {
	op := &r.op
	op.GeoM.Reset()
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(cmd.Width, cmd.Height)
	if cmd.Rotation != 0 {
		op.GeoM.Rotate(cmd.Rotation)
	}
	op.GeoM.Translate(cmd.X, cmd.Y)
	op.ColorScale.Reset()
	a := float32(c.A)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	op.Filter = ebiten.FilterNearest
	target.DrawImage(ensureWhitePixel(), op)
}
