package worldview

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Asset names for the sprite sheets and props the draw pass looks up.
const (
	AssetPlayerSheet = "player"
	AssetTree        = "tree"
	AssetStone       = "stone"
	AssetCampfire    = "campfire"
	AssetCampfireOff = "campfire_off"
	AssetMushroom    = "mushroom"
	AssetStorageBox  = "storage_box"
	AssetShadow      = "shadow"
)

// PlayerFrameSize is the width and height of one cell in the player sheet.
const PlayerFrameSize = 48

// Assets holds already-decoded images keyed by asset name. Decoding is the
// caller's job; Assets only resolves names and supplies placeholders.
type Assets struct {
	images map[string]*ebiten.Image
	warned map[string]bool
	debug  bool
}

// NewAssets creates an empty asset table.
func NewAssets() *Assets {
	return &Assets{
		images: make(map[string]*ebiten.Image),
		warned: make(map[string]bool),
	}
}

// Add registers img under name, replacing any previous image.
func (a *Assets) Add(name string, img *ebiten.Image) {
	if img == nil {
		delete(a.images, name)
		return
	}
	a.images[name] = img
}

// Has reports whether name resolves to an image.
func (a *Assets) Has(name string) bool {
	_, ok := a.images[name]
	return ok
}

// Image returns the image registered under name, or nil. A missing name is
// logged once when debug is enabled.
func (a *Assets) Image(name string) *ebiten.Image {
	if img, ok := a.images[name]; ok {
		return img
	}
	if a.debug && !a.warned[name] {
		a.warned[name] = true
		log.Printf("worldview: asset %q not found, drawing placeholder", name)
	}
	return nil
}

// SetDebug enables logging of missing asset names.
func (a *Assets) SetDebug(enabled bool) {
	a.debug = enabled
}

// placeholderColors tints the flat rectangle drawn when a kind's sprite is
// missing.
var placeholderColors = map[Kind]Color{
	KindPlayer:      {R: 0.85, G: 0.83, B: 0.37, A: 1},
	KindTree:        {R: 0.18, G: 0.45, B: 0.2, A: 1},
	KindStone:       {R: 0.5, G: 0.5, B: 0.52, A: 1},
	KindCampfire:    {R: 0.85, G: 0.35, B: 0.1, A: 1},
	KindMushroom:    {R: 0.8, G: 0.2, B: 0.25, A: 1},
	KindDroppedItem: {R: 0.9, G: 0.9, B: 0.5, A: 1},
	KindStorageBox:  {R: 0.55, G: 0.35, B: 0.18, A: 1},
}

// PlaceholderColor returns the flat color used for a kind with no sprite.
func PlaceholderColor(k Kind) Color {
	if c, ok := placeholderColors[k]; ok {
		return c
	}
	return Color{R: 1, G: 0, B: 1, A: 1}
}

// whitePixel singleton (no sync.Once: drawing is single-threaded)
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// spriteAsset returns the asset name for a non-player entity.
func spriteAsset(e Entity) string {
	switch v := e.(type) {
	case *Tree:
		if v.TreeType != "" {
			return AssetTree + "_" + v.TreeType
		}
		return AssetTree
	case *Stone:
		return AssetStone
	case *Campfire:
		if v.IsBurning {
			return AssetCampfire
		}
		return AssetCampfireOff
	case *Mushroom:
		return AssetMushroom
	case *DroppedItem:
		return v.ItemDef
	case *StorageBox:
		return AssetStorageBox
	default:
		return ""
	}
}
