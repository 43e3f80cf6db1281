package main

import (
	"image/color"

	"github.com/phanxgames/worldview"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skin    = color.RGBA{R: 236, G: 196, B: 150, A: 255}
	shirt   = color.RGBA{R: 60, G: 110, B: 200, A: 255}
	hair    = color.RGBA{R: 70, G: 45, B: 30, A: 255}
	leaves  = color.RGBA{R: 40, G: 120, B: 50, A: 255}
	pine    = color.RGBA{R: 25, G: 85, B: 60, A: 255}
	oak     = color.RGBA{R: 70, G: 140, B: 40, A: 255}
	bark    = color.RGBA{R: 100, G: 65, B: 35, A: 255}
	rock    = color.RGBA{R: 130, G: 130, B: 135, A: 255}
	flame   = color.RGBA{R: 250, G: 150, B: 30, A: 255}
	ash     = color.RGBA{R: 60, G: 55, B: 50, A: 255}
	capRed  = color.RGBA{R: 200, G: 40, B: 50, A: 255}
	wood    = color.RGBA{R: 150, G: 100, B: 55, A: 255}
	steel   = color.RGBA{R: 190, G: 195, B: 205, A: 255}
	shadowC = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

// loadSprites draws every sprite the demo uses into assets.
func loadSprites(assets *worldview.Assets) {
	assets.Add(worldview.AssetPlayerSheet, playerSheet())
	assets.Add(worldview.AssetTree, tree(leaves))
	assets.Add(worldview.AssetTree+"_oak", tree(oak))
	assets.Add(worldview.AssetTree+"_pine", tree(pine))
	assets.Add(worldview.AssetStone, stone())
	assets.Add(worldview.AssetCampfire, campfire(true))
	assets.Add(worldview.AssetCampfireOff, campfire(false))
	assets.Add(worldview.AssetMushroom, mushroom())
	assets.Add(worldview.AssetStorageBox, storageBox())
	assets.Add(worldview.AssetShadow, shadow())
	assets.Add("axe", tool(wood, steel))
	assets.Add("pickaxe", tool(wood, rock))
	// "torch" is left out so its holders draw without an item and its drops
	// draw as placeholders.
}

// playerSheet draws a 4x4 grid of frames: one row per facing, one column per
// walk frame. Legs alternate across columns.
func playerSheet() *ebiten.Image {
	const n = worldview.PlayerFrameSize
	img := ebiten.NewImage(4*n, 4*n)
	for row := range 4 {
		for col := range 4 {
			x, y := float32(col*n), float32(row*n)
			stride := float32([4]int{-3, 0, 3, 0}[col])
			vector.DrawFilledRect(img, x+17+stride, y+34, 5, 12, hair, false)
			vector.DrawFilledRect(img, x+26-stride, y+34, 5, 12, hair, false)
			vector.DrawFilledRect(img, x+14, y+18, 20, 18, shirt, false)
			vector.DrawFilledCircle(img, x+24, y+12, 9, skin, true)
			switch row {
			case worldview.RowUp:
				vector.DrawFilledCircle(img, x+24, y+12, 8, hair, true)
			case worldview.RowRight:
				vector.DrawFilledRect(img, x+27, y+9, 3, 3, hair, false)
			case worldview.RowDown:
				vector.DrawFilledRect(img, x+19, y+9, 3, 3, hair, false)
				vector.DrawFilledRect(img, x+26, y+9, 3, 3, hair, false)
			case worldview.RowLeft:
				vector.DrawFilledRect(img, x+18, y+9, 3, 3, hair, false)
			}
		}
	}
	return img
}

func tree(crown color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(worldview.TreeWidth, worldview.TreeHeight)
	vector.DrawFilledRect(img, 40, 80, 16, 48, bark, false)
	vector.DrawFilledCircle(img, 48, 50, 40, crown, true)
	return img
}

func stone() *ebiten.Image {
	img := ebiten.NewImage(worldview.StoneSize, worldview.StoneSize)
	vector.DrawFilledCircle(img, 32, 38, 24, rock, true)
	return img
}

func campfire(burning bool) *ebiten.Image {
	img := ebiten.NewImage(worldview.CampfireSize, worldview.CampfireSize)
	vector.DrawFilledRect(img, 12, 44, 40, 8, bark, false)
	if burning {
		vector.DrawFilledCircle(img, 32, 34, 14, flame, true)
	} else {
		vector.DrawFilledCircle(img, 32, 42, 10, ash, true)
	}
	return img
}

func mushroom() *ebiten.Image {
	img := ebiten.NewImage(worldview.MushroomSize, worldview.MushroomSize)
	vector.DrawFilledRect(img, 13, 14, 6, 14, skin, false)
	vector.DrawFilledCircle(img, 16, 14, 11, capRed, true)
	return img
}

func storageBox() *ebiten.Image {
	img := ebiten.NewImage(worldview.StorageBoxSize, worldview.StorageBoxSize)
	vector.DrawFilledRect(img, 8, 16, 48, 40, wood, false)
	vector.StrokeRect(img, 8, 16, 48, 40, 2, bark, false)
	vector.StrokeLine(img, 8, 30, 56, 30, 2, bark, false)
	return img
}

func shadow() *ebiten.Image {
	img := ebiten.NewImage(40, 10)
	vector.DrawFilledRect(img, 0, 0, 40, 10, shadowC, false)
	return img
}

func tool(handle, head color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(32, 32)
	vector.StrokeLine(img, 8, 28, 24, 6, 4, handle, true)
	vector.DrawFilledRect(img, 18, 2, 12, 8, head, false)
	return img
}
