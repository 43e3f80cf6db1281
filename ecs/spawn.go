package ecs

import (
	"github.com/phanxgames/worldview"

	"github.com/yohamta/donburi"
)

func spawn[T any](w donburi.World, c *donburi.ComponentType[T], v T) *donburi.Entry {
	entry := w.Entry(w.Create(c))
	c.SetValue(entry, v)
	return entry
}

// SpawnPlayer adds a player entity to w.
func SpawnPlayer(w donburi.World, p worldview.Player) *donburi.Entry {
	return spawn(w, Player, p)
}

func SpawnTree(w donburi.World, t worldview.Tree) *donburi.Entry {
	return spawn(w, Tree, t)
}

func SpawnStone(w donburi.World, s worldview.Stone) *donburi.Entry {
	return spawn(w, Stone, s)
}

func SpawnCampfire(w donburi.World, c worldview.Campfire) *donburi.Entry {
	return spawn(w, Campfire, c)
}

func SpawnMushroom(w donburi.World, m worldview.Mushroom) *donburi.Entry {
	return spawn(w, Mushroom, m)
}

func SpawnDroppedItem(w donburi.World, d worldview.DroppedItem) *donburi.Entry {
	return spawn(w, DroppedItem, d)
}

func SpawnStorageBox(w donburi.World, b worldview.StorageBox) *donburi.Entry {
	return spawn(w, StorageBox, b)
}
