// Package ecs provides ECS adapters for worldview.
package ecs

import (
	"github.com/phanxgames/worldview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Component types, one per entity kind. Each stores the worldview struct by
// value.
var (
	Player      = donburi.NewComponentType[worldview.Player]()
	Tree        = donburi.NewComponentType[worldview.Tree]()
	Stone       = donburi.NewComponentType[worldview.Stone]()
	Campfire    = donburi.NewComponentType[worldview.Campfire]()
	Mushroom    = donburi.NewComponentType[worldview.Mushroom]()
	DroppedItem = donburi.NewComponentType[worldview.DroppedItem]()
	StorageBox  = donburi.NewComponentType[worldview.StorageBox]()
)

// HitEvent reports that a player was hit at At (milliseconds).
type HitEvent struct {
	Identity string
	At       int64
}

// JumpEvent reports that a player started a jump at At (milliseconds).
type JumpEvent struct {
	Identity string
	At       int64
}

// HitEventType and JumpEventType are the Donburi event types the Source
// listens to. Publish to them from gameplay systems; the Source stamps the
// matching player when it next takes a snapshot.
var (
	HitEventType  = events.NewEventType[HitEvent]()
	JumpEventType = events.NewEventType[JumpEvent]()
)

// Source is a [worldview.SnapshotSource] backed by a Donburi world.
type Source struct {
	world donburi.World

	players      *donburi.Query
	trees        *donburi.Query
	stones       *donburi.Query
	campfires    *donburi.Query
	mushrooms    *donburi.Query
	droppedItems *donburi.Query
	storageBoxes *donburi.Query
}

// NewSource creates a Source over world and subscribes it to HitEventType
// and JumpEventType. Create one Source per world.
func NewSource(world donburi.World) *Source {
	s := &Source{
		world:        world,
		players:      donburi.NewQuery(filter.Contains(Player)),
		trees:        donburi.NewQuery(filter.Contains(Tree)),
		stones:       donburi.NewQuery(filter.Contains(Stone)),
		campfires:    donburi.NewQuery(filter.Contains(Campfire)),
		mushrooms:    donburi.NewQuery(filter.Contains(Mushroom)),
		droppedItems: donburi.NewQuery(filter.Contains(DroppedItem)),
		storageBoxes: donburi.NewQuery(filter.Contains(StorageBox)),
	}
	HitEventType.Subscribe(world, s.onHit)
	JumpEventType.Subscribe(world, s.onJump)
	return s
}

// Snapshot processes pending hit and jump events and copies every entity out
// of the world. The copies are independent of the ECS storage.
func (s *Source) Snapshot() worldview.Snapshot {
	HitEventType.ProcessEvents(s.world)
	JumpEventType.ProcessEvents(s.world)

	var snap worldview.Snapshot
	snap.Players = collect(s.world, s.players, Player)
	snap.Trees = collect(s.world, s.trees, Tree)
	snap.Stones = collect(s.world, s.stones, Stone)
	snap.Campfires = collect(s.world, s.campfires, Campfire)
	snap.Mushrooms = collect(s.world, s.mushrooms, Mushroom)
	snap.DroppedItems = collect(s.world, s.droppedItems, DroppedItem)
	snap.StorageBoxes = collect(s.world, s.storageBoxes, StorageBox)
	return snap
}

func collect[T any](w donburi.World, q *donburi.Query, c *donburi.ComponentType[T]) []*T {
	var out []*T
	q.Each(w, func(entry *donburi.Entry) {
		v := *c.Get(entry)
		out = append(out, &v)
	})
	return out
}

// FindPlayer returns the entry of the player with the given identity, or nil.
func (s *Source) FindPlayer(identity string) *donburi.Entry {
	var found *donburi.Entry
	s.players.Each(s.world, func(entry *donburi.Entry) {
		if found == nil && Player.Get(entry).Identity == identity {
			found = entry
		}
	})
	return found
}

func (s *Source) onHit(_ donburi.World, e HitEvent) {
	if entry := s.FindPlayer(e.Identity); entry != nil {
		Player.Get(entry).LastHitTime = e.At
	}
}

func (s *Source) onJump(_ donburi.World, e JumpEvent) {
	if entry := s.FindPlayer(e.Identity); entry != nil {
		Player.Get(entry).JumpStartTime = e.At
	}
}
