package worldview

import (
	"math"
	"strconv"
)

// Fixed world-space footprints per kind, in pixels.
const (
	PlayerSize      = 64
	TreeWidth       = 96
	TreeHeight      = 128
	StoneSize       = 64
	CampfireSize    = 64
	StorageBoxSize  = 64
	MushroomSize    = 32
	DroppedItemSize = 32
)

// Entity is a read-only snapshot of one world object. The set of
// implementations is closed: Player, Tree, Stone, Campfire, Mushroom,
// DroppedItem and StorageBox.
type Entity interface {
	// Key returns the id used for lookup tables and the animation state.
	Key() string
	entity()
}

// Player is a connected player. Times are wall-clock milliseconds, zero when
// unset.
type Player struct {
	Identity      string
	Username      string
	Position      Vec2
	Direction     Direction
	Health        float64
	IsDead        bool
	LastHitTime   int64
	JumpStartTime int64
	// EquippedItem is the asset name of the held item's icon, empty if none.
	EquippedItem string
}

// Tree is a harvestable tree. A tree with Health <= 0 has been felled.
type Tree struct {
	ID       uint64
	Position Vec2
	Health   float64
	TreeType string
}

// Stone is a minable stone. A stone with Health <= 0 has been broken.
type Stone struct {
	ID       uint64
	Position Vec2
	Health   float64
}

// Campfire is a placed campfire.
type Campfire struct {
	ID        uint64
	Position  Vec2
	IsBurning bool
}

// Mushroom is a pickable mushroom. RespawnAt is non-nil while it is regrowing.
type Mushroom struct {
	ID        uint64
	Position  Vec2
	RespawnAt *int64
}

// DroppedItem is an item stack lying on the ground.
type DroppedItem struct {
	ID       uint64
	Position Vec2
	ItemDef  string
	Quantity uint32
}

// StorageBox is a placed storage container.
type StorageBox struct {
	ID       uint64
	Position Vec2
	PlacedBy string
}

func (p *Player) Key() string      { return p.Identity }
func (t *Tree) Key() string        { return strconv.FormatUint(t.ID, 10) }
func (s *Stone) Key() string       { return strconv.FormatUint(s.ID, 10) }
func (c *Campfire) Key() string    { return strconv.FormatUint(c.ID, 10) }
func (m *Mushroom) Key() string    { return strconv.FormatUint(m.ID, 10) }
func (d *DroppedItem) Key() string { return strconv.FormatUint(d.ID, 10) }
func (b *StorageBox) Key() string  { return strconv.FormatUint(b.ID, 10) }

func (*Player) entity()      {}
func (*Tree) entity()        {}
func (*Stone) entity()       {}
func (*Campfire) entity()    {}
func (*Mushroom) entity()    {}
func (*DroppedItem) entity() {}
func (*StorageBox) entity()  {}

// Footprint returns the fixed width and height for a kind.
func Footprint(k Kind) (w, h float64) {
	switch k {
	case KindPlayer:
		return PlayerSize, PlayerSize
	case KindTree:
		return TreeWidth, TreeHeight
	case KindStone:
		return StoneSize, StoneSize
	case KindCampfire:
		return CampfireSize, CampfireSize
	case KindStorageBox:
		return StorageBoxSize, StorageBoxSize
	case KindMushroom:
		return MushroomSize, MushroomSize
	case KindDroppedItem:
		return DroppedItemSize, DroppedItemSize
	default:
		return 0, 0
	}
}

// Spatial is the classified extent of an entity in world space. X and Y are
// the center of the footprint.
type Spatial struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
}

// Classify determines an entity's kind and extracts its position and
// footprint. It reports false for nil values and for positions that are not
// finite numbers; such entities contribute nothing to the frame.
func Classify(e Entity) (Spatial, bool) {
	var (
		k   Kind
		pos Vec2
	)
	switch v := e.(type) {
	case *Player:
		if v == nil {
			return Spatial{}, false
		}
		k, pos = KindPlayer, v.Position
	case *Tree:
		if v == nil {
			return Spatial{}, false
		}
		k, pos = KindTree, v.Position
	case *Stone:
		if v == nil {
			return Spatial{}, false
		}
		k, pos = KindStone, v.Position
	case *Campfire:
		if v == nil {
			return Spatial{}, false
		}
		k, pos = KindCampfire, v.Position
	case *Mushroom:
		if v == nil {
			return Spatial{}, false
		}
		k, pos = KindMushroom, v.Position
	case *DroppedItem:
		if v == nil {
			return Spatial{}, false
		}
		k, pos = KindDroppedItem, v.Position
	case *StorageBox:
		if v == nil {
			return Spatial{}, false
		}
		k, pos = KindStorageBox, v.Position
	default:
		return Spatial{}, false
	}
	if !finite(pos.X) || !finite(pos.Y) {
		return Spatial{}, false
	}
	w, h := Footprint(k)
	return Spatial{Kind: k, X: pos.X, Y: pos.Y, Width: w, Height: h}, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Snapshot is one frame of world state, one ordered collection per kind.
// Order within a collection is the iteration order every later stage keeps.
type Snapshot struct {
	Players      []*Player
	Trees        []*Tree
	Stones       []*Stone
	Campfires    []*Campfire
	Mushrooms    []*Mushroom
	DroppedItems []*DroppedItem
	StorageBoxes []*StorageBox
}

// Len returns the total number of entities across all collections.
func (s *Snapshot) Len() int {
	return len(s.Players) + len(s.Trees) + len(s.Stones) + len(s.Campfires) +
		len(s.Mushrooms) + len(s.DroppedItems) + len(s.StorageBoxes)
}

// SnapshotSource supplies a fresh Snapshot each frame.
type SnapshotSource interface {
	Snapshot() Snapshot
}
