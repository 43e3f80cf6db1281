package worldview

// VisibilityResult holds the entities that survived culling and liveness for
// one frame. Slices keep snapshot order. The maps index the same entities by
// their stringified id for kinds that later passes look up directly.
type VisibilityResult struct {
	Players      []*Player
	Trees        []*Tree
	Stones       []*Stone
	Campfires    []*Campfire
	Mushrooms    []*Mushroom
	DroppedItems []*DroppedItem
	StorageBoxes []*StorageBox

	MushroomsByID    map[string]*Mushroom
	CampfiresByID    map[string]*Campfire
	DroppedItemsByID map[string]*DroppedItem
	StorageBoxesByID map[string]*StorageBox

	// Rejected counts entities dropped because they could not be classified.
	Rejected int
}

// Liveness predicates. An entity failing its predicate is not drawn even when
// it is on screen.

func mushroomAlive(m *Mushroom) bool { return m.RespawnAt == nil }
func treeAlive(t *Tree) bool         { return t.Health > 0 }
func stoneAlive(s *Stone) bool       { return s.Health > 0 }

// FilterVisible applies culling and the per-kind liveness predicates to every
// collection in snap.
func FilterVisible(snap *Snapshot, b ViewportBounds) VisibilityResult {
	var r VisibilityResult
	r.Players = filterKind(snap.Players, b, nil, &r.Rejected)
	r.Trees = filterKind(snap.Trees, b, treeAlive, &r.Rejected)
	r.Stones = filterKind(snap.Stones, b, stoneAlive, &r.Rejected)
	r.Campfires = filterKind(snap.Campfires, b, nil, &r.Rejected)
	r.Mushrooms = filterKind(snap.Mushrooms, b, mushroomAlive, &r.Rejected)
	r.DroppedItems = filterKind(snap.DroppedItems, b, nil, &r.Rejected)
	r.StorageBoxes = filterKind(snap.StorageBoxes, b, nil, &r.Rejected)

	r.MushroomsByID = indexByKey(r.Mushrooms)
	r.CampfiresByID = indexByKey(r.Campfires)
	r.DroppedItemsByID = indexByKey(r.DroppedItems)
	r.StorageBoxesByID = indexByKey(r.StorageBoxes)
	return r
}

// filterKind keeps the entities of one collection that are classifiable, in
// view, and pass alive (when non-nil). Input order is preserved.
func filterKind[T Entity](in []T, b ViewportBounds, alive func(T) bool, rejected *int) []T {
	out := make([]T, 0, len(in))
	for _, e := range in {
		sp, ok := Classify(e)
		if !ok {
			*rejected++
			continue
		}
		if !sp.overlaps(b) {
			continue
		}
		if alive != nil && !alive(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func indexByKey[T Entity](in []T) map[string]T {
	m := make(map[string]T, len(in))
	for _, e := range in {
		m[e.Key()] = e
	}
	return m
}
