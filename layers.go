package worldview

// DrawItem is one entry in a draw group.
type DrawItem struct {
	Kind   Kind
	Entity Entity
	// Y is the world coordinate the standing group is sorted by.
	Y float64
	// order is the position before sorting, used to keep the sort stable.
	order int
}

// Composer partitions visible entities into the ground and standing draw
// groups. It keeps its buffers between frames, so after warm-up composing a
// frame of the same size allocates nothing.
type Composer struct {
	ground   []DrawItem
	standing []DrawItem
	sortBuf  []DrawItem
}

// Compose builds both draw groups from r. The returned slices are owned by
// the Composer and are only valid until the next call.
//
// Ground holds mushrooms, then dropped items, then campfires, unsorted.
// Standing holds players, trees, stones and storage boxes sorted by Y,
// ascending, with ties kept in that concatenation order.
func (c *Composer) Compose(r *VisibilityResult) (ground, standing []DrawItem) {
	c.ground = c.ground[:0]
	c.ground = appendItems(c.ground, KindMushroom, r.Mushrooms)
	c.ground = appendItems(c.ground, KindDroppedItem, r.DroppedItems)
	c.ground = appendItems(c.ground, KindCampfire, r.Campfires)

	c.standing = c.standing[:0]
	c.standing = appendItems(c.standing, KindPlayer, r.Players)
	c.standing = appendItems(c.standing, KindTree, r.Trees)
	c.standing = appendItems(c.standing, KindStone, r.Stones)
	c.standing = appendItems(c.standing, KindStorageBox, r.StorageBoxes)
	for i := range c.standing {
		c.standing[i].order = i
	}
	c.mergeSort()

	return c.ground, c.standing
}

func appendItems[T Entity](dst []DrawItem, k Kind, in []T) []DrawItem {
	for _, e := range in {
		dst = append(dst, DrawItem{Kind: k, Entity: e, Y: sortY(e)})
	}
	return dst
}

// sortY returns the designated vertical coordinate of an entity.
func sortY(e Entity) float64 {
	sp, _ := Classify(e)
	return sp.Y
}

// itemLessOrEqual returns true if a should sort before or at the same
// position as b. Comparing order with <= keeps the sort stable.
func itemLessOrEqual(a, b *DrawItem) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.order <= b.order
}

// mergeSort sorts c.standing in place using c.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches its
// high-water mark.
func (c *Composer) mergeSort() {
	n := len(c.standing)
	if n <= 1 {
		return
	}
	if cap(c.sortBuf) < n {
		c.sortBuf = make([]DrawItem, n)
	}
	c.sortBuf = c.sortBuf[:n]

	a := c.standing
	b := c.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(c.standing, c.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []DrawItem, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if itemLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
