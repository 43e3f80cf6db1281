package worldview

import "testing"

func TestComposeGroundOrder(t *testing.T) {
	r := VisibilityResult{
		Campfires:    []*Campfire{{ID: 1, Position: Vec2{Y: 0}}},
		Mushrooms:    []*Mushroom{{ID: 2, Position: Vec2{Y: 500}}, {ID: 3, Position: Vec2{Y: 100}}},
		DroppedItems: []*DroppedItem{{ID: 4, Position: Vec2{Y: 50}}},
	}
	var c Composer
	ground, standing := c.Compose(&r)
	if len(standing) != 0 {
		t.Fatalf("standing = %d items, want 0", len(standing))
	}
	want := []string{"2", "3", "4", "1"}
	if len(ground) != len(want) {
		t.Fatalf("ground = %d items, want %d", len(ground), len(want))
	}
	for i, it := range ground {
		if it.Entity.Key() != want[i] {
			t.Errorf("ground[%d] = %s, want %s (ground is not Y-sorted)", i, it.Entity.Key(), want[i])
		}
	}
	if ground[0].Kind != KindMushroom || ground[2].Kind != KindDroppedItem || ground[3].Kind != KindCampfire {
		t.Error("ground kinds out of order")
	}
}

func TestComposeStandingSorted(t *testing.T) {
	r := VisibilityResult{
		Players:      []*Player{{Identity: "p", Position: Vec2{Y: 300}}},
		Trees:        []*Tree{{ID: 1, Position: Vec2{Y: 100}}},
		Stones:       []*Stone{{ID: 2, Position: Vec2{Y: 200}}},
		StorageBoxes: []*StorageBox{{ID: 3, Position: Vec2{Y: -50}}},
	}
	var c Composer
	_, standing := c.Compose(&r)
	want := []string{"3", "1", "2", "p"}
	for i, it := range standing {
		if it.Entity.Key() != want[i] {
			t.Errorf("standing[%d] = %s, want %s", i, it.Entity.Key(), want[i])
		}
	}
	for i := 1; i < len(standing); i++ {
		if standing[i-1].Y > standing[i].Y {
			t.Errorf("standing not ascending at %d: %v > %v", i, standing[i-1].Y, standing[i].Y)
		}
	}
}

func TestComposeStableTies(t *testing.T) {
	// A player and a tree at the same Y: the player comes first in the
	// concatenation and must stay first.
	a := &Player{Identity: "A", Position: Vec2{X: 10, Y: 100}}
	b := &Tree{ID: 7, Position: Vec2{X: 90, Y: 100}}
	r := VisibilityResult{Players: []*Player{a}, Trees: []*Tree{b}}

	var c Composer
	_, standing := c.Compose(&r)
	if len(standing) != 2 || standing[0].Entity != a || standing[1].Entity != b {
		t.Errorf("standing = %+v, want [A, B]", standing)
	}
}

func TestComposeStableManyTies(t *testing.T) {
	var r VisibilityResult
	for i := range 37 {
		r.Stones = append(r.Stones, &Stone{ID: uint64(i), Position: Vec2{Y: float64(i % 3)}})
	}
	var c Composer
	_, standing := c.Compose(&r)
	for i := 1; i < len(standing); i++ {
		p, q := standing[i-1], standing[i]
		if p.Y > q.Y || (p.Y == q.Y && p.order > q.order) {
			t.Fatalf("unstable at %d: %+v then %+v", i, p, q)
		}
	}
}

func TestComposeReusesBuffers(t *testing.T) {
	var r VisibilityResult
	for i := range 100 {
		r.Trees = append(r.Trees, &Tree{ID: uint64(i), Position: Vec2{Y: float64(100 - i)}})
		r.Mushrooms = append(r.Mushrooms, &Mushroom{ID: uint64(i)})
	}
	var c Composer
	c.Compose(&r) // warm up

	allocs := testing.AllocsPerRun(100, func() {
		c.Compose(&r)
	})
	if allocs > 0 {
		t.Errorf("Compose allocated %v times per run, want 0", allocs)
	}
}

func TestComposeDeterministic(t *testing.T) {
	r := VisibilityResult{
		Players: []*Player{{Identity: "x", Position: Vec2{Y: 5}}, {Identity: "y", Position: Vec2{Y: 5}}},
		Stones:  []*Stone{{ID: 1, Position: Vec2{Y: 5}}},
	}
	var c1, c2 Composer
	_, s1 := c1.Compose(&r)
	keys1 := make([]string, len(s1))
	for i := range s1 {
		keys1[i] = s1[i].Entity.Key()
	}
	_, s2 := c2.Compose(&r)
	for i := range s2 {
		if s2[i].Entity.Key() != keys1[i] {
			t.Fatalf("run 2 differs at %d: %s vs %s", i, s2[i].Entity.Key(), keys1[i])
		}
	}
}
