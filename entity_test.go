package worldview

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		e     Entity
		kind  Kind
		w, h  float64
		x, y  float64
		valid bool
	}{
		{"player", &Player{Identity: "a", Position: Vec2{X: 1, Y: 2}}, KindPlayer, 64, 64, 1, 2, true},
		{"tree", &Tree{ID: 1, Position: Vec2{X: 3, Y: 4}}, KindTree, 96, 128, 3, 4, true},
		{"stone", &Stone{ID: 1}, KindStone, 64, 64, 0, 0, true},
		{"campfire", &Campfire{ID: 1}, KindCampfire, 64, 64, 0, 0, true},
		{"mushroom", &Mushroom{ID: 1}, KindMushroom, 32, 32, 0, 0, true},
		{"dropped item", &DroppedItem{ID: 1}, KindDroppedItem, 32, 32, 0, 0, true},
		{"storage box", &StorageBox{ID: 1}, KindStorageBox, 64, 64, 0, 0, true},
		{"nil interface", nil, KindUnknown, 0, 0, 0, 0, false},
		{"nil pointer", (*Tree)(nil), KindUnknown, 0, 0, 0, 0, false},
		{"infinite y", &Player{Position: Vec2{Y: math.Inf(1)}}, KindUnknown, 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, ok := Classify(tt.e)
			if ok != tt.valid {
				t.Fatalf("Classify ok = %v, want %v", ok, tt.valid)
			}
			if !ok {
				return
			}
			if sp.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", sp.Kind, tt.kind)
			}
			if sp.Width != tt.w || sp.Height != tt.h {
				t.Errorf("footprint = %vx%v, want %vx%v", sp.Width, sp.Height, tt.w, tt.h)
			}
			if sp.X != tt.x || sp.Y != tt.y {
				t.Errorf("position = (%v,%v), want (%v,%v)", sp.X, sp.Y, tt.x, tt.y)
			}
		})
	}
}

func TestFootprintUnknown(t *testing.T) {
	if w, h := Footprint(KindUnknown); w != 0 || h != 0 {
		t.Errorf("Footprint(KindUnknown) = %vx%v, want 0x0", w, h)
	}
}

func TestKeys(t *testing.T) {
	if got := (&Player{Identity: "abc"}).Key(); got != "abc" {
		t.Errorf("Player.Key = %q", got)
	}
	if got := (&Mushroom{ID: 42}).Key(); got != "42" {
		t.Errorf("Mushroom.Key = %q", got)
	}
	if got := (&StorageBox{ID: 1 << 60}).Key(); got != "1152921504606846976" {
		t.Errorf("StorageBox.Key = %q", got)
	}
}

func TestKindString(t *testing.T) {
	if KindDroppedItem.String() != "dropped_item" {
		t.Errorf("KindDroppedItem.String() = %q", KindDroppedItem.String())
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("Kind(200).String() = %q", Kind(200).String())
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up":       DirectionUp,
		"right":    DirectionRight,
		"left":     DirectionLeft,
		"down":     DirectionDown,
		"":         DirectionDown,
		"sideways": DirectionDown,
	}
	for in, want := range tests {
		if got := ParseDirection(in); got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSnapshotLen(t *testing.T) {
	s := Snapshot{
		Players: []*Player{{}, {}},
		Trees:   []*Tree{{}},
		Stones:  []*Stone{{}},
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}
