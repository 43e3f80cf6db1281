package worldview

import "testing"

func TestItemDrawOrder(t *testing.T) {
	tests := []struct {
		dir  Direction
		want ItemOrder
	}{
		{DirectionUp, ItemBehind},
		{DirectionLeft, ItemBehind},
		{DirectionRight, ItemInFront},
		{DirectionDown, ItemInFront},
		{Direction(42), ItemInFront},
	}
	for _, tt := range tests {
		if got := ItemDrawOrder(tt.dir); got != tt.want {
			t.Errorf("ItemDrawOrder(%v) = %d, want %d", tt.dir, got, tt.want)
		}
	}
}

func TestSpriteRow(t *testing.T) {
	if SpriteRow(DirectionUp) != RowUp || SpriteRow(DirectionLeft) != RowLeft ||
		SpriteRow(DirectionRight) != RowRight || SpriteRow(DirectionDown) != RowDown {
		t.Error("SpriteRow mapping wrong")
	}
	if SpriteRow(Direction(7)) != RowDown {
		t.Error("unknown direction should use the down row")
	}
}
