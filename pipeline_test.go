package worldview

import (
	"math/rand/v2"
	"testing"
)

func newTestPipeline(w, h float64) *Pipeline {
	cfg := DefaultConfig()
	return NewPipeline(cfg, NewCamera(w, h, cfg.TileSize), rand.New(rand.NewPCG(7, 8)))
}

func TestPipelineSkipsUnreadyCanvas(t *testing.T) {
	p := newTestPipeline(0, 0)
	snap := Snapshot{Players: []*Player{{Identity: "a", Position: Vec2{X: 10, Y: 10}}}}
	if _, ok := p.Frame(&snap, 0, 0); ok {
		t.Fatal("Frame ran with an unready canvas")
	}
	if p.Animator().Tracked() != 0 {
		t.Error("skipped frame recorded player positions")
	}
}

func TestPipelineFrame(t *testing.T) {
	p := newTestPipeline(800, 600)
	respawn := int64(1)
	snap := Snapshot{
		Players: []*Player{
			{Identity: "low", Position: Vec2{X: 100, Y: 400}},
			{Identity: "high", Position: Vec2{X: 200, Y: 100}},
			{Identity: "away", Position: Vec2{X: 9000, Y: 100}},
		},
		Trees:     []*Tree{{ID: 1, Position: Vec2{X: 300, Y: 250}, Health: 10}},
		Mushrooms: []*Mushroom{{ID: 2, Position: Vec2{X: 50, Y: 50}}, {ID: 3, Position: Vec2{X: 60, Y: 60}, RespawnAt: &respawn}},
		Campfires: []*Campfire{{ID: 4, Position: Vec2{X: 70, Y: 700}}},
	}

	res, ok := p.Frame(&snap, 1000, 0)
	if !ok {
		t.Fatal("Frame skipped with a ready canvas")
	}
	if res.Bounds != (ViewportBounds{MinX: -64, MaxX: 864, MinY: -64, MaxY: 664}) {
		t.Errorf("Bounds = %+v", res.Bounds)
	}

	var standing []string
	for _, it := range res.Standing {
		standing = append(standing, it.Entity.Key())
	}
	want := []string{"high", "1", "low"}
	if len(standing) != len(want) {
		t.Fatalf("standing = %v, want %v", standing, want)
	}
	for i := range want {
		if standing[i] != want[i] {
			t.Fatalf("standing = %v, want %v", standing, want)
		}
	}

	// Campfire at y=700: top edge 668 is past MaxY 664.
	if len(res.Ground) != 1 || res.Ground[0].Entity.Key() != "2" {
		t.Errorf("ground = %+v, want only mushroom 2", res.Ground)
	}

	if len(res.Players) != 2 {
		t.Errorf("animated %d players, want 2", len(res.Players))
	}
	if _, ok := res.Players["away"]; ok {
		t.Error("culled player was animated")
	}
}

func TestPipelineMovementAcrossFrames(t *testing.T) {
	p := newTestPipeline(800, 600)
	pl := &Player{Identity: "walker", Position: Vec2{X: 100, Y: 100}}
	snap := Snapshot{Players: []*Player{pl}}

	res, _ := p.Frame(&snap, 0, 3)
	if res.Players["walker"].Moving {
		t.Error("moving on first frame")
	}

	snap.Players = []*Player{{Identity: "walker", Position: Vec2{X: 104, Y: 100}}}
	res, _ = p.Frame(&snap, 16, 3)
	v := res.Players["walker"]
	if !v.Moving || v.Frame != 3 {
		t.Errorf("second frame: Moving=%v Frame=%d, want true 3", v.Moving, v.Frame)
	}

	res, _ = p.Frame(&snap, 32, 0)
	if res.Players["walker"].Moving {
		t.Error("still moving after standing still")
	}
}

func TestPipelineForgetsCulledPlayers(t *testing.T) {
	p := newTestPipeline(800, 600)
	snap := Snapshot{Players: []*Player{{Identity: "a", Position: Vec2{X: 100, Y: 100}}}}
	p.Frame(&snap, 0, 0)
	if p.Animator().Tracked() != 1 {
		t.Fatalf("Tracked = %d, want 1", p.Animator().Tracked())
	}

	snap.Players[0] = &Player{Identity: "a", Position: Vec2{X: 5000, Y: 100}}
	p.Frame(&snap, 16, 0)
	if p.Animator().Tracked() != 0 {
		t.Errorf("Tracked = %d after player left view, want 0", p.Animator().Tracked())
	}
}

func TestPipelineDebugMode(t *testing.T) {
	p := newTestPipeline(800, 600)
	p.SetDebugMode(true)
	snap := Snapshot{Stones: []*Stone{nil, {ID: 1, Position: Vec2{X: 10, Y: 10}, Health: 1}}}
	res, ok := p.Frame(&snap, 0, 0)
	if !ok {
		t.Fatal("Frame skipped")
	}
	if res.Visible.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", res.Visible.Rejected)
	}
}
