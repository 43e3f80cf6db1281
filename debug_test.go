package worldview

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

// captureLog runs fn with the standard logger redirected and returns its output.
func captureLog(fn func()) string {
	var buf bytes.Buffer
	old := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(old)
	fn()
	return buf.String()
}

func TestDebugMode_StatsPrinted(t *testing.T) {
	p := newTestPipeline(800, 600)
	p.SetDebugMode(true)
	snap := Snapshot{
		Players: []*Player{{Identity: "a", Position: Vec2{X: 10, Y: 10}}},
		Trees:   []*Tree{{ID: 1, Position: Vec2{X: 100, Y: 100}, Health: 1}},
	}

	output := captureStderr(t, func() {
		p.Frame(&snap, 0, 0)
	})

	if !strings.Contains(output, "[worldview] filter:") {
		t.Errorf("expected timing line in stderr, got: %q", output)
	}
	if !strings.Contains(output, "standing: 2") || !strings.Contains(output, "tracked players: 1") {
		t.Errorf("expected counts in stderr, got: %q", output)
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	p := newTestPipeline(800, 600)
	snap := Snapshot{Stones: []*Stone{nil}}

	var logged string
	output := captureStderr(t, func() {
		logged = captureLog(func() {
			p.Frame(&snap, 0, 0)
		})
	})

	if output != "" || logged != "" {
		t.Errorf("expected no output without debug mode, got stderr %q log %q", output, logged)
	}
}

func TestDebugMode_RejectedLogged(t *testing.T) {
	p := newTestPipeline(800, 600)
	p.SetDebugMode(true)
	snap := Snapshot{Stones: []*Stone{nil}, Trees: []*Tree{nil}}

	var logged string
	captureStderr(t, func() {
		logged = captureLog(func() {
			p.Frame(&snap, 0, 0)
		})
	})

	if !strings.Contains(logged, "worldview: 2 entities could not be classified") {
		t.Errorf("expected rejected diagnostic, got: %q", logged)
	}
}

func TestDebugMode_MissingAssetLoggedOnce(t *testing.T) {
	a := NewAssets()
	a.SetDebug(true)

	logged := captureLog(func() {
		a.Image("ghost")
		a.Image("ghost")
	})

	if strings.Count(logged, `asset "ghost" not found`) != 1 {
		t.Errorf("expected one missing-asset line, got: %q", logged)
	}
}

func TestDebugStats_AllFieldsPrinted(t *testing.T) {
	p := &Pipeline{debug: true}
	stats := frameStats{
		filterTime:  100,
		composeTime: 50,
		animateTime: 25,
		total:       40,
		ground:      3,
		standing:    7,
		rejected:    1,
		tracked:     2,
	}

	output := captureStderr(t, func() {
		p.debugLog(stats)
	})

	for _, want := range []string{"entities: 40", "ground: 3", "standing: 7", "rejected: 1", "tracked players: 2", "total: 175ns"} {
		if !strings.Contains(output, want) {
			t.Errorf("stats output missing %q: %q", want, output)
		}
	}
}
