package worldview

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if cfg.TileSize != 32 || cfg.Animation.ShakeDurationMs != 200 || cfg.Animation.JumpHeight != 50 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigPartial(t *testing.T) {
	data := []byte(`
tile_size = 16
debug = true

[animation]
jump_height = 80
idle_frame = 0
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.TileSize != 16 || !cfg.Debug {
		t.Errorf("top-level = %+v", cfg)
	}
	if cfg.Animation.JumpHeight != 80 {
		t.Errorf("JumpHeight = %v, want 80", cfg.Animation.JumpHeight)
	}
	if cfg.Animation.IdleFrame != 0 {
		t.Errorf("IdleFrame = %d, want explicit 0", cfg.Animation.IdleFrame)
	}
	// Untouched keys keep their defaults.
	if cfg.Animation.JumpDurationMs != 400 || cfg.Window.Width != 800 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", "tile_size = = 3", "failed to parse config"},
		{"zero tile", "tile_size = 0", "tile_size"},
		{"negative threshold", "[animation]\nmovement_threshold = -1", "movement_threshold"},
		{"zero walk frames", "[animation]\nwalk_frames = 0", "walk_frames"},
		{"zero window", "[window]\nwidth = 0", "window size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldview.toml")
	if err := os.WriteFile(path, []byte("[window]\ntitle = \"camp\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Title != "camp" {
		t.Errorf("Title = %q, want camp", cfg.Window.Title)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadConfig missing file = %v, want not-exist", err)
	}
}

func TestFrameCounter(t *testing.T) {
	fc := NewFrameCounter(4, 2)
	var got []int
	for range 10 {
		got = append(got, fc.Frame())
		fc.Tick()
	}
	want := []int{0, 0, 1, 1, 2, 2, 3, 3, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frames = %v, want %v", got, want)
		}
	}
}

func TestFrameCounterClampsInputs(t *testing.T) {
	fc := NewFrameCounter(0, 0)
	fc.Tick()
	if fc.Frame() != 0 {
		t.Errorf("Frame = %d, want 0", fc.Frame())
	}
}
