package worldview

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// AnimationConfig tunes the per-player animation rules. Durations are in
// milliseconds.
type AnimationConfig struct {
	// MovementThreshold is the per-axis position delta above which a player
	// counts as moving.
	MovementThreshold float64 `toml:"movement_threshold"`
	ShakeDurationMs   int64   `toml:"shake_duration_ms"`
	ShakeIntensity    float64 `toml:"shake_intensity"`
	JumpDurationMs    int64   `toml:"jump_duration_ms"`
	JumpHeight        float64 `toml:"jump_height"`
	// IdleFrame is the sprite-sheet column used while standing still.
	IdleFrame int `toml:"idle_frame"`
	// WalkFrames is the number of columns in the walk cycle.
	WalkFrames int `toml:"walk_frames"`
	// TicksPerFrame is how many updates each walk frame is held for.
	TicksPerFrame int `toml:"ticks_per_frame"`
}

// WindowConfig describes the demo window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Config is the full pipeline configuration.
type Config struct {
	TileSize  float64         `toml:"tile_size"`
	Debug     bool            `toml:"debug"`
	Animation AnimationConfig `toml:"animation"`
	Window    WindowConfig    `toml:"window"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		TileSize: 32,
		Animation: AnimationConfig{
			MovementThreshold: 0.1,
			ShakeDurationMs:   200,
			ShakeIntensity:    3,
			JumpDurationMs:    400,
			JumpHeight:        50,
			IdleFrame:         1,
			WalkFrames:        4,
			TicksPerFrame:     8,
		},
		Window: WindowConfig{
			Title:  "worldview",
			Width:  800,
			Height: 600,
		},
	}
}

// ParseConfig decodes TOML data on top of DefaultConfig, so absent keys keep
// their default value.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("worldview: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("worldview: failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first setting that cannot drive a frame.
func (c *Config) Validate() error {
	a := &c.Animation
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("worldview: tile_size must be positive, got %v", c.TileSize)
	case a.MovementThreshold < 0:
		return fmt.Errorf("worldview: animation.movement_threshold must not be negative, got %v", a.MovementThreshold)
	case a.ShakeDurationMs < 0 || a.JumpDurationMs < 0:
		return fmt.Errorf("worldview: animation durations must not be negative")
	case a.IdleFrame < 0:
		return fmt.Errorf("worldview: animation.idle_frame must not be negative, got %d", a.IdleFrame)
	case a.WalkFrames <= 0:
		return fmt.Errorf("worldview: animation.walk_frames must be positive, got %d", a.WalkFrames)
	case a.TicksPerFrame <= 0:
		return fmt.Errorf("worldview: animation.ticks_per_frame must be positive, got %d", a.TicksPerFrame)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("worldview: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// FrameCounter cycles the shared walk-cycle frame index. Advance it once per
// update tick.
type FrameCounter struct {
	frames        int
	ticksPerFrame int
	tick          int
}

// NewFrameCounter creates a counter over frames columns, holding each for
// ticksPerFrame ticks.
func NewFrameCounter(frames, ticksPerFrame int) *FrameCounter {
	return &FrameCounter{frames: max(frames, 1), ticksPerFrame: max(ticksPerFrame, 1)}
}

// Tick advances the counter by one update.
func (f *FrameCounter) Tick() {
	f.tick = (f.tick + 1) % (f.frames * f.ticksPerFrame)
}

// Frame returns the current walk-cycle frame index.
func (f *FrameCounter) Frame() int {
	return f.tick / f.ticksPerFrame
}
