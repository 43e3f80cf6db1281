package worldview

import (
	"log"
	"math/rand/v2"
	"time"
)

// FrameResult is everything the draw pass needs for one frame. Its slices and
// maps are owned by the Pipeline and stay valid until the next call to Frame.
type FrameResult struct {
	Bounds  ViewportBounds
	Visible VisibilityResult
	// Ground is drawn first, in order.
	Ground []DrawItem
	// Standing is drawn after Ground, sorted by ascending Y.
	Standing []DrawItem
	// Players holds the visual state of every player in Standing, by identity.
	Players map[string]PlayerVisual
}

// Pipeline runs cull, filter, compose and animate for one frame at a time.
// It is not safe for concurrent use; drive it from the game loop.
type Pipeline struct {
	cfg      Config
	camera   *Camera
	animator *Animator
	composer Composer
	players  map[string]PlayerVisual
	debug    bool
}

// NewPipeline creates a pipeline drawing through cam. A nil rng seeds the
// shake jitter from the clock.
func NewPipeline(cfg Config, cam *Camera, rng *rand.Rand) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		camera:   cam,
		animator: NewAnimator(cfg.Animation, rng),
		players:  make(map[string]PlayerVisual),
		debug:    cfg.Debug,
	}
}

// Camera returns the pipeline's camera.
func (p *Pipeline) Camera() *Camera {
	return p.camera
}

// Animator returns the pipeline's animator.
func (p *Pipeline) Animator() *Animator {
	return p.animator
}

// SetDebugMode enables or disables per-frame diagnostics and timing stats on
// stderr.
func (p *Pipeline) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// Frame processes one snapshot at time now (milliseconds). walkFrame is the
// shared walk-cycle frame. It reports false, and changes no state, when the
// camera's canvas is not ready.
func (p *Pipeline) Frame(snap *Snapshot, now int64, walkFrame int) (FrameResult, bool) {
	if !p.camera.Ready() {
		return FrameResult{}, false
	}

	var stats frameStats
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	bounds := p.camera.Bounds()
	visible := FilterVisible(snap, bounds)

	if p.debug {
		stats.filterTime = time.Since(t0)
		t0 = time.Now()
	}

	ground, standing := p.composer.Compose(&visible)

	if p.debug {
		stats.composeTime = time.Since(t0)
		t0 = time.Now()
	}

	clear(p.players)
	p.animator.BeginFrame()
	for i := range standing {
		pl, ok := standing[i].Entity.(*Player)
		if !ok {
			continue
		}
		p.players[pl.Identity] = p.animator.Animate(pl, now, walkFrame)
	}
	p.animator.EndFrame()

	if p.debug {
		stats.animateTime = time.Since(t0)
		stats.total = snap.Len()
		stats.ground = len(ground)
		stats.standing = len(standing)
		stats.rejected = visible.Rejected
		stats.tracked = p.animator.Tracked()
		p.debugLog(stats)
		if visible.Rejected > 0 {
			log.Printf("worldview: %d entities could not be classified and were skipped", visible.Rejected)
		}
	}

	return FrameResult{
		Bounds:   bounds,
		Visible:  visible,
		Ground:   ground,
		Standing: standing,
		Players:  p.players,
	}, true
}
