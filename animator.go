package worldview

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
)

// Sprite sheet rows, one per facing.
const (
	RowUp    = 0
	RowRight = 1
	RowDown  = 2
	RowLeft  = 3
)

// SpriteRow returns the sprite-sheet row for a facing. Unrecognized values
// use the down row.
func SpriteRow(d Direction) int {
	switch d {
	case DirectionUp:
		return RowUp
	case DirectionRight:
		return RowRight
	case DirectionLeft:
		return RowLeft
	default:
		return RowDown
	}
}

// PlayerVisual is the transient visual state of one player for one frame.
type PlayerVisual struct {
	Player *Player
	Moving bool
	Row    int
	Frame  int
	// Shake is a pixel offset applied to the body while the hit reaction runs.
	Shake Vec2
	// Lift is how many pixels above the ground the body is drawn mid-jump.
	Lift float64
	// Rotation is in radians; non-zero only for dead players.
	Rotation float64
	// ShowShadow and ShowNameTag are false for dead players.
	ShowShadow  bool
	ShowNameTag bool
	// ItemOrder is where the equipped item draws relative to the body.
	ItemOrder ItemOrder
}

type lastPosition struct {
	pos   Vec2
	frame uint64
}

// Animator derives per-player visual state from time and position deltas. It
// owns the only state carried across frames: the last position seen for each
// player id.
type Animator struct {
	cfg     AnimationConfig
	rng     *rand.Rand
	last    map[string]lastPosition
	frame   uint64
	inFrame bool
}

// NewAnimator creates an Animator. A nil rng seeds one from the clock.
func NewAnimator(cfg AnimationConfig, rng *rand.Rand) *Animator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	return &Animator{
		cfg:  cfg,
		rng:  rng,
		last: make(map[string]lastPosition),
	}
}

// BeginFrame starts a new frame. Positions recorded in the previous frame
// are the ones movement is measured against.
func (a *Animator) BeginFrame() {
	a.frame++
	a.inFrame = true
}

// EndFrame drops the last-position entries of players that were not animated
// during this frame.
func (a *Animator) EndFrame() {
	for id, lp := range a.last {
		if lp.frame != a.frame {
			delete(a.last, id)
		}
	}
	a.inFrame = false
}

// Tracked returns the number of players with a stored last position.
func (a *Animator) Tracked() int {
	return len(a.last)
}

// Animate computes the visual state of p at time now (milliseconds).
// walkFrame is the shared walk-cycle frame index used while moving. A call
// outside BeginFrame/EndFrame is treated as a frame of its own.
func (a *Animator) Animate(p *Player, now int64, walkFrame int) PlayerVisual {
	if !a.inFrame {
		a.BeginFrame()
		defer a.EndFrame()
	}

	v := PlayerVisual{
		Player:    p,
		Moving:    a.moved(p.Identity, p.Position),
		Row:       SpriteRow(p.Direction),
		ItemOrder: ItemDrawOrder(p.Direction),
	}
	if v.Moving {
		v.Frame = walkFrame
	} else {
		v.Frame = a.cfg.IdleFrame
	}

	if p.IsDead {
		v.Rotation = DeadRotation(p.Direction)
		return v
	}
	v.ShowShadow = true
	v.ShowNameTag = true
	v.Shake = ShakeOffset(now, p.LastHitTime, a.cfg.ShakeDurationMs, a.cfg.ShakeIntensity, a.rng)
	v.Lift = JumpOffset(now, p.JumpStartTime, a.cfg.JumpDurationMs, a.cfg.JumpHeight)
	return v
}

// moved compares pos with the position stored for id in the previous frame
// and then stores pos. A player with no entry from the previous frame is not
// moving.
func (a *Animator) moved(id string, pos Vec2) bool {
	prev, ok := a.last[id]
	moving := ok && prev.frame == a.frame-1 &&
		(math.Abs(pos.X-prev.pos.X) > a.cfg.MovementThreshold ||
			math.Abs(pos.Y-prev.pos.Y) > a.cfg.MovementThreshold)
	a.last[id] = lastPosition{pos: pos, frame: a.frame}
	return moving
}

// ShakeOffset returns the hit-reaction jitter for a player last hit at
// lastHit (milliseconds, 0 = never). Inside the window each call draws a new
// independent offset; outside it, or for a hit in the future, the offset is
// zero.
func ShakeOffset(now, lastHit, windowMs int64, intensity float64, rng *rand.Rand) Vec2 {
	if lastHit == 0 {
		return Vec2{}
	}
	elapsed := now - lastHit
	if elapsed < 0 || elapsed >= windowMs {
		return Vec2{}
	}
	return Vec2{
		X: (rng.Float64()*2 - 1) * intensity,
		Y: (rng.Float64()*2 - 1) * intensity,
	}
}

// JumpOffset returns how high above the ground a player is drawn at now for a
// jump started at jumpStart (milliseconds, 0 = not jumping). The arc is a
// parabola that is zero at both ends of the duration and peaks at height at
// the midpoint. It depends only on its arguments.
func JumpOffset(now, jumpStart, durationMs int64, height float64) float64 {
	if jumpStart == 0 || durationMs <= 0 {
		return 0
	}
	elapsed := now - jumpStart
	if elapsed < 0 || elapsed >= durationMs {
		return 0
	}
	// The rising half is OutQuad toward the peak; the falling half mirrors it.
	half := float32(durationMs) / 2
	t := float32(elapsed)
	if t > half {
		t = float32(durationMs) - t
	}
	return float64(ease.OutQuad(t, 0, float32(height), half))
}

// DeadRotation is the body rotation of a dead player: a quarter turn toward
// the right for right or down facings, toward the left otherwise.
func DeadRotation(d Direction) float64 {
	switch d {
	case DirectionUp, DirectionLeft:
		return -math.Pi / 2
	default:
		return math.Pi / 2
	}
}
