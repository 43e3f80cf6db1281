// Command worldview-demo renders a generated world of wandering players,
// trees, rocks and props through the worldview pipeline. No external assets
// are required: sprites are drawn procedurally at startup.
//
// Controls: arrow keys move the local player, space jumps, H hits the nearest
// player, K toggles the local player's death, D toggles debug output.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand/v2"

	"github.com/phanxgames/worldview"
	"github.com/phanxgames/worldview/ecs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/segmentio/ksuid"
	"github.com/yohamta/donburi"
)

const (
	worldSize   = 2400
	playerSpeed = 3.0
	showFPS     = true
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	worldPath := flag.String("world", "", "path to a JSON world file; generated when empty")
	seed := flag.Uint64("seed", 1, "world generation seed")
	npcs := flag.Int("players", 12, "number of wandering players")
	flag.Parse()

	cfg := worldview.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = worldview.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	assets := worldview.NewAssets()
	loadSprites(assets)

	if *worldPath != "" {
		src, err := loadWorld(*worldPath)
		if err != nil {
			log.Fatal(err)
		}
		game := worldview.NewGame(cfg, src, assets)
		game.ShowFPS = showFPS
		game.Pipeline.Camera().CenterOn(0, 0)
		if err := worldview.Run(game); err != nil {
			log.Fatal(err)
		}
		return
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	world := donburi.NewWorld()
	local := ksuid.New().String()
	populate(world, rng, local, *npcs)

	src := ecs.NewSource(world)
	game := worldview.NewGame(cfg, src, assets)
	game.LocalPlayer = local
	game.ShowFPS = showFPS
	game.Pipeline.Camera().CenterOn(worldSize/2, worldSize/2)

	sim := &simulation{world: world, src: src, rng: rng, local: local, game: game, assets: assets, debug: cfg.Debug}
	game.SetUpdateFunc(sim.update)

	if err := worldview.Run(game); err != nil {
		log.Fatal(err)
	}
}

// populate fills world with the local player, wandering players and props.
func populate(world donburi.World, rng *rand.Rand, local string, npcs int) {
	pos := func() worldview.Vec2 {
		return worldview.Vec2{X: rng.Float64() * worldSize, Y: rng.Float64() * worldSize}
	}
	items := []string{"", "axe", "pickaxe", "torch"}

	ecs.SpawnPlayer(world, worldview.Player{
		Identity:     local,
		Username:     "you",
		Position:     worldview.Vec2{X: worldSize / 2, Y: worldSize / 2},
		Health:       100,
		EquippedItem: "axe",
	})
	for i := range npcs {
		ecs.SpawnPlayer(world, worldview.Player{
			Identity:     ksuid.New().String(),
			Username:     "wanderer" + string(rune('A'+i%26)),
			Position:     pos(),
			Direction:    worldview.Direction(rng.IntN(4)),
			Health:       100,
			EquippedItem: items[rng.IntN(len(items))],
		})
	}

	treeTypes := []string{"", "oak", "pine"}
	var id uint64
	next := func() uint64 { id++; return id }
	for range 220 {
		ecs.SpawnTree(world, worldview.Tree{ID: next(), Position: pos(), Health: 100, TreeType: treeTypes[rng.IntN(len(treeTypes))]})
	}
	for range 120 {
		ecs.SpawnStone(world, worldview.Stone{ID: next(), Position: pos(), Health: 60})
	}
	for range 30 {
		ecs.SpawnCampfire(world, worldview.Campfire{ID: next(), Position: pos(), IsBurning: rng.IntN(3) > 0})
	}
	for range 160 {
		ecs.SpawnMushroom(world, worldview.Mushroom{ID: next(), Position: pos()})
	}
	for range 60 {
		ecs.SpawnDroppedItem(world, worldview.DroppedItem{ID: next(), Position: pos(), ItemDef: items[1+rng.IntN(len(items)-1)], Quantity: uint32(1 + rng.IntN(5))})
	}
	for range 20 {
		ecs.SpawnStorageBox(world, worldview.StorageBox{ID: next(), Position: pos(), PlacedBy: local})
	}
}

// simulation moves players around the world between frames.
type simulation struct {
	world   donburi.World
	src     *ecs.Source
	rng     *rand.Rand
	local   string
	game    *worldview.Game
	assets  *worldview.Assets
	debug   bool
	targets map[string]worldview.Vec2
}

func (s *simulation) update() error {
	now := s.game.Clock()
	if s.targets == nil {
		s.targets = make(map[string]worldview.Vec2)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.debug = !s.debug
		s.game.Pipeline.SetDebugMode(s.debug)
		s.assets.SetDebug(s.debug)
	}

	if entry := s.src.FindPlayer(s.local); entry != nil {
		p := ecs.Player.Get(entry)
		s.steer(p)
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !p.IsDead {
			ecs.JumpEventType.Publish(s.world, ecs.JumpEvent{Identity: s.local, At: now})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyK) {
			p.IsDead = !p.IsDead
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyH) {
			if target := s.nearest(p.Position); target != "" {
				ecs.HitEventType.Publish(s.world, ecs.HitEvent{Identity: target, At: now})
			}
		}
	}

	ecs.Player.Each(s.world, func(entry *donburi.Entry) {
		p := ecs.Player.Get(entry)
		if p.Identity == s.local || p.IsDead {
			return
		}
		s.wander(p)
	})
	return nil
}

// steer applies arrow-key movement to the local player.
func (s *simulation) steer(p *worldview.Player) {
	if p.IsDead {
		return
	}
	var dx, dy float64
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		dx, p.Direction = -playerSpeed, worldview.DirectionLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		dx, p.Direction = playerSpeed, worldview.DirectionRight
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		dy, p.Direction = -playerSpeed, worldview.DirectionUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		dy, p.Direction = playerSpeed, worldview.DirectionDown
	}
	p.Position.X += dx
	p.Position.Y += dy
}

// wander walks p toward a random target, picking a new one on arrival.
// Movement is axis-aligned so the facing always matches a sprite row.
func (s *simulation) wander(p *worldview.Player) {
	t, ok := s.targets[p.Identity]
	if !ok || (math.Abs(t.X-p.Position.X) < playerSpeed && math.Abs(t.Y-p.Position.Y) < playerSpeed) {
		if ok && s.rng.IntN(90) != 0 {
			return // idle a while before picking a new target
		}
		s.targets[p.Identity] = worldview.Vec2{
			X: p.Position.X + (s.rng.Float64()*2-1)*300,
			Y: p.Position.Y + (s.rng.Float64()*2-1)*300,
		}
		return
	}
	switch {
	case math.Abs(t.X-p.Position.X) >= playerSpeed:
		if t.X < p.Position.X {
			p.Position.X -= playerSpeed
			p.Direction = worldview.DirectionLeft
		} else {
			p.Position.X += playerSpeed
			p.Direction = worldview.DirectionRight
		}
	default:
		if t.Y < p.Position.Y {
			p.Position.Y -= playerSpeed
			p.Direction = worldview.DirectionUp
		} else {
			p.Position.Y += playerSpeed
			p.Direction = worldview.DirectionDown
		}
	}
}

// nearest returns the identity of the closest other living player.
func (s *simulation) nearest(from worldview.Vec2) string {
	best, bestDist := "", 0.0
	ecs.Player.Each(s.world, func(entry *donburi.Entry) {
		p := ecs.Player.Get(entry)
		if p.Identity == s.local || p.IsDead {
			return
		}
		dx, dy := p.Position.X-from.X, p.Position.Y-from.Y
		d := dx*dx + dy*dy
		if best == "" || d < bestDist {
			best, bestDist = p.Identity, d
		}
	})
	return best
}
