// Package worldview turns per-frame snapshots of a top-down multiplayer world
// into ordered draw commands for [Ebitengine].
//
// A frame runs in four passes over a [Snapshot]:
//
//   - cull: [Camera.Bounds] gives the visible world rectangle, grown by two
//     tiles on every side, and [InView] keeps entities whose footprint
//     strictly overlaps it.
//   - filter: [FilterVisible] also drops dead trees and stones and mushrooms
//     waiting to respawn.
//   - compose: [Composer] splits what is left into a ground group drawn first
//     (mushrooms, dropped items, campfires) and a standing group (players,
//     trees, stones, storage boxes) stably sorted by Y.
//   - animate: [Animator] derives each visible player's sprite row, walk
//     frame, hit shake, jump lift and death rotation, and [ItemDrawOrder]
//     places the held item behind or in front of the body.
//
// [Pipeline.Frame] runs all four and returns a [FrameResult]. A [Renderer]
// turns that into [DrawCommand] values and submits them to an ebiten image.
//
// # Quick start
//
// [Game] wires everything to [ebiten.Game]:
//
//	cfg := worldview.DefaultConfig()
//	assets := worldview.NewAssets()
//	assets.Add(worldview.AssetPlayerSheet, sheet)
//	game := worldview.NewGame(cfg, source, assets)
//	game.LocalPlayer = myIdentity
//	worldview.Run(game)
//
// For full control, drive the pipeline yourself:
//
//	res, ok := pipeline.Frame(&snap, nowMs, frames.Frame())
//	if ok {
//		renderer.Build(&res, pipeline.Camera(), cursor)
//		renderer.Submit(screen)
//	}
//
// # Sources
//
// Anything with a Snapshot method is a [SnapshotSource]. The worldview/ecs
// package provides one over a [Donburi] world. Loosely typed records, such as
// rows decoded from a database subscription, can be turned into entities with
// [Decode] and [DecodeSnapshot].
//
// # Configuration
//
// [Config] is read from TOML with [LoadConfig]; absent keys keep the values
// from [DefaultConfig].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package worldview
