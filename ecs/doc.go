// Package ecs provides a [Donburi] backed entity source for worldview.
//
// Each entity kind is a Donburi component holding the worldview struct by
// value. [NewSource] returns a [worldview.SnapshotSource] that copies every
// entity out of the world once per frame. Gameplay systems report hits and
// jumps by publishing [HitEvent] and [JumpEvent]; the source stamps the
// matching player's timestamps before it takes the next snapshot.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.SpawnPlayer(world, worldview.Player{Identity: "p1"})
//	game := worldview.NewGame(cfg, ecs.NewSource(world), assets)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
