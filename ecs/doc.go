// Package ecs provides ECS adapters for grove's collision events.
//
// The primary adapter is [NewDonburiSink], which publishes the collisions a
// [grove.Scene] finds during Update into a [Donburi] world as typed events.
// Subscribe to [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
