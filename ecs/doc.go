// Package ecs provides ECS adapters for sprig's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges sprig interaction
// events (press, cancel, tap) into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
// Only elements with a nonzero EntityID emit events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
