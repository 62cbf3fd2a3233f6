// Package ecs provides ECS adapters for prism's component events.
//
// The primary adapter is [NewBridge], which publishes prism gesture, voice,
// and face events into a [Donburi] world as typed events. Subscribe to
// [GestureEventType], [VoiceEventType], or [FaceEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	bridge := ecs.NewBridge(world)
//	bridge.AttachGestures(gestures)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
