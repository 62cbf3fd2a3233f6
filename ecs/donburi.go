// Package ecs provides ECS adapters for prism.
package ecs

import (
	"github.com/prismkit/prism"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
// Subscribe to this in your ECS systems to receive taps, drags, swipes, and
// pinches.
var GestureEventType = events.NewEventType[prism.GestureEvent]()

// VoiceEventType is the Donburi event type for matched voice commands.
var VoiceEventType = events.NewEventType[prism.VoiceEvent]()

// FaceEventType is the Donburi event type for face-tracking triggers.
var FaceEventType = events.NewEventType[prism.FaceEvent]()

// Bridge publishes prism component events into a Donburi world. Events are
// queued by Donburi; consume them with events.Subscribe and ProcessEvents.
type Bridge struct {
	world donburi.World
}

// NewBridge creates a bridge into the given world.
func NewBridge(world donburi.World) *Bridge {
	return &Bridge{world: world}
}

// AttachGestures installs the bridge as the recognizer's unified event sink,
// replacing any sink installed before.
func (b *Bridge) AttachGestures(g *prism.Gestures) {
	g.SetSink(b.PublishGesture)
}

// PublishGesture queues a gesture event on the world.
func (b *Bridge) PublishGesture(ev prism.GestureEvent) {
	GestureEventType.Publish(b.world, ev)
}

// PublishVoice queues a voice command event on the world.
func (b *Bridge) PublishVoice(ev prism.VoiceEvent) {
	VoiceEventType.Publish(b.world, ev)
}

// PublishFace queues a face trigger event on the world.
func (b *Bridge) PublishFace(ev prism.FaceEvent) {
	FaceEventType.Publish(b.world, ev)
}
