package ecs

import (
	"testing"

	"github.com/prismkit/prism"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewBridge(t *testing.T) {
	world := donburi.NewWorld()
	if NewBridge(world) == nil {
		t.Fatal("NewBridge returned nil")
	}
}

func TestBridge_AttachGestures(t *testing.T) {
	world := donburi.NewWorld()
	bridge := NewBridge(world)

	var received []prism.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e prism.GestureEvent) {
		received = append(received, e)
	})

	g := prism.NewGestures(prism.GestureConfig{})
	bridge.AttachGestures(g)

	// Recognize a tap.
	g.Press(0, 100, 200)
	g.Tick(0.05)
	g.Release(0, 100, 200)

	// Events are queued — process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	e := received[0]
	if e.Kind != prism.GestureTap {
		t.Errorf("event kind: %v", e.Kind)
	}
	if e.X != 100 || e.Y != 200 {
		t.Errorf("event position: (%v,%v)", e.X, e.Y)
	}
}

func TestBridge_PublishVoiceAndFace(t *testing.T) {
	world := donburi.NewWorld()
	bridge := NewBridge(world)

	var voices []prism.VoiceEvent
	var faces []prism.FaceEvent
	VoiceEventType.Subscribe(world, func(w donburi.World, e prism.VoiceEvent) {
		voices = append(voices, e)
	})
	FaceEventType.Subscribe(world, func(w donburi.World, e prism.FaceEvent) {
		faces = append(faces, e)
	})

	bridge.PublishVoice(prism.VoiceEvent{Command: "open sesame", Transcript: "open sesame"})
	bridge.PublishFace(prism.FaceEvent{Kind: prism.SmileStarted, FaceIndex: 1})
	events.ProcessAllEvents(world)

	if len(voices) != 1 || voices[0].Command != "open sesame" {
		t.Errorf("voice events: %+v", voices)
	}
	if len(faces) != 1 || faces[0].Kind != prism.SmileStarted || faces[0].FaceIndex != 1 {
		t.Errorf("face events: %+v", faces)
	}
}

func TestBridge_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	bridge := NewBridge(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e prism.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e prism.GestureEvent) {
		count2++
	})

	bridge.PublishGesture(prism.GestureEvent{Kind: prism.GestureSwipe})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
