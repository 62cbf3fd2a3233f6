package prism

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a playback script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Phrase  string  `json:"phrase,omitempty"`
	Event   string  `json:"event,omitempty"`
	Face    int     `json:"face,omitempty"`
}

// scriptFile is the top-level JSON structure for a playback script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptTargets are the components a Script drives. Nil targets cause their
// actions to be skipped.
type ScriptTargets struct {
	Gestures *Gestures
	Voice    *VoiceCommands
	Faces    *FaceTriggers
}

// Script replays a scripted input sequence against prism components, one
// action per frame, for automated and deterministic testing of interactive
// scenes. Supported actions:
//
//	tap      — press and release a pointer at x, y
//	press    — press a pointer at x, y
//	move     — move a held pointer to x, y
//	release  — release a pointer at x, y
//	drag     — press at fromX, fromY and drag to toX, toY over frames frames
//	wait     — do nothing for frames frames
//	say      — dispatch phrase to the voice dispatcher
//	face     — emit a face event (event name plus face index)
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	drag *dragPlayback
}

type dragPlayback struct {
	pointer      int
	fromX, fromY float64
	toX, toY     float64
	frames       int
	frame        int
}

var faceEventNames = map[string]FaceEventKind{
	"faceFound":    FaceFound,
	"faceLost":     FaceLost,
	"mouthOpened":  MouthOpened,
	"mouthClosed":  MouthClosed,
	"browsRaised":  BrowsRaised,
	"browsLowered": BrowsLowered,
	"smileStarted": SmileStarted,
	"smileEnded":   SmileEnded,
	"kissStarted":  KissStarted,
	"kissEnded":    KissEnded,
}

// LoadScript parses a JSON playback script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script scriptFile
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse playback script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse playback script: no steps")
	}
	return &Script{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Step advances the script by one frame. Call once per frame before ticking
// the target components.
func (r *Script) Step(t ScriptTargets) {
	if r.done {
		return
	}
	if r.drag != nil {
		r.stepDrag(t)
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		if t.Gestures != nil {
			t.Gestures.Press(st.Pointer, st.X, st.Y)
			t.Gestures.Release(st.Pointer, st.X, st.Y)
		}
	case "press":
		if t.Gestures != nil {
			t.Gestures.Press(st.Pointer, st.X, st.Y)
		}
	case "move":
		if t.Gestures != nil {
			t.Gestures.Move(st.Pointer, st.X, st.Y)
		}
	case "release":
		if t.Gestures != nil {
			t.Gestures.Release(st.Pointer, st.X, st.Y)
		}
	case "drag":
		// At least press, one move, release.
		frames := st.Frames
		if frames < 3 {
			frames = 3
		}
		r.drag = &dragPlayback{
			pointer: st.Pointer,
			fromX:   st.FromX, fromY: st.FromY,
			toX: st.ToX, toY: st.ToY,
			frames: frames,
		}
		r.stepDrag(t)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "say":
		if t.Voice != nil {
			t.Voice.Dispatch(st.Phrase)
		}
	case "face":
		if t.Faces != nil {
			if kind, ok := faceEventNames[st.Event]; ok {
				t.Faces.Emit(kind, st.Face)
			}
		}
	}

	r.checkDone()
}

// stepDrag advances an in-progress drag by one frame: press on the first
// frame, release on the last, interpolated moves between.
func (r *Script) stepDrag(t ScriptTargets) {
	d := r.drag
	frac := float64(d.frame) / float64(d.frames-1)
	x := lerp(d.fromX, d.toX, frac)
	y := lerp(d.fromY, d.toY, frac)

	if t.Gestures != nil {
		switch d.frame {
		case 0:
			t.Gestures.Press(d.pointer, x, y)
		case d.frames - 1:
			t.Gestures.Release(d.pointer, x, y)
		default:
			t.Gestures.Move(d.pointer, x, y)
		}
	}

	d.frame++
	if d.frame >= d.frames {
		r.drag = nil
	}
}

func (r *Script) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.drag == nil {
		r.done = true
	}
}
