package prism

// FaceEventKind identifies a face-tracking event reported by the host's
// tracking capability.
type FaceEventKind uint8

const (
	FaceFound    FaceEventKind = iota // a tracked face appeared
	FaceLost                         // a tracked face disappeared
	MouthOpened                      // mouth crossed the open threshold
	MouthClosed                      // mouth crossed back below the open threshold
	BrowsRaised                      // eyebrows raised
	BrowsLowered                     // eyebrows returned or furrowed
	SmileStarted                     // smile began
	SmileEnded                       // smile ended
	KissStarted                      // kiss expression began
	KissEnded                        // kiss expression ended

	faceEventKinds // number of kinds; keep last
)

// AnyFace registers a trigger for every tracked face index.
const AnyFace = -1

// FaceEvent is delivered to face trigger callbacks.
type FaceEvent struct {
	Kind      FaceEventKind
	FaceIndex int
}

type faceHandler struct {
	id        uint32
	faceIndex int
	fn        func(FaceEvent)
}

// FaceTriggers routes face-tracking events from an injected host capability
// to callbacks. Face detection and expression inference live in the host;
// whatever produces events calls Emit, and registered triggers matching the
// kind and face index fire in registration order.
type FaceTriggers struct {
	handlers [faceEventKinds][]faceHandler
	nextID   uint32
	enabled  bool
}

// NewFaceTriggers creates an enabled dispatcher.
func NewFaceTriggers() *FaceTriggers {
	return &FaceTriggers{enabled: true}
}

// On registers fn for a face event kind. faceIndex restricts the trigger to
// one tracked face; AnyFace fires for all of them.
func (f *FaceTriggers) On(kind FaceEventKind, faceIndex int, fn func(FaceEvent)) CallbackHandle {
	if kind >= faceEventKinds {
		return CallbackHandle{}
	}
	f.nextID++
	id := f.nextID
	f.handlers[kind] = append(f.handlers[kind], faceHandler{
		id:        id,
		faceIndex: faceIndex,
		fn:        fn,
	})
	return CallbackHandle{remove: func() { f.remove(kind, id) }}
}

// Emit delivers a face event to every matching trigger. The host's tracking
// capability calls this whenever an expression crosses a threshold. A
// handler that panics is reported and unregistered; the rest still fire.
func (f *FaceTriggers) Emit(kind FaceEventKind, faceIndex int) {
	if !f.enabled || kind >= faceEventKinds {
		return
	}
	ev := FaceEvent{Kind: kind, FaceIndex: faceIndex}
	handlers := f.handlers[kind]
	var dead []uint32
	for i := range handlers {
		h := &handlers[i]
		if h.fn == nil {
			continue
		}
		if h.faceIndex != AnyFace && h.faceIndex != faceIndex {
			continue
		}
		if !f.fireOne(h, ev) {
			dead = append(dead, h.id)
		}
	}
	for _, id := range dead {
		f.remove(kind, id)
	}
}

// SetEnabled toggles event delivery. Registrations are kept while disabled.
func (f *FaceTriggers) SetEnabled(enabled bool) {
	f.enabled = enabled
}

// Enabled reports whether Emit currently fires triggers.
func (f *FaceTriggers) Enabled() bool {
	return f.enabled
}

func (f *FaceTriggers) fireOne(h *faceHandler, ev FaceEvent) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			reportPanic(rec)
		}
	}()
	h.fn(ev)
	return true
}

func (f *FaceTriggers) remove(kind FaceEventKind, id uint32) {
	s := f.handlers[kind]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = faceHandler{}
			f.handlers[kind] = s[:len(s)-1]
			return
		}
	}
}
