package prism

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Idempotent; safe to
// call on the zero value.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

type handlerEntry[T any] struct {
	id uint32
	fn func(T)
}

// handlerList is an ordered callback registry shared by the gesture, voice,
// and face dispatchers. Handlers fire in registration order. The entry is
// removed from the slice on Remove to avoid nil iteration waste.
type handlerList[T any] struct {
	entries []handlerEntry[T]
	nextID  uint32
}

func (l *handlerList[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { l.removeID(id) }}
}

func (l *handlerList[T]) removeID(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = handlerEntry[T]{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

func (l *handlerList[T]) len() int {
	return len(l.entries)
}

// fire invokes every handler in registration order. A handler that panics is
// reported and unregistered so it cannot fail again; the remaining handlers
// still run. Panicked handlers are removed after the loop so the iteration
// order stays stable.
func (l *handlerList[T]) fire(ev T) {
	entries := l.entries
	var dead []uint32
	for i := range entries {
		if entries[i].fn == nil {
			continue
		}
		if !l.fireOne(&entries[i], ev) {
			dead = append(dead, entries[i].id)
		}
	}
	for _, id := range dead {
		l.removeID(id)
	}
}

func (l *handlerList[T]) fireOne(e *handlerEntry[T], ev T) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			reportPanic(rec)
		}
	}()
	e.fn(ev)
	return true
}
