package ui

import "github.com/chrisuehlinger/decafdrag/drag"

// pointerEvent is a drag.Event synthesized from a fyne pointer callback.
type pointerEvent struct {
	typ       string
	x, y      float64
	prevented bool
	stopped   bool
}

func (e *pointerEvent) Type() string                       { return e.typ }
func (e *pointerEvent) ClientPosition() (float64, float64) { return e.x, e.y }
func (e *pointerEvent) PreventDefault()                    { e.prevented = true }
func (e *pointerEvent) StopPropagation()                   { e.stopped = true }

type listenerEntry struct {
	id int
	fn drag.Listener
}

// listenerSet is a drag.EventTarget backed by a slice per event type.
// fyne delivers pointer callbacks on one goroutine, so no locking.
type listenerSet struct {
	listeners map[string][]listenerEntry
	nextID    int
}

func (s *listenerSet) AddEventListener(eventType string, fn drag.Listener) func() {
	if s.listeners == nil {
		s.listeners = make(map[string][]listenerEntry)
	}
	s.nextID++
	id := s.nextID
	s.listeners[eventType] = append(s.listeners[eventType], listenerEntry{id: id, fn: fn})
	return func() { s.remove(eventType, id) }
}

func (s *listenerSet) remove(eventType string, id int) {
	entries := s.listeners[eventType]
	for i, e := range entries {
		if e.id == id {
			s.listeners[eventType] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

func (s *listenerSet) count(eventType string) int {
	return len(s.listeners[eventType])
}

// dispatch runs the listeners for ev.typ until one stops propagation.
func (s *listenerSet) dispatch(ev *pointerEvent) {
	entries := append([]listenerEntry(nil), s.listeners[ev.typ]...)
	for _, e := range entries {
		e.fn(ev)
		if ev.stopped {
			return
		}
	}
}
