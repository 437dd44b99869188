package dom

import "sync"

// EventPhase represents the phase of event dispatch.
type EventPhase int

const (
	EventPhaseNone      EventPhase = 0
	EventPhaseCapturing EventPhase = 1
	EventPhaseAtTarget  EventPhase = 2
	EventPhaseBubbling  EventPhase = 3
)

// Event represents a DOM event. Mouse events also carry client coordinates.
type Event struct {
	Type       string
	Bubbles    bool
	Cancelable bool

	ClientX float64
	ClientY float64
	Button  int

	Target        *Node
	CurrentTarget *Node
	EventPhase    EventPhase

	defaultPrevented bool
	stopPropagation  bool
	stopImmediate    bool
}

// NewEvent creates an event that neither bubbles nor can be cancelled.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

// NewMouseEvent creates a bubbling, cancelable mouse event at the given
// viewport coordinates.
func NewMouseEvent(eventType string, clientX, clientY float64) *Event {
	return &Event{
		Type:       eventType,
		Bubbles:    true,
		Cancelable: true,
		ClientX:    clientX,
		ClientY:    clientY,
	}
}

// PreventDefault marks a cancelable event as handled.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops dispatch after the current target.
func (e *Event) StopPropagation() {
	e.stopPropagation = true
}

// StopImmediatePropagation also skips the remaining listeners on the
// current target.
func (e *Event) StopImmediatePropagation() {
	e.stopPropagation = true
	e.stopImmediate = true
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e.stopPropagation
}

// EventListener handles an event.
type EventListener func(ev *Event)

// ListenerOptions mirrors the addEventListener options dictionary.
type ListenerOptions struct {
	Capture bool
	Once    bool
}

type eventListener struct {
	id       int
	callback EventListener
	options  ListenerOptions
}

// EventTarget manages event listeners for one node.
type EventTarget struct {
	listeners map[string][]eventListener
	nextID    int
	mu        sync.RWMutex
}

// NewEventTarget creates a new EventTarget.
func NewEventTarget() *EventTarget {
	return &EventTarget{
		listeners: make(map[string][]eventListener),
	}
}

// AddEventListener registers a listener and returns its id.
func (et *EventTarget) AddEventListener(eventType string, callback EventListener, opts ...ListenerOptions) int {
	et.mu.Lock()
	defer et.mu.Unlock()

	var o ListenerOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	et.nextID++
	et.listeners[eventType] = append(et.listeners[eventType], eventListener{
		id:       et.nextID,
		callback: callback,
		options:  o,
	})
	return et.nextID
}

// RemoveEventListener unregisters the listener with the given id. Unknown
// ids are ignored.
func (et *EventTarget) RemoveEventListener(eventType string, id int) {
	et.mu.Lock()
	defer et.mu.Unlock()

	listeners := et.listeners[eventType]
	for i, l := range listeners {
		if l.id == id {
			et.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// HasEventListeners returns true if there are any listeners for the event type.
func (et *EventTarget) HasEventListeners(eventType string) bool {
	et.mu.RLock()
	defer et.mu.RUnlock()
	return len(et.listeners[eventType]) > 0
}

// ListenerCount returns the number of listeners for the event type.
func (et *EventTarget) ListenerCount(eventType string) int {
	et.mu.RLock()
	defer et.mu.RUnlock()
	return len(et.listeners[eventType])
}

// invoke runs the listeners registered for ev.Type in the given phase.
// Listeners added during dispatch do not run; listeners removed during
// dispatch are skipped.
func (et *EventTarget) invoke(ev *Event, phase EventPhase) {
	et.mu.RLock()
	listeners := make([]eventListener, len(et.listeners[ev.Type]))
	copy(listeners, et.listeners[ev.Type])
	et.mu.RUnlock()

	for _, l := range listeners {
		if phase == EventPhaseCapturing && !l.options.Capture {
			continue
		}
		if phase == EventPhaseBubbling && l.options.Capture {
			continue
		}
		if !et.has(ev.Type, l.id) {
			continue
		}
		if l.options.Once {
			et.RemoveEventListener(ev.Type, l.id)
		}
		l.callback(ev)
		if ev.stopImmediate {
			return
		}
	}
}

func (et *EventTarget) has(eventType string, id int) bool {
	et.mu.RLock()
	defer et.mu.RUnlock()
	for _, l := range et.listeners[eventType] {
		if l.id == id {
			return true
		}
	}
	return false
}

// dispatch runs the capture, target and bubble phases for ev on target.
func dispatch(target *Node, ev *Event) bool {
	ev.Target = target
	ev.defaultPrevented = false
	ev.stopPropagation = false
	ev.stopImmediate = false

	var path []*Node
	for p := target.parentNode; p != nil; p = p.parentNode {
		path = append(path, p)
	}

	for i := len(path) - 1; i >= 0 && !ev.stopPropagation; i-- {
		ev.CurrentTarget = path[i]
		ev.EventPhase = EventPhaseCapturing
		path[i].events.invoke(ev, EventPhaseCapturing)
	}

	if !ev.stopPropagation {
		ev.CurrentTarget = target
		ev.EventPhase = EventPhaseAtTarget
		target.events.invoke(ev, EventPhaseAtTarget)
	}

	if ev.Bubbles {
		for _, p := range path {
			if ev.stopPropagation {
				break
			}
			ev.CurrentTarget = p
			ev.EventPhase = EventPhaseBubbling
			p.events.invoke(ev, EventPhaseBubbling)
		}
	}

	ev.CurrentTarget = nil
	ev.EventPhase = EventPhaseNone
	return !ev.defaultPrevented
}
