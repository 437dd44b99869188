package drag

// Event is a pointer event delivered by the host.
type Event interface {
	Type() string
	// ClientPosition returns the pointer position relative to the viewport.
	ClientPosition() (x, y float64)
	PreventDefault()
	StopPropagation()
}

// Listener handles one event.
type Listener func(Event)

// EventTarget accepts event listeners. The returned func removes the
// listener and must be safe to call more than once.
type EventTarget interface {
	AddEventListener(eventType string, fn Listener) (remove func())
}

// StyleGetter reads inline style properties such as "left".
type StyleGetter interface {
	StyleProperty(name string) string
}

// StyleSetter writes inline style properties.
type StyleSetter interface {
	SetStyleProperty(name, value string)
}

// Element is a node that can be moved and can receive events.
type Element interface {
	EventTarget
	StyleGetter
	StyleSetter
}

// Document is the surface that receives move and release events while a
// drag is in progress.
type Document interface {
	EventTarget
	// ScrollOffset returns the current horizontal and vertical scroll.
	ScrollOffset() (x, y float64)
}

// Resolver looks elements up by identifier. It returns nil when no element
// matches.
type Resolver interface {
	ElementByID(id string) Element
}

// EventNames selects the press, move and release event types.
type EventNames struct {
	Press   string
	Move    string
	Release string
}

var (
	MouseEvents = EventNames{Press: "mousedown", Move: "mousemove", Release: "mouseup"}
	TouchEvents = EventNames{Press: "touchstart", Move: "touchmove", Release: "touchend"}
)

func (n EventNames) orDefault() EventNames {
	if n.Press == "" || n.Move == "" || n.Release == "" {
		return MouseEvents
	}
	return n
}

// Hooks carries optional drag callbacks. A value may implement any subset
// of StartHook, MoveHook and EndHook.
type Hooks interface{}

// StartHook is called when a drag begins.
type StartHook interface {
	OnDragStart(ev Event, el Element)
}

// MoveHook is called after each applied move.
type MoveHook interface {
	OnDragMove(pos Position, el Element)
}

// EndHook is called once when a drag ends.
type EndHook interface {
	OnDragEnd(el Element)
}

// HookFuncs adapts plain functions to the hook interfaces. Nil fields are
// skipped.
type HookFuncs struct {
	Start func(ev Event, el Element)
	Move  func(pos Position, el Element)
	End   func(el Element)
}

func (h HookFuncs) OnDragStart(ev Event, el Element) {
	if h.Start != nil {
		h.Start(ev, el)
	}
}

func (h HookFuncs) OnDragMove(pos Position, el Element) {
	if h.Move != nil {
		h.Move(pos, el)
	}
}

func (h HookFuncs) OnDragEnd(el Element) {
	if h.End != nil {
		h.End(el)
	}
}
