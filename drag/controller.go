package drag

import (
	"log/slog"
	"math"
)

// Options configures a Controller. The zero value drags the element by
// itself with mouse events, no bounds and no hooks.
type Options struct {
	// Handle receives the press gesture. Defaults to the dragged element.
	Handle Element
	// HandleID is resolved by NewByID when Handle is nil.
	HandleID string

	Lower *Position
	Upper *Position

	Hooks Hooks

	// DeferListening leaves the handle unbound until StartListening.
	DeferListening bool

	Events EventNames
	Logger *slog.Logger
}

// Controller moves one element in response to drag gestures on its handle.
//
// A Controller is driven by the host's event loop and is not safe for
// concurrent use. Every method is a no-op once the controller is disposed.
type Controller struct {
	doc    Document
	el     Element
	handle Element

	lower *Position
	upper *Position

	hooks  Hooks
	events EventNames
	logger *slog.Logger

	// Session state, set only while dragging.
	cursorStart  *Position
	elementStart *Position

	dragging  bool
	listening bool
	disposed  bool

	removePress   func()
	removeMove    func()
	removeRelease func()
}

// New binds a controller to el. A nil element or document yields an inert
// controller that reports IsDisposed.
func New(doc Document, el Element, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{logger: logger}
	if doc == nil || el == nil {
		logger.Warn("drag: no element or document, controller is inert")
		c.disposed = true
		return c
	}

	c.doc = doc
	c.el = el
	c.handle = opts.Handle
	if c.handle == nil {
		c.handle = el
	}
	c.lower, c.upper = normalizeBounds(opts.Lower, opts.Upper)
	c.hooks = opts.Hooks
	c.events = opts.Events.orDefault()

	if !opts.DeferListening {
		c.StartListening()
	}
	return c
}

// NewByID resolves id (and opts.HandleID) through r and binds a controller
// to the result. An unknown id yields an inert controller; an unknown
// handle id falls back to the dragged element.
func NewByID(r Resolver, doc Document, id string, opts Options) *Controller {
	var el Element
	if r != nil {
		el = r.ElementByID(id)
	}
	if el == nil {
		logger := opts.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("drag: element not found, controller is inert", "id", id)
		return &Controller{logger: logger, disposed: true}
	}
	if opts.Handle == nil && opts.HandleID != "" {
		opts.Handle = r.ElementByID(opts.HandleID)
	}
	return New(doc, el, opts)
}

// normalizeBounds copies the bounds and, when both are set, sorts each axis
// so that lower never exceeds upper.
func normalizeBounds(lower, upper *Position) (*Position, *Position) {
	var lo, hi *Position
	if lower != nil {
		l := *lower
		lo = &l
	}
	if upper != nil {
		u := *upper
		hi = &u
	}
	if lo == nil || hi == nil {
		return lo, hi
	}
	if !math.IsNaN(lo.X) && !math.IsNaN(hi.X) && lo.X > hi.X {
		lo.X, hi.X = hi.X, lo.X
	}
	if !math.IsNaN(lo.Y) && !math.IsNaN(hi.Y) && lo.Y > hi.Y {
		lo.Y, hi.Y = hi.Y, lo.Y
	}
	return lo, hi
}

// IsDragging reports whether a drag is in progress.
func (c *Controller) IsDragging() bool { return c.dragging }

// IsListening reports whether the handle has a press listener.
func (c *Controller) IsListening() bool { return c.listening }

// IsDisposed reports whether the controller has been disposed or was
// constructed inert.
func (c *Controller) IsDisposed() bool { return c.disposed }

// Element returns the dragged element, or nil once disposed.
func (c *Controller) Element() Element { return c.el }

// Handle returns the handle element, or nil once disposed.
func (c *Controller) Handle() Element { return c.handle }

// Bounds returns copies of the effective lower and upper bounds.
func (c *Controller) Bounds() (lower, upper *Position) {
	return normalizeBounds(c.lower, c.upper)
}

// SetBounds replaces both bounds, sorting each axis like New does.
func (c *Controller) SetBounds(lower, upper *Position) {
	if c.disposed {
		return
	}
	c.lower, c.upper = normalizeBounds(lower, upper)
}

// StartListening attaches the press listener to the handle.
func (c *Controller) StartListening() {
	if c.disposed || c.listening || c.handle == nil {
		return
	}
	c.removePress = c.handle.AddEventListener(c.events.Press, c.onPress)
	c.listening = true
}

// StopListening detaches the press listener. When stopCurrent is set, a
// drag in progress is ended as if the pointer had been released.
func (c *Controller) StopListening(stopCurrent bool) {
	if c.disposed || !c.listening || c.handle == nil {
		return
	}
	if c.removePress != nil {
		c.removePress()
		c.removePress = nil
	}
	c.listening = false
	if stopCurrent && c.dragging {
		c.endDrag(nil)
	}
}

// Dispose stops listening, ends any drag and drops every reference the
// controller holds. It is idempotent.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.StopListening(true)
	// A drag can outlive StopListening(false).
	if c.dragging {
		c.endDrag(nil)
	}
	c.disposed = true
	c.doc = nil
	c.el = nil
	c.handle = nil
	c.hooks = nil
	c.lower, c.upper = nil, nil
}

func (c *Controller) cursor(ev Event) Position {
	x, y := ev.ClientPosition()
	sx, sy := c.doc.ScrollOffset()
	return Position{X: x + sx, Y: y + sy}
}

func (c *Controller) onPress(ev Event) {
	if c.disposed || !c.listening || c.dragging {
		return
	}
	el := c.el
	if h, ok := c.hooks.(StartHook); ok {
		h.OnDragStart(ev, el)
		// The hook may have cancelled us.
		if c.disposed || !c.listening || c.dragging {
			return
		}
	}

	cursor := c.cursor(ev)
	start := PositionOf(el)
	c.cursorStart = &cursor
	c.elementStart = &start
	c.dragging = true
	c.removeMove = c.doc.AddEventListener(c.events.Move, c.onMove)
	c.removeRelease = c.doc.AddEventListener(c.events.Release, c.onRelease)

	c.logger.Debug("drag: start", "cursor", cursor.String(), "element", start.String())
	ev.PreventDefault()
	ev.StopPropagation()
}

func (c *Controller) onMove(ev Event) {
	if c.disposed || !c.dragging {
		return
	}
	ev.PreventDefault()
	ev.StopPropagation()

	pos := c.cursor(ev).Add(c.elementStart).Subtract(c.cursorStart).Bound(c.lower, c.upper)
	el := c.el
	pos.Apply(el)
	if h, ok := c.hooks.(MoveHook); ok {
		h.OnDragMove(pos, el)
	}
}

func (c *Controller) onRelease(ev Event) {
	if c.disposed {
		return
	}
	c.endDrag(ev)
}

// endDrag returns to idle. ev is nil when the drag is cut short by
// StopListening or Dispose.
func (c *Controller) endDrag(ev Event) {
	if !c.dragging {
		return
	}
	if c.removeMove != nil {
		c.removeMove()
		c.removeMove = nil
	}
	if c.removeRelease != nil {
		c.removeRelease()
		c.removeRelease = nil
	}
	c.dragging = false
	c.cursorStart = nil
	c.elementStart = nil

	el := c.el
	c.logger.Debug("drag: end", "forced", ev == nil)
	if ev != nil {
		ev.PreventDefault()
		ev.StopPropagation()
	}
	if h, ok := c.hooks.(EndHook); ok {
		h.OnDragEnd(el)
	}
}
