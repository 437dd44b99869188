// Package domdrag binds drag controllers to dom documents.
package domdrag

import (
	"log/slog"

	"github.com/chrisuehlinger/decafdrag/dom"
	"github.com/chrisuehlinger/decafdrag/drag"
)

// Host adapts a dom.Document to the drag host interfaces. It resolves
// elements by id, exposes the window scroll offsets, and listens for
// move/release events at the document node.
type Host struct {
	doc    *dom.Document
	logger *slog.Logger
}

var (
	_ drag.Document = (*Host)(nil)
	_ drag.Resolver = (*Host)(nil)
	_ drag.Element  = (*Element)(nil)
	_ drag.Event    = (*Event)(nil)
)

// NewHost wraps doc. A nil logger means slog.Default().
func NewHost(doc *dom.Document, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{doc: doc, logger: logger}
}

// Document returns the wrapped document.
func (h *Host) Document() *dom.Document {
	return h.doc
}

// ElementByID implements drag.Resolver.
func (h *Host) ElementByID(id string) drag.Element {
	if h.doc == nil {
		return nil
	}
	el := h.doc.GetElementById(id)
	if el == nil {
		return nil
	}
	return &Element{el: el}
}

// Element wraps el, or returns nil for a nil el.
func (h *Host) Element(el *dom.Element) drag.Element {
	if el == nil {
		return nil
	}
	return &Element{el: el}
}

// ScrollOffset implements drag.Document.
func (h *Host) ScrollOffset() (float64, float64) {
	return h.doc.ScrollX(), h.doc.ScrollY()
}

// AddEventListener implements drag.EventTarget on the document node.
func (h *Host) AddEventListener(eventType string, fn drag.Listener) func() {
	return listen(h.doc.AsNode(), eventType, fn)
}

// Draggable makes the element with the given id draggable. opts.Logger
// defaults to the host's logger.
func (h *Host) Draggable(id string, opts drag.Options) *drag.Controller {
	if opts.Logger == nil {
		opts.Logger = h.logger
	}
	return drag.NewByID(h, h, id, opts)
}

// Element adapts a dom.Element to drag.Element.
type Element struct {
	el *dom.Element
}

// DOM returns the wrapped element.
func (e *Element) DOM() *dom.Element {
	return e.el
}

// StyleProperty implements drag.StyleGetter.
func (e *Element) StyleProperty(name string) string {
	return e.el.Style().GetPropertyValue(name)
}

// SetStyleProperty implements drag.StyleSetter.
func (e *Element) SetStyleProperty(name, value string) {
	e.el.Style().SetProperty(name, value)
}

// AddEventListener implements drag.EventTarget.
func (e *Element) AddEventListener(eventType string, fn drag.Listener) func() {
	return listen(e.el.AsNode(), eventType, fn)
}

// listen registers fn on n and returns a remover that runs at most once.
func listen(n *dom.Node, eventType string, fn drag.Listener) func() {
	id := n.AddEventListener(eventType, func(ev *dom.Event) {
		fn(&Event{ev: ev})
	})
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		n.RemoveEventListener(eventType, id)
	}
}

// Event adapts a dom.Event to drag.Event.
type Event struct {
	ev *dom.Event
}

// DOM returns the wrapped event.
func (e *Event) DOM() *dom.Event {
	return e.ev
}

func (e *Event) Type() string { return e.ev.Type }

func (e *Event) ClientPosition() (float64, float64) { return e.ev.ClientX, e.ev.ClientY }

func (e *Event) PreventDefault() { e.ev.PreventDefault() }

func (e *Event) StopPropagation() { e.ev.StopPropagation() }
