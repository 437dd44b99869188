package drag

// In-memory host used by the package tests.

type fakeListener struct {
	id int
	fn Listener
}

type fakeTarget struct {
	listeners map[string][]fakeListener
	nextID    int
}

func (t *fakeTarget) AddEventListener(eventType string, fn Listener) func() {
	if t.listeners == nil {
		t.listeners = make(map[string][]fakeListener)
	}
	t.nextID++
	id := t.nextID
	t.listeners[eventType] = append(t.listeners[eventType], fakeListener{id: id, fn: fn})
	return func() {
		ls := t.listeners[eventType]
		for i, l := range ls {
			if l.id == id {
				t.listeners[eventType] = append(ls[:i], ls[i+1:]...)
				return
			}
		}
	}
}

func (t *fakeTarget) count(eventType string) int {
	return len(t.listeners[eventType])
}

func (t *fakeTarget) dispatch(ev *fakeEvent) {
	ls := append([]fakeListener(nil), t.listeners[ev.typ]...)
	for _, l := range ls {
		l.fn(ev)
	}
}

type fakeElement struct {
	fakeTarget
	style map[string]string
}

func newFakeElement(left, top string) *fakeElement {
	el := &fakeElement{style: make(map[string]string)}
	if left != "" {
		el.style["left"] = left
	}
	if top != "" {
		el.style["top"] = top
	}
	return el
}

func (e *fakeElement) StyleProperty(name string) string { return e.style[name] }

func (e *fakeElement) SetStyleProperty(name, value string) { e.style[name] = value }

type fakeDocument struct {
	fakeTarget
	scrollX, scrollY float64
}

func (d *fakeDocument) ScrollOffset() (float64, float64) { return d.scrollX, d.scrollY }

type fakeResolver map[string]Element

func (r fakeResolver) ElementByID(id string) Element {
	if el, ok := r[id]; ok {
		return el
	}
	return nil
}

type fakeEvent struct {
	typ       string
	x, y      float64
	prevented bool
	stopped   bool
}

func (e *fakeEvent) Type() string                      { return e.typ }
func (e *fakeEvent) ClientPosition() (float64, float64) { return e.x, e.y }
func (e *fakeEvent) PreventDefault()                   { e.prevented = true }
func (e *fakeEvent) StopPropagation()                  { e.stopped = true }

func mouse(typ string, x, y float64) *fakeEvent {
	return &fakeEvent{typ: typ, x: x, y: y}
}

type styleMap map[string]string

func (s styleMap) SetStyleProperty(name, value string) { s[name] = value }
