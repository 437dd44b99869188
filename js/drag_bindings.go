package js

import (
	"fmt"
	"math"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/decafdrag/dom"
	"github.com/chrisuehlinger/decafdrag/domdrag"
	"github.com/chrisuehlinger/decafdrag/drag"
)

// dragBinding exposes drag controllers for one document to scripts.
type dragBinding struct {
	rt          *Runtime
	host        *domdrag.Host
	controllers []*drag.Controller
}

// InstallDrag binds the runtime to host and defines Position, Draggable,
// dispatchMouse, scrollTo and elementPosition. Nothing drag related is
// visible to scripts until this is called.
func (r *Runtime) InstallDrag(host *domdrag.Host) {
	b := &dragBinding{rt: r, host: host}
	r.drag = b

	r.vm.Set("Position", b.newPosition)
	r.vm.Set("Draggable", b.newDraggable)
	r.vm.Set("dispatchMouse", b.dispatchMouse)
	r.vm.Set("scrollTo", b.scrollTo)
	r.vm.Set("elementPosition", b.elementPosition)
}

// Controllers returns the controllers created by scripts.
func (r *Runtime) Controllers() []*drag.Controller {
	if r.drag == nil {
		return nil
	}
	return append([]*drag.Controller(nil), r.drag.controllers...)
}

// DisposeDraggables disposes every controller created by scripts.
func (r *Runtime) DisposeDraggables() {
	for _, c := range r.Controllers() {
		c.Dispose()
	}
}

func (b *dragBinding) newPosition(call goja.ConstructorCall) *goja.Object {
	p := drag.Position{X: toNumber(call.Argument(0)), Y: toNumber(call.Argument(1))}
	b.fillPosition(call.This, p)
	return call.This
}

func (b *dragBinding) positionObject(p drag.Position) *goja.Object {
	obj := b.rt.vm.NewObject()
	b.fillPosition(obj, p)
	return obj
}

// fillPosition sets x, y and the arithmetic methods on obj. Methods read
// x and y from this at call time.
func (b *dragBinding) fillPosition(obj *goja.Object, p drag.Position) {
	vm := b.rt.vm
	self := func(call goja.FunctionCall) drag.Position {
		if q := b.toPosition(call.This); q != nil {
			return *q
		}
		return drag.NaN()
	}
	binary := func(op func(drag.Position, *drag.Position) drag.Position) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			return b.positionObject(op(self(call), b.toPosition(call.Argument(0))))
		}
	}

	obj.Set("x", p.X)
	obj.Set("y", p.Y)
	obj.Set("add", binary(drag.Position.Add))
	obj.Set("subtract", binary(drag.Position.Subtract))
	obj.Set("min", binary(drag.Position.Min))
	obj.Set("max", binary(drag.Position.Max))
	obj.Set("bound", func(call goja.FunctionCall) goja.Value {
		lower := b.toPosition(call.Argument(0))
		upper := b.toPosition(call.Argument(1))
		return b.positionObject(self(call).Bound(lower, upper))
	})
	obj.Set("check", func(call goja.FunctionCall) goja.Value {
		return b.positionObject(self(call).Check())
	})
	obj.Set("toString", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(self(call).String())
	})
}

// toPosition reads {x, y} from v. undefined and null mean "no operand";
// missing components become NaN.
func (b *dragBinding) toPosition(v goja.Value) *drag.Position {
	if isAbsent(v) {
		return nil
	}
	obj := v.ToObject(b.rt.vm)
	return &drag.Position{X: toNumber(obj.Get("x")), Y: toNumber(obj.Get("y"))}
}

func (b *dragBinding) newDraggable(call goja.ConstructorCall) *goja.Object {
	vm := b.rt.vm
	id := call.Argument(0).String()
	opts := drag.Options{}
	hooks := &scriptHooks{b: b, id: id}

	if o := call.Argument(1); !isAbsent(o) {
		obj := o.ToObject(vm)
		if v := obj.Get("handle"); !isAbsent(v) {
			opts.HandleID = v.String()
		}
		opts.Lower = b.toPosition(obj.Get("lower"))
		opts.Upper = b.toPosition(obj.Get("upper"))
		if v := obj.Get("deferListening"); v != nil {
			opts.DeferListening = v.ToBoolean()
		}
		if v := obj.Get("touch"); v != nil && v.ToBoolean() {
			opts.Events = drag.TouchEvents
		}
		hooks.onStart = callable(obj.Get("onStart"))
		hooks.onMove = callable(obj.Get("onMove"))
		hooks.onEnd = callable(obj.Get("onEnd"))
	}
	opts.Hooks = hooks

	c := b.host.Draggable(id, opts)
	b.controllers = append(b.controllers, c)

	this := call.This
	this.Set("id", id)
	this.Set("startListening", func(goja.FunctionCall) goja.Value {
		c.StartListening()
		return goja.Undefined()
	})
	this.Set("stopListening", func(call goja.FunctionCall) goja.Value {
		c.StopListening(call.Argument(0).ToBoolean())
		return goja.Undefined()
	})
	this.Set("isDragging", func(goja.FunctionCall) goja.Value { return vm.ToValue(c.IsDragging()) })
	this.Set("isListening", func(goja.FunctionCall) goja.Value { return vm.ToValue(c.IsListening()) })
	this.Set("isDisposed", func(goja.FunctionCall) goja.Value { return vm.ToValue(c.IsDisposed()) })
	this.Set("dispose", func(goja.FunctionCall) goja.Value {
		c.Dispose()
		return goja.Undefined()
	})
	return this
}

// dispatchMouse(target, type, clientX, clientY) dispatches a mouse event
// at the element with id target, or at the document when target is
// "document" or absent. It returns false if the default was prevented.
func (b *dragBinding) dispatchMouse(call goja.FunctionCall) goja.Value {
	vm := b.rt.vm
	doc := b.host.Document()
	ev := dom.NewMouseEvent(call.Argument(1).String(), call.Argument(2).ToFloat(), call.Argument(3).ToFloat())

	target := call.Argument(0)
	if isAbsent(target) || target.String() == "document" {
		return vm.ToValue(doc.DispatchEvent(ev))
	}
	el := doc.GetElementById(target.String())
	if el == nil {
		panic(vm.NewTypeError("dispatchMouse: no element with id %q", target.String()))
	}
	return vm.ToValue(el.DispatchEvent(ev))
}

func (b *dragBinding) scrollTo(call goja.FunctionCall) goja.Value {
	b.host.Document().ScrollTo(call.Argument(0).ToFloat(), call.Argument(1).ToFloat())
	return goja.Undefined()
}

// elementPosition(id) returns the element's left/top as a Position, or
// null for an unknown id.
func (b *dragBinding) elementPosition(call goja.FunctionCall) goja.Value {
	el := b.host.ElementByID(call.Argument(0).String())
	if el == nil {
		return goja.Null()
	}
	return b.positionObject(drag.PositionOf(el))
}

// scriptHooks forwards drag callbacks to script functions.
type scriptHooks struct {
	b       *dragBinding
	id      string
	onStart goja.Callable
	onMove  goja.Callable
	onEnd   goja.Callable
}

func (h *scriptHooks) OnDragStart(ev drag.Event, el drag.Element) {
	if h.onStart == nil {
		return
	}
	x, y := ev.ClientPosition()
	evObj := h.b.rt.vm.NewObject()
	evObj.Set("type", ev.Type())
	evObj.Set("clientX", x)
	evObj.Set("clientY", y)
	h.call("onStart", h.onStart, evObj, h.elementObject(el))
}

func (h *scriptHooks) OnDragMove(pos drag.Position, el drag.Element) {
	if h.onMove == nil {
		return
	}
	h.call("onMove", h.onMove, h.b.positionObject(pos), h.elementObject(el))
}

func (h *scriptHooks) OnDragEnd(el drag.Element) {
	if h.onEnd == nil {
		return
	}
	h.call("onEnd", h.onEnd, h.elementObject(el))
}

func (h *scriptHooks) call(name string, fn goja.Callable, args ...interface{}) {
	vm := h.b.rt.vm
	vals := make([]goja.Value, len(args))
	for i, a := range args {
		vals[i] = vm.ToValue(a)
	}
	if _, err := fn(goja.Undefined(), vals...); err != nil {
		h.b.rt.reportError(fmt.Errorf("draggable %s %s: %w", h.id, name, err))
	}
}

func (h *scriptHooks) elementObject(el drag.Element) *goja.Object {
	obj := h.b.rt.vm.NewObject()
	id := h.id
	if de, ok := el.(*domdrag.Element); ok {
		id = de.DOM().Id()
	}
	obj.Set("id", id)
	return obj
}

func isAbsent(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}

func toNumber(v goja.Value) float64 {
	if isAbsent(v) {
		return math.NaN()
	}
	return v.ToFloat()
}

func callable(v goja.Value) goja.Callable {
	if isAbsent(v) {
		return nil
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil
	}
	return fn
}
