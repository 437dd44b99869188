package dom

import (
	"reflect"
	"testing"
)

func TestEventBubblingOrder(t *testing.T) {
	doc, panel, title := buildTree()
	var order []string

	doc.AddEventListener("mousedown", func(ev *Event) { order = append(order, "document") })
	panel.AddEventListener("mousedown", func(ev *Event) { order = append(order, "panel") })
	title.AddEventListener("mousedown", func(ev *Event) {
		if ev.Target != title.AsNode() || ev.EventPhase != EventPhaseAtTarget {
			t.Errorf("Unexpected target or phase: %v", ev.EventPhase)
		}
		order = append(order, "title")
	})
	doc.AddEventListener("mousedown", func(ev *Event) { order = append(order, "capture") }, ListenerOptions{Capture: true})

	ok := title.DispatchEvent(NewMouseEvent("mousedown", 1, 2))
	if !ok {
		t.Error("Expected dispatch to return true when not prevented")
	}
	want := []string{"capture", "title", "panel", "document"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Expected order %v, got %v", want, order)
	}
}

func TestEventStopPropagationAndPreventDefault(t *testing.T) {
	doc, panel, title := buildTree()
	reached := false

	doc.AddEventListener("mousedown", func(ev *Event) { reached = true })
	title.AddEventListener("mousedown", func(ev *Event) {
		ev.PreventDefault()
		ev.StopPropagation()
	})

	if title.DispatchEvent(NewMouseEvent("mousedown", 0, 0)) {
		t.Error("Expected dispatch to report default prevented")
	}
	if reached {
		t.Error("Expected propagation to stop at the target")
	}

	// Non-cancelable events ignore PreventDefault.
	ev := NewEvent("custom")
	panel.AddEventListener("custom", func(ev *Event) { ev.PreventDefault() })
	if !panel.DispatchEvent(ev) || ev.DefaultPrevented() {
		t.Error("PreventDefault should not apply to non-cancelable events")
	}
}

func TestEventNonBubbling(t *testing.T) {
	doc, _, title := buildTree()
	reached := false
	doc.AddEventListener("focus", func(ev *Event) { reached = true })
	title.DispatchEvent(NewEvent("focus"))
	if reached {
		t.Error("Non-bubbling event reached the document")
	}
}

func TestEventRemoveListener(t *testing.T) {
	doc := NewDocument()
	count := 0
	id := doc.AddEventListener("mousemove", func(ev *Event) { count++ })

	doc.DispatchEvent(NewMouseEvent("mousemove", 0, 0))
	doc.RemoveEventListener("mousemove", id)
	doc.RemoveEventListener("mousemove", id)
	doc.DispatchEvent(NewMouseEvent("mousemove", 0, 0))

	if count != 1 {
		t.Errorf("Expected 1 call, got %d", count)
	}
}

func TestEventRemovedDuringDispatchIsSkipped(t *testing.T) {
	doc := NewDocument()
	var second int
	calls := 0
	doc.AddEventListener("mouseup", func(ev *Event) {
		calls++
		doc.RemoveEventListener("mouseup", second)
	})
	second = doc.AddEventListener("mouseup", func(ev *Event) { calls++ })

	doc.DispatchEvent(NewMouseEvent("mouseup", 0, 0))
	if calls != 1 {
		t.Errorf("Expected removed listener to be skipped, got %d calls", calls)
	}
}

func TestEventOnceAndStopImmediate(t *testing.T) {
	doc := NewDocument()
	et := doc.AsNode().events
	calls := 0

	doc.AddEventListener("click", func(ev *Event) {
		calls++
		ev.StopImmediatePropagation()
	}, ListenerOptions{Once: true})
	doc.AddEventListener("click", func(ev *Event) { calls += 10 })

	doc.DispatchEvent(NewEvent("click"))
	if calls != 1 {
		t.Errorf("Expected stopImmediatePropagation to skip later listeners, got %d", calls)
	}
	if et.ListenerCount("click") != 1 {
		t.Errorf("Expected once listener to be removed, have %d", et.ListenerCount("click"))
	}
	doc.DispatchEvent(NewEvent("click"))
	if calls != 11 {
		t.Errorf("Expected second dispatch to reach remaining listener, got %d", calls)
	}
}
