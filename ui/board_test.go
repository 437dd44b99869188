package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/chrisuehlinger/decafdrag/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Window: config.Window{Title: "test", Width: 400, Height: 300},
		Panels: []config.Panel{
			{ID: "sidebar", Title: "Sidebar", Width: 100, Height: 80, Handle: "sidebar-title"},
			{
				ID: "popup", Title: "Popup", X: 10, Y: 10, Width: 50, Height: 50,
				Lower: &config.Point{X: 0, Y: 0},
				Upper: &config.Point{X: 15, Y: 15},
			},
		},
	}
}

func mouseAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(x, y)}}
}

func dragTo(x, y, dx, dy float32) *fyne.DragEvent {
	return &fyne.DragEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(x, y)},
		Dragged:    fyne.NewDelta(dx, dy),
	}
}

func TestBoardDragByTitle(t *testing.T) {
	b := NewBoard(test.NewTempApp(t), testConfig(), nil)
	defer b.Close()

	p := b.Panel("sidebar")
	if p == nil || p.title == nil {
		t.Fatal("Expected sidebar panel with a title bar")
	}

	// Pressing the body does nothing when a title bar is the handle.
	p.MouseDown(mouseAt(5, 5))
	p.Dragged(dragTo(25, 25, 20, 20))
	p.DragEnd()
	if got := p.Position(); got != fyne.NewPos(0, 0) {
		t.Fatalf("Body drag moved panel to %v", got)
	}

	p.title.MouseDown(mouseAt(50, 50))
	p.title.Dragged(dragTo(70, 80, 20, 30))
	if got := p.Position(); got != fyne.NewPos(20, 30) {
		t.Errorf("Expected panel at (20, 30), got %v", got)
	}
	p.title.DragEnd()
	p.title.MouseUp(mouseAt(70, 80))
	if b.Controllers()[0].IsDragging() {
		t.Error("Expected drag to end")
	}
	if b.doc.count("mousemove") != 0 || b.doc.count("mouseup") != 0 {
		t.Error("Expected board listeners to be removed after drag")
	}
}

func TestBoardDragClampsAndHandlesTouch(t *testing.T) {
	cfg := testConfig()
	cfg.Events = "touch"
	b := NewBoard(test.NewTempApp(t), cfg, nil)
	defer b.Close()

	p := b.Panel("popup")
	// No MouseDown: the first Dragged starts the gesture.
	p.Dragged(dragTo(70, 80, 1, 1))
	p.Dragged(dragTo(170, 180, 100, 100))
	if got := p.Position(); got != fyne.NewPos(15, 15) {
		t.Errorf("Expected clamped position (15, 15), got %v", got)
	}
	p.DragEnd()
	if b.Controllers()[1].IsDragging() {
		t.Error("Expected drag to end")
	}
}

func TestBoardResolverAndClose(t *testing.T) {
	b := NewBoard(test.NewTempApp(t), testConfig(), nil)

	if b.ElementByID("sidebar-title") == nil || b.ElementByID("popup") == nil {
		t.Error("Expected panel and title elements to resolve")
	}
	if b.ElementByID("") != nil || b.ElementByID("nope") != nil {
		t.Error("Expected unknown ids to resolve to nil")
	}

	el := b.ElementByID("popup")
	if got := el.StyleProperty("left"); got != "10px" {
		t.Errorf("Expected left 10px, got %q", got)
	}
	el.SetStyleProperty("top", "42px")
	el.SetStyleProperty("top", "auto")
	if got := b.Panel("popup").Position().Y; got != 42 {
		t.Errorf("Expected top 42, got %v", got)
	}

	b.Close()
	b.Close()
	for _, c := range b.Controllers() {
		if !c.IsDisposed() {
			t.Error("Expected controllers to be disposed")
		}
	}
}
