package ui

import (
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chrisuehlinger/decafdrag/drag"
)

// gesture turns fyne pointer callbacks into press events on its own
// listeners and move/release events on the board.
type gesture struct {
	board   *Board
	press   listenerSet
	pressed bool
	last    fyne.Position
}

func (g *gesture) MouseDown(ev *desktop.MouseEvent) {
	g.begin(ev.AbsolutePosition)
}

func (g *gesture) MouseUp(ev *desktop.MouseEvent) {
	g.end(ev.AbsolutePosition)
}

func (g *gesture) Dragged(ev *fyne.DragEvent) {
	// Touch drivers deliver no MouseDown.
	if !g.pressed {
		g.begin(ev.AbsolutePosition.Subtract(ev.Dragged))
	}
	g.last = ev.AbsolutePosition
	g.board.dispatch(g.board.events.Move, ev.AbsolutePosition)
}

func (g *gesture) DragEnd() {
	g.end(g.last)
}

func (g *gesture) begin(pos fyne.Position) {
	g.pressed = true
	g.last = pos
	g.press.dispatch(newPointerEvent(g.board.events.Press, pos))
}

func (g *gesture) end(pos fyne.Position) {
	if !g.pressed {
		return
	}
	g.pressed = false
	g.board.dispatch(g.board.events.Release, pos)
}

func newPointerEvent(typ string, pos fyne.Position) *pointerEvent {
	return &pointerEvent{typ: typ, x: float64(pos.X), y: float64(pos.Y)}
}

// titleBar is a panel's drag handle.
type titleBar struct {
	widget.BaseWidget
	gesture

	id    string
	label *widget.Label
}

var (
	_ desktop.Mouseable = (*titleBar)(nil)
	_ fyne.Draggable    = (*titleBar)(nil)
)

func newTitleBar(b *Board, text string) *titleBar {
	t := &titleBar{
		gesture: gesture{board: b},
		label:   widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *titleBar) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	return widget.NewSimpleRenderer(container.NewStack(bg, t.label))
}

// Panel is a movable box with an optional title bar.
type Panel struct {
	widget.BaseWidget
	gesture

	id    string
	title *titleBar
	body  fyne.CanvasObject
}

var (
	_ desktop.Mouseable = (*Panel)(nil)
	_ fyne.Draggable    = (*Panel)(nil)
)

func newPanel(b *Board, id, title string, withTitle bool) *Panel {
	p := &Panel{
		gesture: gesture{board: b},
		id:      id,
		body:    widget.NewLabel(title),
	}
	if withTitle {
		p.title = newTitleBar(b, title)
		p.body = widget.NewLabel("")
	}
	p.ExtendBaseWidget(p)
	return p
}

// ID returns the panel id.
func (p *Panel) ID() string {
	return p.id
}

func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	bg.StrokeColor = theme.Color(theme.ColorNameSeparator)
	bg.StrokeWidth = 1
	var top fyne.CanvasObject
	if p.title != nil {
		top = p.title
	}
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewBorder(top, nil, nil, nil, p.body)))
}

// panelElement exposes a panel's position as left/top style properties.
type panelElement struct {
	p *Panel
}

func (e panelElement) AddEventListener(eventType string, fn drag.Listener) func() {
	return e.p.press.AddEventListener(eventType, fn)
}

func (e panelElement) StyleProperty(name string) string {
	pos := e.p.Position()
	switch name {
	case "left":
		return pixels(pos.X)
	case "top":
		return pixels(pos.Y)
	case "width":
		return pixels(e.p.Size().Width)
	case "height":
		return pixels(e.p.Size().Height)
	}
	return ""
}

func (e panelElement) SetStyleProperty(name, value string) {
	v := drag.ParsePixels(value)
	if math.IsNaN(v) {
		return
	}
	pos := e.p.Position()
	switch name {
	case "left":
		e.p.Move(fyne.NewPos(float32(v), pos.Y))
	case "top":
		e.p.Move(fyne.NewPos(pos.X, float32(v)))
	case "width":
		e.p.Resize(fyne.NewSize(float32(v), e.p.Size().Height))
	case "height":
		e.p.Resize(fyne.NewSize(e.p.Size().Width, float32(v)))
	}
}

// titleElement is a handle only; it has no movable style.
type titleElement struct {
	t *titleBar
}

func (e titleElement) AddEventListener(eventType string, fn drag.Listener) func() {
	return e.t.press.AddEventListener(eventType, fn)
}

func (titleElement) StyleProperty(string) string { return "" }

func (titleElement) SetStyleProperty(string, string) {}

func pixels(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32) + "px"
}
