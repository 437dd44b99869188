// Package ui shows the configured panels in a fyne window and lets the
// user drag them around.
package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/chrisuehlinger/decafdrag/config"
	"github.com/chrisuehlinger/decafdrag/drag"
)

// Board is a window holding draggable panels. It acts as the drag
// document: move and release events from any panel are delivered to the
// board's listeners.
type Board struct {
	window fyne.Window
	scroll *container.Scroll
	logger *slog.Logger

	events      drag.EventNames
	doc         listenerSet
	panels      []*Panel
	controllers []*drag.Controller
}

var (
	_ drag.Document = (*Board)(nil)
	_ drag.Resolver = (*Board)(nil)
)

// NewBoard creates the window for cfg on app. The canvas is twice the
// configured window size so panels can be scrolled into view.
func NewBoard(app fyne.App, cfg *config.Config, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Board{
		window: app.NewWindow(cfg.Window.Title),
		logger: logger,
		events: cfg.EventNames(),
	}
	w, h := float32(cfg.Window.Width), float32(cfg.Window.Height)
	b.window.Resize(fyne.NewSize(w, h))

	free := container.NewWithoutLayout()
	for _, pc := range cfg.Panels {
		p := newPanel(b, pc.ID, pc.Title, pc.Handle != "")
		if pc.Handle != "" {
			p.title.id = pc.Handle
		}
		p.Resize(fyne.NewSize(float32(pc.Width), float32(pc.Height)))
		p.Move(fyne.NewPos(float32(pc.X), float32(pc.Y)))
		free.Add(p)
		b.panels = append(b.panels, p)
	}

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w*2, h*2))
	b.scroll = container.NewScroll(container.NewStack(spacer, free))
	b.window.SetContent(b.scroll)
	b.window.SetOnClosed(b.Close)

	for i := range cfg.Panels {
		pc := &cfg.Panels[i]
		opts := cfg.DragOptions(pc)
		opts.Logger = logger
		c := drag.NewByID(b, b, pc.ID, opts)
		b.controllers = append(b.controllers, c)
	}
	logger.Info("board ready", "panels", len(b.panels))
	return b
}

// Window returns the board's window.
func (b *Board) Window() fyne.Window {
	return b.window
}

// Run shows the window and runs the app loop.
func (b *Board) Run() {
	b.window.ShowAndRun()
}

// Close disposes every drag controller. It is safe to call more than once.
func (b *Board) Close() {
	for _, c := range b.controllers {
		c.Dispose()
	}
}

// Panel returns the panel with the given id, or nil.
func (b *Board) Panel(id string) *Panel {
	for _, p := range b.panels {
		if p.id == id {
			return p
		}
	}
	return nil
}

// Controllers returns the drag controller of every panel.
func (b *Board) Controllers() []*drag.Controller {
	return append([]*drag.Controller(nil), b.controllers...)
}

// ElementByID implements drag.Resolver for panels and title bars.
func (b *Board) ElementByID(id string) drag.Element {
	if id == "" {
		return nil
	}
	for _, p := range b.panels {
		if p.id == id {
			return panelElement{p: p}
		}
		if p.title != nil && p.title.id == id {
			return titleElement{t: p.title}
		}
	}
	return nil
}

// AddEventListener implements drag.EventTarget for board-wide events.
func (b *Board) AddEventListener(eventType string, fn drag.Listener) func() {
	return b.doc.AddEventListener(eventType, fn)
}

// ScrollOffset implements drag.Document.
func (b *Board) ScrollOffset() (float64, float64) {
	if b.scroll == nil {
		return 0, 0
	}
	return float64(b.scroll.Offset.X), float64(b.scroll.Offset.Y)
}

func (b *Board) dispatch(eventType string, pos fyne.Position) {
	b.doc.dispatch(newPointerEvent(eventType, pos))
}
