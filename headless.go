package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/chrisuehlinger/decafdrag/config"
	"github.com/chrisuehlinger/decafdrag/dom"
	"github.com/chrisuehlinger/decafdrag/domdrag"
	"github.com/chrisuehlinger/decafdrag/drag"
	"github.com/chrisuehlinger/decafdrag/html"
	"github.com/chrisuehlinger/decafdrag/js"
)

// runHeadless builds the layout page in memory and prints every panel's
// final position to w. With a script, the script creates and drives its
// own draggables. Without one, every panel gets a controller and the
// first panel is dragged by (20, 30).
func runHeadless(w io.Writer, cfg *config.Config, src, code string, logger *slog.Logger) error {
	doc, err := html.LayoutDocument(cfg)
	if err != nil {
		return err
	}
	host := domdrag.NewHost(doc, logger)

	if code != "" {
		rt := js.NewRuntime(logger)
		rt.InstallDrag(host)
		defer rt.DisposeDraggables()
		if err := rt.ExecuteScript(code, src); err != nil {
			return fmt.Errorf("run %s: %w", src, err)
		}
	} else {
		var controllers []*drag.Controller
		for i := range cfg.Panels {
			controllers = append(controllers, host.Draggable(cfg.Panels[i].ID, cfg.DragOptions(&cfg.Panels[i])))
		}
		defer func() {
			for _, c := range controllers {
				c.Dispose()
			}
		}()
		if len(cfg.Panels) > 0 {
			demoDrag(doc, &cfg.Panels[0], cfg.EventNames())
		}
	}

	for _, p := range cfg.Panels {
		el := host.ElementByID(p.ID)
		fmt.Fprintf(w, "%s %s\n", p.ID, drag.PositionOf(el))
	}
	return nil
}

func demoDrag(doc *dom.Document, p *config.Panel, names drag.EventNames) {
	handle := p.Handle
	if handle == "" {
		handle = p.ID
	}
	el := doc.GetElementById(handle)
	if el == nil {
		return
	}
	el.DispatchEvent(dom.NewMouseEvent(names.Press, 0, 0))
	doc.DispatchEvent(dom.NewMouseEvent(names.Move, 20, 30))
	doc.DispatchEvent(dom.NewMouseEvent(names.Release, 20, 30))
}
