package html

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/chrisuehlinger/decafdrag/config"
	"github.com/chrisuehlinger/decafdrag/dom"
)

// RenderLayout writes an HTML page with one absolutely positioned div per
// configured panel. Panels with a handle get a title child carrying the
// handle id.
func RenderLayout(w io.Writer, cfg *config.Config) error {
	body := element(atom.Body)
	for _, p := range cfg.Panels {
		body.AppendChild(panelNode(p))
	}

	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: cfg.Window.Title})
	head := element(atom.Head)
	head.AppendChild(title)

	root := element(atom.Html)
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render layout: %w", err)
	}
	return nil
}

// LayoutDocument renders the layout and parses it back into a document.
func LayoutDocument(cfg *config.Config) (*dom.Document, error) {
	var buf bytes.Buffer
	if err := RenderLayout(&buf, cfg); err != nil {
		return nil, err
	}
	return Parse(&buf)
}

func panelNode(p config.Panel) *html.Node {
	div := element(atom.Div)
	style := "position: absolute; left: " + px(p.X) + "; top: " + px(p.Y)
	if p.Width > 0 {
		style += "; width: " + px(p.Width)
	}
	if p.Height > 0 {
		style += "; height: " + px(p.Height)
	}
	div.Attr = []html.Attribute{
		{Key: "id", Val: p.ID},
		{Key: "class", Val: "panel"},
		{Key: "style", Val: style},
	}
	if p.Handle != "" {
		bar := element(atom.Div)
		bar.Attr = []html.Attribute{
			{Key: "id", Val: p.Handle},
			{Key: "class", Val: "panel-title"},
		}
		bar.AppendChild(&html.Node{Type: html.TextNode, Data: p.Title})
		div.AppendChild(bar)
	}
	return div
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func px(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "px"
}
