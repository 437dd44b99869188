// Package html builds dom documents from HTML markup using
// golang.org/x/net/html as the underlying parser.
package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/chrisuehlinger/decafdrag/dom"
)

// Parse parses an HTML document from r.
func Parse(r io.Reader) (*dom.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc := dom.NewDocument()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := convert(doc, c); n != nil {
			doc.AppendChild(n)
		}
	}
	return doc, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*dom.Document, error) {
	return Parse(strings.NewReader(s))
}

// convert copies an x/net/html node and its subtree into doc. Doctypes
// and other unsupported nodes are dropped.
func convert(doc *dom.Document, n *html.Node) *dom.Node {
	switch n.Type {
	case html.ElementNode:
		el := doc.CreateElement(n.Data)
		for _, a := range n.Attr {
			el.SetAttribute(a.Key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(doc, c); child != nil {
				el.AppendChild(child)
			}
		}
		return el.AsNode()
	case html.TextNode:
		return doc.CreateTextNode(n.Data)
	case html.CommentNode:
		return doc.CreateComment(n.Data)
	default:
		return nil
	}
}
