package dom

import "strings"

// Document represents the entire document. It also carries the window
// scroll offsets.
type Document Node

// NewDocument creates an empty document.
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document", nil)
	node.documentData = &documentData{}
	doc := (*Document)(node)
	node.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// CreateElement creates a detached element owned by d.
func (d *Document) CreateElement(tagName string) *Element {
	n := newNode(ElementNode, strings.ToLower(tagName), d)
	n.elementData = &elementData{
		localName:  strings.ToLower(tagName),
		attributes: make(map[string]string),
	}
	return (*Element)(n)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) *Node {
	n := newNode(TextNode, "#text", d)
	n.data = data
	return n
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) *Node {
	n := newNode(CommentNode, "#comment", d)
	n.data = data
	return n
}

// AppendChild appends child to the document.
func (d *Document) AppendChild(child *Node) *Node {
	return d.AsNode().AppendChild(child)
}

// DocumentElement returns the root element, or nil.
func (d *Document) DocumentElement() *Element {
	for _, c := range d.childNodes {
		if c.nodeType == ElementNode {
			return (*Element)(c)
		}
	}
	return nil
}

// Body returns the body element, or nil.
func (d *Document) Body() *Element {
	root := d.DocumentElement()
	if root == nil {
		return nil
	}
	for _, c := range root.Children() {
		if c.LocalName() == "body" {
			return c
		}
	}
	return nil
}

// GetElementById returns the first element in tree order with the given
// id. An empty id never matches.
func (d *Document) GetElementById(id string) *Element {
	if id == "" {
		return nil
	}
	return findElementById(d.AsNode(), id)
}

func findElementById(node *Node, id string) *Element {
	for _, child := range node.childNodes {
		if child.nodeType != ElementNode {
			continue
		}
		el := (*Element)(child)
		if el.Id() == id {
			return el
		}
		if result := findElementById(child, id); result != nil {
			return result
		}
	}
	return nil
}

// ScrollX returns the horizontal scroll offset.
func (d *Document) ScrollX() float64 {
	return d.documentData.scrollX
}

// ScrollY returns the vertical scroll offset.
func (d *Document) ScrollY() float64 {
	return d.documentData.scrollY
}

// ScrollTo sets both scroll offsets. Negative values are clamped to zero.
func (d *Document) ScrollTo(x, y float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	d.documentData.scrollX = x
	d.documentData.scrollY = y
}

// AddEventListener registers a document-level listener.
func (d *Document) AddEventListener(eventType string, fn EventListener, opts ...ListenerOptions) int {
	return d.AsNode().AddEventListener(eventType, fn, opts...)
}

// RemoveEventListener removes a document-level listener.
func (d *Document) RemoveEventListener(eventType string, id int) {
	d.AsNode().RemoveEventListener(eventType, id)
}

// DispatchEvent dispatches ev at the document.
func (d *Document) DispatchEvent(ev *Event) bool {
	return d.AsNode().DispatchEvent(ev)
}
