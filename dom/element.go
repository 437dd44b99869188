package dom

import "strings"

// Element represents an element in the DOM tree.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// TagName returns the tag name in uppercase.
func (e *Element) TagName() string {
	return strings.ToUpper(e.elementData.localName)
}

// LocalName returns the lowercase tag name.
func (e *Element) LocalName() string {
	return e.elementData.localName
}

// Id returns the id attribute value.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// SetId sets the id attribute value.
func (e *Element) SetId(id string) {
	e.SetAttribute("id", id)
}

// GetAttribute returns the value of the named attribute, or "".
func (e *Element) GetAttribute(name string) string {
	return e.elementData.attributes[strings.ToLower(name)]
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.elementData.attributes[strings.ToLower(name)]
	return ok
}

// AttributeNames returns attribute names in insertion order.
func (e *Element) AttributeNames() []string {
	return append([]string(nil), e.elementData.attrNames...)
}

// SetAttribute sets an attribute. Setting "style" re-parses the inline
// style declaration.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	e.setAttributeNoSync(name, value)
	if name == "style" && e.elementData.style != nil {
		e.elementData.style.RefreshFromAttribute()
	}
}

func (e *Element) setAttributeNoSync(name, value string) {
	ed := e.elementData
	if _, ok := ed.attributes[name]; !ok {
		ed.attrNames = append(ed.attrNames, name)
	}
	ed.attributes[name] = value
}

// RemoveAttribute removes the named attribute.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	e.removeAttributeNoSync(name)
	if name == "style" && e.elementData.style != nil {
		e.elementData.style.RefreshFromAttribute()
	}
}

func (e *Element) removeAttributeNoSync(name string) {
	ed := e.elementData
	if _, ok := ed.attributes[name]; !ok {
		return
	}
	delete(ed.attributes, name)
	for i, n := range ed.attrNames {
		if n == name {
			ed.attrNames = append(ed.attrNames[:i], ed.attrNames[i+1:]...)
			break
		}
	}
}

// Style returns the element's inline style declaration.
func (e *Element) Style() *CSSStyleDeclaration {
	if e.elementData.style == nil {
		e.elementData.style = NewCSSStyleDeclaration(e)
	}
	return e.elementData.style
}

// AppendChild appends child to this element.
func (e *Element) AppendChild(child *Node) *Node {
	return e.AsNode().AppendChild(child)
}

// Children returns the element children in document order.
func (e *Element) Children() []*Element {
	var out []*Element
	for _, c := range e.childNodes {
		if c.nodeType == ElementNode {
			out = append(out, (*Element)(c))
		}
	}
	return out
}

// TextContent returns the text of the element's descendants.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}

// AddEventListener registers fn for eventType on this element.
func (e *Element) AddEventListener(eventType string, fn EventListener, opts ...ListenerOptions) int {
	return e.AsNode().AddEventListener(eventType, fn, opts...)
}

// RemoveEventListener removes the listener with the given id.
func (e *Element) RemoveEventListener(eventType string, id int) {
	e.AsNode().RemoveEventListener(eventType, id)
}

// DispatchEvent dispatches ev at this element.
func (e *Element) DispatchEvent(ev *Event) bool {
	return e.AsNode().DispatchEvent(ev)
}
