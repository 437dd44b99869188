// Package dom provides a small in-memory document model: a node tree,
// element attributes, inline styles, event dispatch and window scrolling.
// It is the host surface draggable panels run against when no real
// renderer is attached.
package dom

import "strings"

// NodeType represents the type of a Node.
type NodeType uint16

const (
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	CommentNode  NodeType = 8
	DocumentNode NodeType = 9
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case TextNode:
		return "TEXT_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	default:
		return "UNKNOWN"
	}
}

// Node represents a node in the DOM tree.
type Node struct {
	nodeType   NodeType
	nodeName   string
	ownerDoc   *Document
	parentNode *Node
	childNodes []*Node

	// Text and comment content.
	data string

	elementData  *elementData
	documentData *documentData

	events *EventTarget
}

// elementData holds data specific to Element nodes.
type elementData struct {
	localName  string
	attrNames  []string
	attributes map[string]string
	style      *CSSStyleDeclaration
}

// documentData holds data specific to Document nodes.
type documentData struct {
	scrollX float64
	scrollY float64
}

func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		ownerDoc: ownerDoc,
		events:   NewEventTarget(),
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the tag name in uppercase for elements, or "#text",
// "#comment" and "#document" for the other node types.
func (n *Node) NodeName() string {
	if n.nodeType == ElementNode {
		return strings.ToUpper(n.nodeName)
	}
	return n.nodeName
}

// OwnerDocument returns the document this node belongs to.
func (n *Node) OwnerDocument() *Document {
	return n.ownerDoc
}

// ParentNode returns the parent, or nil for a detached node or the document.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ParentElement returns the parent if it is an element.
func (n *Node) ParentElement() *Element {
	if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
		return (*Element)(n.parentNode)
	}
	return nil
}

// ChildNodes returns a copy of the child list.
func (n *Node) ChildNodes() []*Node {
	return append([]*Node(nil), n.childNodes...)
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.childNodes) == 0 {
		return nil
	}
	return n.childNodes[0]
}

// TextContent returns the concatenated text of this node and its descendants.
func (n *Node) TextContent() string {
	if n.nodeType == TextNode || n.nodeType == CommentNode {
		return n.data
	}
	var sb strings.Builder
	n.collectText(&sb)
	return sb.String()
}

func (n *Node) collectText(sb *strings.Builder) {
	for _, c := range n.childNodes {
		if c.nodeType == TextNode {
			sb.WriteString(c.data)
		} else if c.nodeType == ElementNode {
			c.collectText(sb)
		}
	}
}

// AppendChild moves child to the end of n's children and returns it.
// Appending an ancestor of n is ignored.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil || child.isInclusiveAncestorOf(n) {
		return child
	}
	if child.parentNode != nil {
		child.parentNode.RemoveChild(child)
	}
	child.parentNode = n
	child.ownerDoc = n.ownerDocForChildren()
	n.childNodes = append(n.childNodes, child)
	return child
}

// RemoveChild detaches child from n. It returns nil if child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.childNodes {
		if c == child {
			n.childNodes = append(n.childNodes[:i], n.childNodes[i+1:]...)
			child.parentNode = nil
			return child
		}
	}
	return nil
}

func (n *Node) ownerDocForChildren() *Document {
	if n.nodeType == DocumentNode {
		return (*Document)(n)
	}
	return n.ownerDoc
}

func (n *Node) isInclusiveAncestorOf(other *Node) bool {
	for p := other; p != nil; p = p.parentNode {
		if p == n {
			return true
		}
	}
	return false
}

// AddEventListener registers fn for eventType on this node.
func (n *Node) AddEventListener(eventType string, fn EventListener, opts ...ListenerOptions) int {
	return n.events.AddEventListener(eventType, fn, opts...)
}

// RemoveEventListener removes the listener with the given id.
func (n *Node) RemoveEventListener(eventType string, id int) {
	n.events.RemoveEventListener(eventType, id)
}

// DispatchEvent dispatches ev with this node as its target. It returns
// false if a listener called PreventDefault on a cancelable event.
func (n *Node) DispatchEvent(ev *Event) bool {
	return dispatch(n, ev)
}
