// Package dom implements the output-tree side of the runtime: a minimal
// retained node tree (ordered siblings, parent/child traversal), boundary
// markers pairing regions of that tree with reactive scopes, and the
// mount/dispose walks the control-flow components are built on. It does not
// materialize a real rendering target; it only provides the ordering and
// traversal the reconciliation layer needs.
package dom

// NodeKind discriminates the three node shapes.
type NodeKind uint8

const (
	// KindElement is a named container node.
	KindElement NodeKind = iota
	// KindText is a leaf holding a string.
	KindText
	// KindMarker is an invisible sentinel used as a boundary anchor.
	KindMarker
)

// Node is a tree node with ordered children. The zero value is not usable;
// use the constructors.
type Node struct {
	kind NodeKind
	tag  string
	text string

	parent      *Node
	prev, next  *Node
	first, last *Node
}

// Element creates a container node with the given tag name.
func Element(tag string) *Node {
	return &Node{kind: KindElement, tag: tag}
}

// Text creates a leaf node holding s.
func Text(s string) *Node {
	return &Node{kind: KindText, text: s}
}

// Marker creates a sentinel node. The label is only for debugging.
func Marker(label string) *Node {
	return &Node{kind: KindMarker, tag: label}
}

// Kind returns the node's shape.
func (n *Node) Kind() NodeKind { return n.kind }

// Tag returns the element tag (or marker label).
func (n *Node) Tag() string { return n.tag }

// Text returns the text content of a text node.
func (n *Node) Text() string { return n.text }

// SetText replaces the text content.
func (n *Node) SetText(s string) { n.text = s }

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node { return n.first }

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node { return n.last }

// PrevSibling returns the previous sibling, or nil.
func (n *Node) PrevSibling() *Node { return n.prev }

// NextSibling returns the next sibling, or nil.
func (n *Node) NextSibling() *Node { return n.next }

// AppendChild detaches child from its current parent and appends it as the
// last child of n.
func (n *Node) AppendChild(child *Node) {
	n.InsertBefore(child, nil)
}

// InsertBefore detaches child from its current parent and inserts it as a
// child of n immediately before ref. A nil ref appends.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == nil || child == n {
		return
	}
	child.Remove()

	child.parent = n
	if ref == nil {
		child.prev = n.last
		if n.last != nil {
			n.last.next = child
		} else {
			n.first = child
		}
		n.last = child
		return
	}

	child.next = ref
	child.prev = ref.prev
	if ref.prev != nil {
		ref.prev.next = child
	} else {
		n.first = child
	}
	ref.prev = child
}

// Remove detaches n from its parent. Detaching an already-detached node is
// a no-op.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		p.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		p.last = n.prev
	}
	n.parent = nil
	n.prev = nil
	n.next = nil
}

// Render flattens the subtree to a string, for inspection and tests.
// Elements render as <tag>children</tag>, markers render as nothing.
func (n *Node) Render() string {
	switch n.kind {
	case KindText:
		return n.text
	case KindMarker:
		return ""
	default:
		out := "<" + n.tag + ">"
		for c := n.first; c != nil; c = c.next {
			out += c.Render()
		}
		return out + "</" + n.tag + ">"
	}
}
