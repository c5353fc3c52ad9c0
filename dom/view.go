package dom

// ViewKind is the explicit discriminant of the renderable union. A callable
// carried by a View is either a plain reactive reader (ViewReader), a
// pre-built renderable thunk (ViewComponent), or a re-rendered region thunk
// (ViewDynamic); the distinction is resolved once at construction and never
// inferred at consumption sites.
type ViewKind uint8

const (
	// ViewEmpty renders nothing.
	ViewEmpty ViewKind = iota
	// ViewText renders a static text node.
	ViewText
	// ViewNode adopts an existing node.
	ViewNode
	// ViewReader renders a text node bound to a reactive reader via an
	// auto-tracked effect.
	ViewReader
	// ViewComponent executes a component function inside a fresh scope
	// delimited by a boundary marker pair. The thunk is never treated as a
	// reactive read.
	ViewComponent
	// ViewDynamic renders a region that is disposed and re-rendered
	// whenever the cells read by its thunk change.
	ViewDynamic
	// ViewFragment renders a sequence of child views.
	ViewFragment
	// ViewElement renders an element node with child views inside it.
	ViewElement
)

// ComponentFunc produces a component's content. It runs with the
// component's scope current, so effects and cleanups created inside attach
// to the component's lifetime.
type ComponentFunc func(r *Renderer) (View, error)

// View is the renderable tagged union handed to Mount and returned by
// components.
type View struct {
	kind      ViewKind
	text      string
	node      *Node
	reader    func() string
	component ComponentFunc
	dynamic   func() (View, error)
	children  []View
}

// Kind returns the view's discriminant.
func (v View) Kind() ViewKind { return v.kind }

// EmptyView renders nothing.
func EmptyView() View {
	return View{kind: ViewEmpty}
}

// TextView renders s as a static text node.
func TextView(s string) View {
	return View{kind: ViewText, text: s}
}

// NodeView adopts n into the output tree.
func NodeView(n *Node) View {
	return View{kind: ViewNode, node: n}
}

// ReaderView binds a text node to fn: the node's content follows whatever
// fn returns, re-evaluated when the cells it reads change.
func ReaderView(fn func() string) View {
	return View{kind: ViewReader, reader: fn}
}

// ComponentView wraps a pre-built renderable unit.
func ComponentView(fn ComponentFunc) View {
	return View{kind: ViewComponent, component: fn}
}

// DynamicView renders fn's result between a marker pair and re-renders the
// region (disposing the previous content's scope first) when any cell read
// by fn changes. Conditionals, switches and keyed lists are built from
// this.
func DynamicView(fn func() (View, error)) View {
	return View{kind: ViewDynamic, dynamic: fn}
}

// FragmentView renders the given views in order.
func FragmentView(children ...View) View {
	return View{kind: ViewFragment, children: children}
}

// ElementView builds an element node with the given children rendered
// inside it.
func ElementView(tag string, children ...View) View {
	return View{kind: ViewElement, text: tag, children: children}
}
