package dom

import (
	"errors"
	"fmt"

	"github.com/lumenui/lumen/reactive"
)

// Usage errors for boundary and mount operations.
var (
	// ErrNilAnchor indicates a nil anchor was passed to a boundary
	// operation.
	ErrNilAnchor = errors.New("nil boundary anchor")

	// ErrAnchorMismatch indicates start and end anchors with different
	// parents.
	ErrAnchorMismatch = errors.New("boundary anchors have different parents")
)

// region pairs an end anchor with the scope owning the content between the
// anchors.
type region struct {
	end   *Node
	scope *reactive.Scope
}

// Renderer mounts views into a node tree and maps boundary markers to
// scopes, so removing a subtree region runs that region's cleanups (and its
// descendants') before any content is detached.
type Renderer struct {
	rt *reactive.Runtime

	// bounds maps a start anchor to its region. The association is deleted
	// once cleanups have run, which is what makes re-disposal a no-op.
	bounds map[*Node]*region
}

// NewRenderer creates a renderer over rt.
func NewRenderer(rt *reactive.Runtime) *Renderer {
	return &Renderer{
		rt:     rt,
		bounds: map[*Node]*region{},
	}
}

// Runtime returns the reactive runtime the renderer mounts against.
func (r *Renderer) Runtime() *reactive.Runtime { return r.rt }

// MarkBoundary associates the start anchor with its end anchor and owning
// scope, so a later disposal walk over an enclosing region finds and cleans
// the scope.
func (r *Renderer) MarkBoundary(start, end *Node, scope *reactive.Scope) error {
	if start == nil || end == nil {
		return ErrNilAnchor
	}
	if scope == nil {
		return reactive.ErrNoScope
	}
	r.bounds[start] = &region{end: end, scope: scope}
	return nil
}

// DisposeBetween runs the cleanups of every boundary recorded strictly
// between the two anchors, descendants included, and then detaches the
// content. Cleanups always complete before any node is removed, so no
// runner observes a half-removed tree. The anchors themselves stay in
// place. Safe on a region with no recorded boundaries (content is still
// detached) and idempotent once the region is empty.
func (r *Renderer) DisposeBetween(start, end *Node) error {
	if start == nil || end == nil {
		return ErrNilAnchor
	}
	if start.Parent() != end.Parent() {
		return ErrAnchorMismatch
	}

	for n := start.next; n != nil && n != end; n = n.next {
		r.disposeTree(n)
	}
	for n := start.next; n != nil && n != end; {
		next := n.next
		n.Remove()
		n = next
	}
	return nil
}

// DisposeAll is the DisposeBetween walk applied to every child of root,
// used when replacing a top-level mount.
func (r *Renderer) DisposeAll(root *Node) error {
	if root == nil {
		return ErrNilAnchor
	}
	for n := root.first; n != nil; n = n.next {
		r.disposeTree(n)
	}
	for n := root.first; n != nil; {
		next := n.next
		n.Remove()
		n = next
	}
	return nil
}

// disposeTree runs the boundary cleanups for n and all of its descendants,
// without detaching anything. Disposing a scope also disposes its nested
// scopes, so a descendant boundary found afterwards holds an
// already-disposed scope and its Dispose call is a no-op; only the
// association removal matters then.
func (r *Renderer) disposeTree(n *Node) {
	if reg, ok := r.bounds[n]; ok {
		delete(r.bounds, n)
		reg.scope.Dispose()
	}
	for c := n.first; c != nil; c = c.next {
		r.disposeTree(c)
	}
}

// Mount renders v at the end of parent, delimited by a fresh marker pair
// owned by a new scope. The returned scope disposes the whole mount;
// DisposeAll(parent) reaches it too.
func (r *Renderer) Mount(parent *Node, v View) (*reactive.Scope, error) {
	start := Marker("mount")
	end := Marker("/mount")
	parent.AppendChild(start)
	parent.AppendChild(end)

	scope := r.rt.PushScope()
	err := r.render(parent, end, v)
	r.rt.PopScope()
	if err != nil {
		return nil, err
	}
	if err := r.MarkBoundary(start, end, scope); err != nil {
		return nil, err
	}
	return scope, nil
}

// render inserts v into parent immediately before the anchor (nil appends).
func (r *Renderer) render(parent, before *Node, v View) error {
	switch v.kind {
	case ViewEmpty:
		return nil

	case ViewText:
		parent.InsertBefore(Text(v.text), before)
		return nil

	case ViewNode:
		if v.node != nil {
			parent.InsertBefore(v.node, before)
		}
		return nil

	case ViewElement:
		el := Element(v.text)
		parent.InsertBefore(el, before)
		for _, child := range v.children {
			if err := r.render(el, nil, child); err != nil {
				return err
			}
		}
		return nil

	case ViewFragment:
		for _, child := range v.children {
			if err := r.render(parent, before, child); err != nil {
				return err
			}
		}
		return nil

	case ViewReader:
		return r.renderReader(parent, before, v.reader)

	case ViewComponent:
		return r.renderComponent(parent, before, v.component)

	case ViewDynamic:
		return r.renderDynamic(parent, before, v.dynamic)

	default:
		return fmt.Errorf("unknown view kind %d", v.kind)
	}
}

// renderReader binds a text node to the reader through an auto-tracked
// effect owned by the current scope.
func (r *Renderer) renderReader(parent, before *Node, read func() string) error {
	if read == nil {
		return reactive.ErrNilCallback
	}
	tn := Text("")
	parent.InsertBefore(tn, before)

	_, err := reactive.Effect(r.rt, func() (reactive.Cleanup, error) {
		tn.SetText(read())
		return nil, nil
	})
	return err
}

// renderComponent executes the component inside a fresh scope between its
// own marker pair, then records the boundary.
func (r *Renderer) renderComponent(parent, before *Node, fn ComponentFunc) error {
	if fn == nil {
		return reactive.ErrNilCallback
	}
	start := Marker("c")
	end := Marker("/c")
	parent.InsertBefore(start, before)
	parent.InsertBefore(end, before)

	scope := r.rt.PushScope()
	v, err := fn(r)
	if err == nil {
		err = r.render(parent, end, v)
	}
	r.rt.PopScope()
	if err != nil {
		return err
	}
	return r.MarkBoundary(start, end, scope)
}

// renderDynamic re-renders the region between its markers whenever the
// cells read by the thunk change. The thunk is evaluated in tracking mode;
// the commit pass that builds nodes runs untracked, so a child's reads do
// not leak into the region's subscription set.
func (r *Renderer) renderDynamic(parent, before *Node, fn func() (View, error)) error {
	if fn == nil {
		return reactive.ErrNilCallback
	}
	start := Marker("dyn")
	end := Marker("/dyn")
	parent.InsertBefore(start, before)
	parent.InsertBefore(end, before)

	owner := r.rt.CurrentScope()
	if owner == nil {
		return reactive.ErrNoScope
	}

	// The current content scope is held here, not only in the bounds map:
	// DisposeBetween walks strictly between the anchors, so it never sees
	// the boundary keyed on this region's own start anchor.
	var content *reactive.Scope

	_, err := reactive.Effect(r.rt, func() (reactive.Cleanup, error) {
		// The anchors may have been detached by an ancestor disposal that
		// raced a scheduled re-run; rendering into a detached region would
		// be useless work.
		if start.Parent() == nil {
			return nil, nil
		}

		v, err := fn()
		if err != nil {
			return nil, err
		}

		return nil, reactive.Untrack(r.rt, func() error {
			return reactive.RunInScope(r.rt, owner, func() error {
				if content != nil {
					content.Dispose()
				}
				if err := r.DisposeBetween(start, end); err != nil {
					return err
				}
				content = r.rt.PushScope()
				err := r.render(start.Parent(), end, v)
				r.rt.PopScope()
				if err != nil {
					return err
				}
				return r.MarkBoundary(start, end, content)
			})
		})
	})
	return err
}
