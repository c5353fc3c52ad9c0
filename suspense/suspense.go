package suspense

import (
	"github.com/lumenui/lumen/dom"
	"github.com/lumenui/lumen/reactive"
)

// Suspense renders fallback until res settles, then swaps the region to
// content (or to errView when the producer failed; a nil errView renders
// nothing on failure). The swap is a normal dynamic-region re-render: the
// fallback's scope is disposed before the content is inserted.
func Suspense[T any](res *Resource[T], fallback dom.View, content func(T) dom.View, errView func(error) dom.View) dom.View {
	return dom.DynamicView(func() (dom.View, error) {
		st := res.State()
		switch {
		case st.Loading:
			return fallback, nil
		case st.Err != nil:
			if errView == nil {
				return dom.EmptyView(), nil
			}
			return errView(st.Err), nil
		default:
			return content(st.Value), nil
		}
	})
}

// Lazy defers producing a component until its first mount: load runs off
// the loop, fallback fills the region meanwhile. A failed load renders
// nothing.
func Lazy(load func() (dom.ComponentFunc, error), fallback dom.View) dom.ComponentFunc {
	return func(r *dom.Renderer) (dom.View, error) {
		res, err := NewResource(r.Runtime(), load)
		if err != nil {
			return dom.View{}, err
		}
		return Suspense(res, fallback, func(fn dom.ComponentFunc) dom.View {
			return dom.ComponentView(fn)
		}, nil), nil
	}
}

// Optimistic holds a confirmed value and an optional pending override, for
// UI that shows a local write before the authoritative result arrives.
type Optimistic[T any] struct {
	confirmed *reactive.Cell[T]
	pending   *reactive.Cell[*T]
}

// NewOptimistic creates an optimistic holder with the given confirmed
// value and no pending override.
func NewOptimistic[T any](rt *reactive.Runtime, initial T) *Optimistic[T] {
	return &Optimistic[T]{
		confirmed: reactive.NewCell(rt, initial),
		pending:   reactive.NewCell[*T](rt, nil),
	}
}

// Get returns the pending value when one is in flight, otherwise the
// confirmed value. Both reads subscribe the current tracking runner.
func (o *Optimistic[T]) Get() T {
	if p := o.pending.Get(); p != nil {
		return *p
	}
	return o.confirmed.Get()
}

// Begin installs v as the pending override.
func (o *Optimistic[T]) Begin(v T) {
	o.pending.Set(&v)
}

// Commit stores the authoritative value and clears any pending override.
func (o *Optimistic[T]) Commit(v T) {
	o.confirmed.Set(v)
	o.pending.Set(nil)
}

// Rollback drops the pending override, falling back to the confirmed
// value.
func (o *Optimistic[T]) Rollback() {
	o.pending.Set(nil)
}
