// Package suspense coordinates promises-shaped async work with the
// reactive runtime: resources run a producer off the loop and marshal the
// settlement back in through the scheduler, and the Suspense/Lazy helpers
// turn a resource into a placeholder region that swaps to real content when
// the producer settles. A rejected producer resolves to the zero value with
// the error recorded, never leaving a region pending forever.
package suspense

import (
	"github.com/lumenui/lumen/reactive"
)

// State is a resource's observable condition. While Loading, Value and Err
// hold their zero values.
type State[T any] struct {
	Loading bool
	Value   T
	Err     error
}

// Resource kicks off a producer and exposes its settlement reactively.
type Resource[T any] struct {
	rt   *reactive.Runtime
	cell *reactive.Cell[State[T]]
}

// NewResource starts fetch on its own goroutine and posts the settlement
// back through the runtime's scheduler, so the state cell is only ever
// written on the loop. There is no cancellation: disposing the scope that
// consumes the resource does not abort fetch, it only makes the settlement
// invisible.
func NewResource[T any](rt *reactive.Runtime, fetch func() (T, error)) (*Resource[T], error) {
	if fetch == nil {
		return nil, reactive.ErrNilCallback
	}

	res := &Resource[T]{
		rt:   rt,
		cell: reactive.NewCell(rt, State[T]{Loading: true}),
	}

	go func() {
		v, err := fetch()
		rt.Post(func() {
			res.cell.Set(State[T]{Value: v, Err: err})
		})
	}()

	return res, nil
}

// Resolved creates an already-settled resource, useful for tests and for
// code paths that sometimes have the value synchronously.
func Resolved[T any](rt *reactive.Runtime, v T) *Resource[T] {
	return &Resource[T]{
		rt:   rt,
		cell: reactive.NewCell(rt, State[T]{Value: v}),
	}
}

// State returns the current state, subscribing the current tracking runner.
func (r *Resource[T]) State() State[T] {
	return r.cell.Get()
}

// Loading reports whether the producer has settled yet, subscribing the
// current tracking runner.
func (r *Resource[T]) Loading() bool {
	return r.cell.Get().Loading
}
