package reactive

import (
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// cellBase carries the type-erased subscriber bookkeeping shared by Cell and
// Memo. The subscriber set holds exactly the runners whose most recent
// execution read this cell while tracking was active.
type cellBase struct {
	rt *Runtime

	// It's a set because a cell read multiple times inside one runner must
	// still enqueue that runner only once when the value changes.
	subs mapset.Set[*Runner]
}

func newCellBase(rt *Runtime) cellBase {
	return cellBase{
		rt:   rt,
		subs: mapset.NewSet[*Runner](),
	}
}

func (b *cellBase) dependency() {}

// track registers the current tracking runner, if any, as a subscriber and
// records this cell's subscriber set on the runner so a later run can
// unsubscribe.
func (b *cellBase) track() {
	if !b.rt.tracking || b.rt.runner == nil {
		return
	}
	b.subs.Add(b.rt.runner)
	b.rt.runner.record(b)
}

// notify enqueues every current subscriber. The actual re-runs happen in the
// next scheduled flush.
func (b *cellBase) notify() {
	for r := range b.subs.Iter() {
		b.rt.enqueue(r)
	}
}

// Cell is a mutable, subscribable value holder: the atomic unit of
// reactivity. Reading it during a tracked execution subscribes the current
// runner; writing it enqueues subscribers into the scheduler.
type Cell[T any] struct {
	base   cellBase
	value  T
	equals func(prev, next T) bool
}

// NewCell creates a cell holding initial.
func NewCell[T any](rt *Runtime, initial T) *Cell[T] {
	return &Cell[T]{
		base:  newCellBase(rt),
		value: initial,
	}
}

// WithEquals configures a custom equality function used to decide whether a
// write changed the value. The default compares with == for common
// comparable kinds and reflect.DeepEqual otherwise.
func (c *Cell[T]) WithEquals(fn func(prev, next T) bool) *Cell[T] {
	c.equals = fn
	return c
}

// Get returns the current value, subscribing the current tracking runner.
func (c *Cell[T]) Get() T {
	c.base.track()
	return c.value
}

// Peek returns the current value without subscribing anyone.
func (c *Cell[T]) Peek() T {
	return c.value
}

// Set stores next and, if it differs from the previous value, enqueues every
// current subscriber. The comparison is always against the value before
// assignment. Writes never fail.
func (c *Cell[T]) Set(next T) {
	changed := !c.equal(c.value, next)
	if changed {
		c.base.notify()
	}
	c.value = next
}

// Update applies fn to the previous value and stores the result, with the
// same notification rule as Set.
func (c *Cell[T]) Update(fn func(prev T) T) {
	c.Set(fn(c.value))
}

func (c *Cell[T]) equal(prev, next T) bool {
	if c.equals != nil {
		return c.equals(prev, next)
	}
	return equalValues(prev, next)
}

// equalValues compares two values with == fast paths for the common
// comparable kinds and reflect.DeepEqual for everything else. Function
// values never compare equal (unless both nil, per DeepEqual), so assigning
// a function always notifies.
func equalValues(prev, next any) bool {
	switch p := prev.(type) {
	case int:
		n, ok := next.(int)
		return ok && p == n
	case int64:
		n, ok := next.(int64)
		return ok && p == n
	case uint64:
		n, ok := next.(uint64)
		return ok && p == n
	case float64:
		n, ok := next.(float64)
		return ok && p == n
	case string:
		n, ok := next.(string)
		return ok && p == n
	case bool:
		n, ok := next.(bool)
		return ok && p == n
	default:
		return reflect.DeepEqual(prev, next)
	}
}
