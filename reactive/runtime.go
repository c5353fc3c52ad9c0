package reactive

import mapset "github.com/deckarep/golang-set/v2"

// Scheduler provides the two entry points the runtime needs from its host
// event loop: Defer schedules a microtask (runs after the current task
// unwinds, before the next external task) and Post submits an external task
// from any goroutine.
//
// loop.Loop is the canonical implementation. ManualScheduler is a
// host-driven pump for embedding and tests.
type Scheduler interface {
	Defer(fn func())
	Post(fn func())
}

// ErrorHandler receives errors raised by effect bodies and cleanup callbacks
// that no scope-level handler claimed. It is the last stop before the error
// is dropped.
type ErrorHandler func(err error)

// Runtime is the explicit reactive context threaded through every
// constructor, in place of ambient globals. All of its state is owned by the
// scheduler's single task goroutine; it must not be shared across
// goroutines except through Scheduler.Post.
type Runtime struct {
	sched   Scheduler
	onError ErrorHandler

	// Current tracking state. Reads on cells subscribe runner only while
	// tracking is true. Both are saved and restored around every wrapped
	// execution, including error exits.
	runner   *Runner
	tracking bool

	// Scope stack. The top is the scope that accepts registrations.
	stack []*Scope

	// Scheduler queue: insertion-ordered pending runners, a membership set
	// for deduplication, and the single pending-flush flag.
	queue   []*Runner
	queued  mapset.Set[*Runner]
	pending bool
}

// NewRuntime creates a runtime driven by the given scheduler. onError may be
// nil, in which case unhandled callback errors are dropped.
func NewRuntime(sched Scheduler, onError ErrorHandler) *Runtime {
	return &Runtime{
		sched:   sched,
		onError: onError,
		queued:  mapset.NewSet[*Runner](),
	}
}

// Post submits fn as an external task on the runtime's scheduler. It is the
// only safe way to reach the runtime from another goroutine.
func (rt *Runtime) Post(fn func()) {
	rt.sched.Post(fn)
}

// withTracking executes fn with (runner, tracking) as the current tracking
// state, restoring the previous state on all exit paths.
func (rt *Runtime) withTracking(r *Runner, tracking bool, fn func() error) error {
	prevRunner := rt.runner
	prevTracking := rt.tracking
	defer func() {
		rt.runner = prevRunner
		rt.tracking = prevTracking
	}()

	rt.runner = r
	rt.tracking = tracking
	return fn()
}

// Untrack executes fn with tracking suspended: reads inside do not subscribe
// any outer runner. Nested calls compose, and the prior tracking state is
// restored even if fn returns an error.
func Untrack(rt *Runtime, fn func() error) error {
	return rt.withTracking(rt.runner, false, fn)
}

// UntrackValue is Untrack for callbacks that produce a value.
func UntrackValue[T any](rt *Runtime, fn func() (T, error)) (T, error) {
	var t T
	err := Untrack(rt, func() error {
		var err error
		t, err = fn()
		return err
	})
	return t, err
}

// Batch executes fn synchronously and returns its result. Writes already
// defer notification to the scheduler, so all cells written inside fn are
// notified to their subscribers in the single following flush; Batch exists
// for API symmetry with runtimes that need explicit coalescing.
func Batch[T any](rt *Runtime, fn func() (T, error)) (T, error) {
	return fn()
}

// Dependency is an opaque handle to a cell touched during a Collect pass.
type Dependency interface {
	dependency()
}

// Collect runs fn in tracking-but-discard mode: cells read during fn are
// recorded and returned in read order, but nothing is left subscribed and
// nothing ever re-runs. This is distinct from normal tracking and from
// Untrack; the rendering layer uses it to collect a child's dependencies
// without leaking them into a parent's subscription set.
func Collect(rt *Runtime, fn func() error) ([]Dependency, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}

	probe := &Runner{rt: rt}
	err := rt.withTracking(probe, true, fn)

	deps := make([]Dependency, 0, len(probe.sources))
	for _, src := range probe.sources {
		src.subs.Remove(probe)
		deps = append(deps, src)
	}
	probe.sources = nil
	probe.disposed = true
	return deps, err
}
