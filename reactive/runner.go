package reactive

// Cleanup is a callback stored by an effect run and invoked before the next
// run, or once at final disposal.
type Cleanup func() error

// EffectFunc is an effect body. A non-nil returned Cleanup is stored as the
// pending cleanup for the next run.
type EffectFunc func() (Cleanup, error)

// Runner wraps an effect body and owns its subscription bookkeeping. At any
// time the runner is a member of exactly the subscriber sets of cells it
// read during its most recent execution; stale memberships are removed
// before re-subscribing.
type Runner struct {
	rt *Runtime
	fn EffectFunc

	// scope that owns this runner; errors bubble from here.
	scope *Scope

	// cleanup is the user cleanup returned by the previous run.
	cleanup Cleanup

	// sources are the subscriber sets touched during the most recent run,
	// in read order.
	sources []*cellBase

	disposed bool
}

// Effect creates a runner in auto-tracked mode and executes it synchronously
// once. Cells read during each execution subscribe the runner; a write to
// any of them re-runs it in the next flush. The runner's teardown is
// registered as a cleanup on the current scope.
//
// An error returned by the first execution that no scope error handler
// claims is returned to the caller. Errors from later, scheduled executions
// are routed to the handler chain and never re-raised.
func Effect(rt *Runtime, fn EffectFunc) (*Runner, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	scope := rt.CurrentScope()
	if scope == nil {
		return nil, ErrNoScope
	}

	r := &Runner{rt: rt, fn: fn, scope: scope}
	if err := scope.onCleanup(r.dispose); err != nil {
		return nil, err
	}

	if err := r.run(); err != nil {
		return nil, err
	}
	return r, nil
}

// record notes that this runner was added to src's subscriber set during the
// current run.
func (r *Runner) record(src *cellBase) {
	for _, s := range r.sources {
		if s == src {
			return
		}
	}
	r.sources = append(r.sources, src)
}

// unsubscribe removes the runner from every subscriber set touched by the
// previous run.
func (r *Runner) unsubscribe() {
	for _, src := range r.sources {
		src.subs.Remove(r)
	}
	r.sources = r.sources[:0]
}

// runCleanup invokes and clears the pending user cleanup.
func (r *Runner) runCleanup() error {
	if r.cleanup == nil {
		return nil
	}
	cleanup := r.cleanup
	r.cleanup = nil
	return cleanup()
}

// run executes the body: previous cleanup first, then stale unsubscription,
// then the body with this runner as the current tracking context. The
// returned error has already been offered to the scope handler chain; it is
// non-nil only when nothing claimed it.
func (r *Runner) run() error {
	if r.disposed {
		return nil
	}

	if err := r.runCleanup(); err != nil {
		if !r.rt.handleError(r.scope, err) {
			return err
		}
	}

	r.unsubscribe()

	err := r.rt.withTracking(r, true, func() error {
		cleanup, err := r.fn()
		if err != nil {
			return err
		}
		r.cleanup = cleanup
		return nil
	})
	if err != nil && !r.rt.handleError(r.scope, err) {
		return err
	}
	return nil
}

// invoke is the scheduler entry point: like run, but any unclaimed error is
// handed to the runtime handler so one failing runner cannot break a flush.
func (r *Runner) invoke() {
	if err := r.run(); err != nil && r.rt.onError != nil {
		r.rt.onError(err)
	}
}

// dispose unsubscribes from all tracked sets and invokes any pending user
// cleanup. It is idempotent and is registered as the owning scope's cleanup.
func (r *Runner) dispose() error {
	if r.disposed {
		return nil
	}
	r.disposed = true
	r.unsubscribe()
	return r.runCleanup()
}
