package reactive

// Reader is a zero-argument dependency reader for explicit-dependency
// effects. Whatever cells it touches become the effect's subscriptions.
type Reader func() any

// WatchFunc receives the freshly evaluated reader values.
type WatchFunc func(vals []any) (Cleanup, error)

// Watch creates a runner in explicit-dependency mode. On every execution
// the readers are evaluated in tracking mode, so the runner re-subscribes
// to exactly the cells the readers touch this time. Each returned value is
// compared against the cached value from the prior evaluation; fn is
// invoked (with the fresh values, untracked) only on the first run or when
// at least one value changed. Reads inside fn itself never subscribe.
//
// The cleanup sequence matches auto mode, but only around actual fn
// invocations: an execution whose values are all unchanged leaves the
// pending cleanup in place.
//
// Typed wrappers Watch1 through Watch8 live in watchn.go.
func Watch(rt *Runtime, deps []Reader, fn WatchFunc) (*Runner, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	if len(deps) == 0 {
		return nil, ErrNoDeps
	}
	for _, read := range deps {
		if read == nil {
			return nil, ErrNilCallback
		}
	}

	var (
		cached  []any
		pending Cleanup
		first   = true
	)

	// The dependency runner tracks only the readers; the wrapped fn runs
	// untracked inside it.
	runner, err := Effect(rt, func() (Cleanup, error) {
		vals := make([]any, len(deps))
		for i, read := range deps {
			vals[i] = read()
		}

		changed := first
		if !changed {
			for i := range vals {
				if !equalValues(cached[i], vals[i]) {
					changed = true
					break
				}
			}
		}
		first = false
		cached = vals

		if !changed {
			return nil, nil
		}

		if pending != nil {
			cleanup := pending
			pending = nil
			if err := cleanup(); err != nil {
				return nil, err
			}
		}

		return nil, Untrack(rt, func() error {
			cleanup, err := fn(vals)
			if err != nil {
				return err
			}
			pending = cleanup
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// The dependency runner never returns a Cleanup of its own, so the
	// pending user cleanup needs its own slot in the scope's list. It runs
	// before the runner teardown (reverse registration order).
	if err := OnCleanup(rt, func() error {
		if pending == nil {
			return nil
		}
		cleanup := pending
		pending = nil
		return cleanup()
	}); err != nil {
		return nil, err
	}

	return runner, nil
}
