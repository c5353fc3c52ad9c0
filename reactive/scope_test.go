package reactive_test

import (
	"errors"
	"testing"

	"github.com/lumenui/lumen/reactive"
	"github.com/stretchr/testify/assert"
)

// should run cleanups in reverse registration order
func TestScopeCleanupLIFO(t *testing.T) {
	rt, _ := newTestRuntime(t)

	var order []string
	err := reactive.Root(rt, func(dispose func()) error {
		for _, name := range []string{"a", "b", "c"} {
			name := name
			if err := reactive.OnCleanup(rt, func() error {
				order = append(order, name)
				return nil
			}); err != nil {
				return err
			}
		}
		dispose()
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

// should dispose children before own cleanups, in reverse creation order
func TestScopeChildrenDisposeFirst(t *testing.T) {
	rt, _ := newTestRuntime(t)

	var order []string
	err := reactive.Root(rt, func(dispose func()) error {
		if err := reactive.OnCleanup(rt, func() error {
			order = append(order, "parent")
			return nil
		}); err != nil {
			return err
		}

		for _, name := range []string{"child1", "child2"} {
			name := name
			rt.PushScope()
			err := reactive.OnCleanup(rt, func() error {
				order = append(order, name)
				return nil
			})
			rt.PopScope()
			if err != nil {
				return err
			}
		}

		dispose()
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"child2", "child1", "parent"}, order)
}

// should make a second dispose a no-op and reject late registrations
func TestScopeDisposeIdempotent(t *testing.T) {
	rt, _ := newTestRuntime(t)

	count := 0
	err := reactive.Root(rt, func(dispose func()) error {
		if err := reactive.OnCleanup(rt, func() error {
			count++
			return nil
		}); err != nil {
			return err
		}
		dispose()
		dispose()

		err := reactive.OnCleanup(rt, func() error { return nil })
		assert.ErrorIs(t, err, reactive.ErrScopeDisposed)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

// should keep disposing remaining cleanups when one fails
func TestScopeCleanupFailureIsolated(t *testing.T) {
	sched := reactive.NewManualScheduler()
	var fallback []error
	rt := reactive.NewRuntime(sched, func(err error) {
		fallback = append(fallback, err)
	})

	boom := errors.New("boom")
	var order []string
	err := reactive.Root(rt, func(dispose func()) error {
		if err := reactive.OnCleanup(rt, func() error {
			order = append(order, "first")
			return nil
		}); err != nil {
			return err
		}
		if err := reactive.OnCleanup(rt, func() error {
			return boom
		}); err != nil {
			return err
		}
		dispose()
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"first"}, order)
	assert.Equal(t, []error{boom}, fallback)
}

// should deliver a cleanup's error to the disposing scope's own handler
func TestScopeCleanupErrorSeenByOwnHandler(t *testing.T) {
	sched := reactive.NewManualScheduler()
	var fallback []error
	rt := reactive.NewRuntime(sched, func(err error) {
		fallback = append(fallback, err)
	})

	boom := errors.New("boom")
	var own, parent []error
	err := reactive.Root(rt, func(dispose func()) error {
		if err := reactive.OnError(rt, func(err error) {
			parent = append(parent, err)
		}); err != nil {
			return err
		}

		child := rt.PushScope()
		if err := reactive.OnError(rt, func(err error) {
			own = append(own, err)
		}); err != nil {
			return err
		}
		if err := reactive.OnCleanup(rt, func() error {
			return boom
		}); err != nil {
			return err
		}
		rt.PopScope()

		child.Dispose()
		return nil
	})
	assert.NoError(t, err)

	assert.Equal(t, []error{boom}, own)
	assert.Empty(t, parent)
	assert.Empty(t, fallback)
}

// should register against a re-entered scope via RunInScope
func TestRunInScope(t *testing.T) {
	rt, _ := newTestRuntime(t)

	var kept *reactive.Scope
	err := reactive.Root(rt, func(dispose func()) error {
		kept = rt.CurrentScope()
		return nil
	})
	assert.NoError(t, err)
	assert.NotNil(t, kept)

	// the root's body has returned; re-enter it later
	ran := false
	err = reactive.RunInScope(rt, kept, func() error {
		assert.Same(t, kept, rt.CurrentScope())
		return reactive.OnCleanup(rt, func() error {
			ran = true
			return nil
		})
	})
	assert.NoError(t, err)
	assert.Nil(t, rt.CurrentScope())

	kept.Dispose()
	assert.True(t, ran)

	err = reactive.RunInScope(rt, kept, func() error { return nil })
	assert.ErrorIs(t, err, reactive.ErrScopeDisposed)
}

// should keep a root alive when the surrounding scope disposes
func TestRootSurvivesParentDisposal(t *testing.T) {
	rt, sched := newTestRuntime(t)

	a := reactive.NewCell(rt, 0)
	runs := 0
	var freeRoot func()

	err := reactive.Root(rt, func(disposeOuter func()) error {
		err := reactive.Root(rt, func(dispose func()) error {
			freeRoot = dispose
			_, err := reactive.Effect(rt, func() (reactive.Cleanup, error) {
				runs++
				a.Get()
				return nil, nil
			})
			return err
		})
		if err != nil {
			return err
		}

		disposeOuter()
		return nil
	})
	assert.NoError(t, err)

	// the inner root's effect outlived the outer disposal
	a.Set(1)
	sched.Flush()
	assert.Equal(t, 2, runs)

	freeRoot()
	a.Set(2)
	sched.Flush()
	assert.Equal(t, 2, runs)
}

// should read the nearest provided context value, bubbling through parents
func TestContextProvideRead(t *testing.T) {
	rt, _ := newTestRuntime(t)

	theme := reactive.NewContextKey(t.Name()+".theme", "light")
	assert.Equal(t, "light", theme.Read(rt))

	err := reactive.Root(rt, func(dispose func()) error {
		if err := theme.Provide(rt, "dark"); err != nil {
			return err
		}

		rt.PushScope()
		defer rt.PopScope()
		assert.Equal(t, "dark", theme.Read(rt))

		if err := theme.Provide(rt, "solar"); err != nil {
			return err
		}
		assert.Equal(t, "solar", theme.Read(rt))
		return nil
	})
	assert.NoError(t, err)

	err = theme.Provide(rt, "nope")
	assert.ErrorIs(t, err, reactive.ErrNoScope)
}

// should call every handler in the nearest scope that has any, and stop there
func TestOnErrorNearestScopeWins(t *testing.T) {
	sched := reactive.NewManualScheduler()
	rt := reactive.NewRuntime(sched, func(err error) {
		t.Fatalf("fallback reached: %v", err)
	})

	boom := errors.New("boom")
	a := reactive.NewCell(rt, 0)
	var outer, inner1, inner2 []error

	err := reactive.Root(rt, func(dispose func()) error {
		if err := reactive.OnError(rt, func(err error) {
			outer = append(outer, err)
		}); err != nil {
			return err
		}

		rt.PushScope()
		defer rt.PopScope()
		if err := reactive.OnError(rt, func(err error) {
			inner1 = append(inner1, err)
		}); err != nil {
			return err
		}
		if err := reactive.OnError(rt, func(err error) {
			inner2 = append(inner2, err)
		}); err != nil {
			return err
		}

		_, err := reactive.Effect(rt, func() (reactive.Cleanup, error) {
			if a.Get() > 0 {
				return nil, boom
			}
			return nil, nil
		})
		return err
	})
	assert.NoError(t, err)

	a.Set(1)
	sched.Flush()

	assert.Equal(t, []error{boom}, inner1)
	assert.Equal(t, []error{boom}, inner2)
	assert.Empty(t, outer)
}
