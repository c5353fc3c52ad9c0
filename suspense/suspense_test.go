package suspense_test

import (
	"errors"
	"testing"
	"time"

	"github.com/lumenui/lumen/dom"
	"github.com/lumenui/lumen/reactive"
	"github.com/lumenui/lumen/suspense"
	"github.com/stretchr/testify/assert"
)

func newTestRenderer(t *testing.T) (*dom.Renderer, *reactive.Runtime, *reactive.ManualScheduler) {
	t.Helper()
	sched := reactive.NewManualScheduler()
	rt := reactive.NewRuntime(sched, func(err error) {
		assert.FailNow(t, err.Error())
	})
	return dom.NewRenderer(rt), rt, sched
}

// settle pumps the scheduler until the producer's settlement arrives.
func settle(t *testing.T, sched *reactive.ManualScheduler) {
	t.Helper()
	assert.Eventually(t, sched.HasWork, time.Second, time.Millisecond)
	sched.Flush()
}

// should expose a loading state until the producer settles
func TestResourceSettles(t *testing.T) {
	_, rt, sched := newTestRenderer(t)

	release := make(chan struct{})
	res, err := suspense.NewResource(rt, func() (int, error) {
		<-release
		return 42, nil
	})
	assert.NoError(t, err)
	assert.True(t, res.Loading())

	close(release)
	settle(t, sched)

	st := res.State()
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
	assert.Equal(t, 42, st.Value)
}

// should carry a producer failure in the settled state
func TestResourceFailure(t *testing.T) {
	_, rt, sched := newTestRenderer(t)

	boom := errors.New("boom")
	res, err := suspense.NewResource(rt, func() (int, error) {
		return 0, boom
	})
	assert.NoError(t, err)

	settle(t, sched)
	st := res.State()
	assert.False(t, st.Loading)
	assert.ErrorIs(t, st.Err, boom)
}

// should reject a nil producer
func TestResourceNilProducer(t *testing.T) {
	_, rt, _ := newTestRenderer(t)

	_, err := suspense.NewResource[int](rt, nil)
	assert.ErrorIs(t, err, reactive.ErrNilCallback)
}

// should swap the fallback for content when the resource resolves
func TestSuspenseSwapsToContent(t *testing.T) {
	r, rt, sched := newTestRenderer(t)

	release := make(chan struct{})
	res, err := suspense.NewResource(rt, func() (string, error) {
		<-release
		return "ready", nil
	})
	assert.NoError(t, err)

	root := dom.Element("div")
	_, err = r.Mount(root, suspense.Suspense(res,
		dom.TextView("loading..."),
		func(v string) dom.View { return dom.TextView(v) },
		nil,
	))
	assert.NoError(t, err)
	assert.Equal(t, "<div>loading...</div>", root.Render())

	close(release)
	settle(t, sched)
	assert.Equal(t, "<div>ready</div>", root.Render())
}

// should render the error view when the producer fails
func TestSuspenseErrorView(t *testing.T) {
	r, rt, sched := newTestRenderer(t)

	res, err := suspense.NewResource(rt, func() (string, error) {
		return "", errors.New("boom")
	})
	assert.NoError(t, err)

	root := dom.Element("div")
	_, err = r.Mount(root, suspense.Suspense(res,
		dom.TextView("loading..."),
		func(v string) dom.View { return dom.TextView(v) },
		func(err error) dom.View { return dom.TextView("error: " + err.Error()) },
	))
	assert.NoError(t, err)

	settle(t, sched)
	assert.Equal(t, "<div>error: boom</div>", root.Render())
}

// should render nothing on failure when no error view is given
func TestSuspenseFailureWithoutErrorView(t *testing.T) {
	r, rt, sched := newTestRenderer(t)

	res, err := suspense.NewResource(rt, func() (string, error) {
		return "", errors.New("boom")
	})
	assert.NoError(t, err)

	root := dom.Element("div")
	_, err = r.Mount(root, suspense.Suspense(res,
		dom.TextView("loading..."),
		func(v string) dom.View { return dom.TextView(v) },
		nil,
	))
	assert.NoError(t, err)

	settle(t, sched)
	assert.Equal(t, "<div></div>", root.Render())
}

// should render an already-settled resource's content immediately
func TestSuspenseResolved(t *testing.T) {
	r, rt, _ := newTestRenderer(t)

	res := suspense.Resolved(rt, "now")
	root := dom.Element("div")
	_, err := r.Mount(root, suspense.Suspense(res,
		dom.TextView("loading..."),
		func(v string) dom.View { return dom.TextView(v) },
		nil,
	))
	assert.NoError(t, err)
	assert.Equal(t, "<div>now</div>", root.Render())
}

// should mount a lazily loaded component once the loader finishes
func TestLazy(t *testing.T) {
	r, _, sched := newTestRenderer(t)

	release := make(chan struct{})
	lazy := suspense.Lazy(func() (dom.ComponentFunc, error) {
		<-release
		return func(r *dom.Renderer) (dom.View, error) {
			return dom.TextView("page"), nil
		}, nil
	}, dom.TextView("..."))

	root := dom.Element("div")
	_, err := r.Mount(root, dom.ComponentView(lazy))
	assert.NoError(t, err)
	assert.Equal(t, "<div>...</div>", root.Render())

	close(release)
	settle(t, sched)
	assert.Equal(t, "<div>page</div>", root.Render())
}

// should overlay the pending value until commit or rollback
func TestOptimistic(t *testing.T) {
	_, rt, sched := newTestRenderer(t)

	o := suspense.NewOptimistic(rt, 10)

	var seen []int
	err := reactive.Root(rt, func(dispose func()) error {
		_, err := reactive.Effect(rt, func() (reactive.Cleanup, error) {
			seen = append(seen, o.Get())
			return nil, nil
		})
		return err
	})
	assert.NoError(t, err)

	o.Begin(11)
	sched.Flush()
	o.Commit(12)
	sched.Flush()
	assert.Equal(t, []int{10, 11, 12}, seen)

	o.Begin(99)
	sched.Flush()
	o.Rollback()
	sched.Flush()
	assert.Equal(t, []int{10, 11, 12, 99, 12}, seen)
}
