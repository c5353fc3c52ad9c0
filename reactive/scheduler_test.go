package reactive_test

import (
	"sync"
	"testing"

	"github.com/lumenui/lumen/reactive"
	"github.com/stretchr/testify/assert"
)

// should drain microtasks before and between posted tasks
func TestManualSchedulerOrdering(t *testing.T) {
	sched := reactive.NewManualScheduler()

	var order []string
	sched.Defer(func() { order = append(order, "micro1") })
	sched.Post(func() {
		order = append(order, "task1")
		sched.Defer(func() { order = append(order, "micro2") })
	})
	sched.Post(func() { order = append(order, "task2") })

	sched.Flush()
	assert.Equal(t, []string{"micro1", "task1", "micro2", "task2"}, order)
}

// should drain microtasks queued by other microtasks in the same pump
func TestManualSchedulerCascadingMicrotasks(t *testing.T) {
	sched := reactive.NewManualScheduler()

	var order []int
	sched.Defer(func() {
		order = append(order, 1)
		sched.Defer(func() { order = append(order, 2) })
	})

	sched.Flush()
	assert.Equal(t, []int{1, 2}, order)
}

// should report queued work until it is pumped
func TestManualSchedulerHasWork(t *testing.T) {
	sched := reactive.NewManualScheduler()
	assert.False(t, sched.HasWork())

	sched.Defer(func() {})
	assert.True(t, sched.HasWork())
	sched.Flush()
	assert.False(t, sched.HasWork())

	sched.Post(func() {})
	assert.True(t, sched.HasWork())
	sched.Flush()
	assert.False(t, sched.HasWork())
}

// should accept posts from other goroutines
func TestManualSchedulerCrossGoroutinePost(t *testing.T) {
	sched := reactive.NewManualScheduler()

	var wg sync.WaitGroup
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sched.Post(func() {})
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	<-done

	count := 0
	sched.Post(func() { count++ })
	sched.Flush()
	assert.Equal(t, 1, count)
}

// should let a posted task mutate runtime state that the flush then sees
func TestManualSchedulerDrivesRuntime(t *testing.T) {
	rt, sched := newTestRuntime(t)

	a := reactive.NewCell(rt, 0)
	runs := 0
	err := reactive.Root(rt, func(dispose func()) error {
		_, err := reactive.Effect(rt, func() (reactive.Cleanup, error) {
			runs++
			a.Get()
			return nil, nil
		})
		return err
	})
	assert.NoError(t, err)

	// a settlement arriving from another goroutine goes through Post; the
	// write and the flush it schedules both happen inside the same pump
	rt.Post(func() { a.Set(5) })
	assert.Equal(t, 1, runs)

	sched.Flush()
	assert.Equal(t, 2, runs)
	assert.Equal(t, 5, a.Peek())
}
