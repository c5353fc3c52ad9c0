// Package loop provides a single-goroutine event loop with a dedicated
// microtask queue. External tasks enter through Post and run one at a time;
// microtasks queued with Defer run after the current task unwinds and
// before the next external task, which is exactly the scheduling primitive
// the reactive runtime's flush depends on.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrAlreadyRunning is returned when Run is called on a running loop.
	ErrAlreadyRunning = errors.New("loop: already running")

	// ErrStopped is returned when a task is submitted to a stopped loop.
	ErrStopped = errors.New("loop: stopped")
)

// Loop runs tasks on a single goroutine. All loop state except the ingress
// channel is owned by that goroutine.
type Loop struct {
	ingress chan func()
	micro   []func()

	running atomic.Bool
	stopped atomic.Bool

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a loop with the given ingress buffer size. A size of 0 makes
// Post block until the loop picks the task up.
func New(buffer int) *Loop {
	return &Loop{
		ingress: make(chan func(), buffer),
		stop:    make(chan struct{}),
	}
}

// Run processes tasks until ctx is done or Stop is called. It must be
// called from exactly one goroutine; a second concurrent call fails.
// Pending microtasks are drained after every task.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer l.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			l.markStopped()
			return ctx.Err()
		case <-l.stop:
			l.drainMicrotasks()
			return nil
		case task := <-l.ingress:
			task()
			l.drainMicrotasks()
		}
	}
}

// Stop makes Run return after the current task and its microtasks finish.
func (l *Loop) Stop() {
	l.markStopped()
}

func (l *Loop) markStopped() {
	l.stopped.Store(true)
	l.stopOnce.Do(func() { close(l.stop) })
}

// PostErr submits an external task from any goroutine. Posting to a
// stopped loop returns ErrStopped; the task is dropped.
func (l *Loop) PostErr(fn func()) error {
	if l.stopped.Load() {
		return ErrStopped
	}
	select {
	case l.ingress <- fn:
		return nil
	case <-l.stop:
		return ErrStopped
	}
}

// Post implements reactive.Scheduler. Tasks posted to a stopped loop are
// silently dropped; use PostErr when the caller needs to know.
func (l *Loop) Post(fn func()) {
	_ = l.PostErr(fn)
}

// Defer queues fn on the microtask queue. It must be called on the loop
// goroutine, from within a running task or microtask.
func (l *Loop) Defer(fn func()) {
	l.micro = append(l.micro, fn)
}

// Do posts fn and blocks until fn and every microtask it spawned have run.
// Useful for driving the loop from tests and setup code.
func (l *Loop) Do(fn func()) error {
	if err := l.PostErr(fn); err != nil {
		return err
	}
	return l.Barrier()
}

// Barrier blocks until all previously posted tasks, including their
// microtasks, have completed.
func (l *Loop) Barrier() error {
	done := make(chan struct{})
	if err := l.PostErr(func() { close(done) }); err != nil {
		return err
	}
	<-done
	return nil
}

func (l *Loop) drainMicrotasks() {
	for len(l.micro) > 0 {
		micro := l.micro
		l.micro = nil
		for _, fn := range micro {
			fn()
		}
	}
}
