package reactive

import "sync"

// enqueue adds a runner to the pending queue, deduplicating by membership,
// and schedules exactly one flush if none is pending.
func (rt *Runtime) enqueue(r *Runner) {
	if r.disposed {
		return
	}
	if rt.queued.Add(r) {
		rt.queue = append(rt.queue, r)
	}
	if !rt.pending {
		rt.pending = true
		rt.sched.Defer(rt.flush)
	}
}

// flush takes a snapshot of the pending queue and clears queue, membership
// and the pending flag before invoking anything, so a runner re-enqueuing
// itself during its own run lands in a new, later flush. Runners execute in
// insertion order; a failure in one does not stop the rest.
func (rt *Runtime) flush() {
	snapshot := rt.queue
	rt.queue = nil
	rt.queued.Clear()
	rt.pending = false

	for _, r := range snapshot {
		r.invoke()
	}
}

// ManualScheduler is a host-driven Scheduler: microtasks and posted tasks
// accumulate until the host pumps them with Flush. It gives embedders that
// already own a loop (and tests) deterministic control over when flushes
// run.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []func()
	micro []func()
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Defer queues a microtask. Must be called from the pumping goroutine.
func (s *ManualScheduler) Defer(fn func()) {
	s.micro = append(s.micro, fn)
}

// Post queues an external task. Safe from any goroutine.
func (s *ManualScheduler) Post(fn func()) {
	s.mu.Lock()
	s.tasks = append(s.tasks, fn)
	s.mu.Unlock()
}

// HasWork reports whether any task or microtask is queued.
func (s *ManualScheduler) HasWork() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks) > 0 || len(s.micro) > 0
}

// Flush drains everything: pending microtasks first, then posted tasks one
// at a time with a full microtask drain after each, until no work remains.
func (s *ManualScheduler) Flush() {
	for {
		s.drainMicrotasks()

		s.mu.Lock()
		if len(s.tasks) == 0 {
			s.mu.Unlock()
			return
		}
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.mu.Unlock()

		task()
	}
}

func (s *ManualScheduler) drainMicrotasks() {
	for len(s.micro) > 0 {
		micro := s.micro
		s.micro = nil
		for _, fn := range micro {
			fn()
		}
	}
}
