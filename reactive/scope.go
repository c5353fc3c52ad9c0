package reactive

// Scope is a lifetime boundary owning an ordered list of cleanup callbacks.
// Scopes nest: every effect or cleanup registration attaches to whichever
// scope is current at call time. A scope is current only while its owner's
// function body executes on the stack, or while explicitly re-entered via
// RunInScope.
type Scope struct {
	rt     *Runtime
	parent *Scope

	// children in creation order; disposed in reverse.
	children []*Scope

	// cleanups in registration order; run in reverse.
	cleanups []Cleanup

	// values holds context entries and error handlers, keyed by symbol id.
	// Reads bubble up through parent.
	values map[int64]any

	disposed bool
}

func newScope(rt *Runtime, parent *Scope) *Scope {
	return &Scope{rt: rt, parent: parent}
}

// Parent returns the scope that was current when this scope was created,
// or nil for a root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Disposed reports whether cleanups have already run.
func (s *Scope) Disposed() bool {
	return s.disposed
}

// onCleanup appends fn to the cleanup list.
func (s *Scope) onCleanup(fn Cleanup) error {
	if s.disposed {
		return ErrScopeDisposed
	}
	s.cleanups = append(s.cleanups, fn)
	return nil
}

// Dispose runs the scope's cleanups and those of all descendants, then
// severs the scope from its parent. Children are disposed first, in reverse
// creation order; within each scope cleanups run in reverse registration
// order. A cleanup that fails does not stop the rest; its error goes to the
// nearest handler starting with this scope's own, whose handler table is
// cleared only after all cleanups have run. Idempotent: a second call is a
// no-op, and a disposed scope never accepts new registrations.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	children := s.children
	s.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	cleanups := s.cleanups
	s.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		if err := cleanups[i](); err != nil {
			if !s.rt.handleError(s, err) && s.rt.onError != nil {
				s.rt.onError(err)
			}
		}
	}

	s.values = nil

	if s.parent != nil {
		s.parent.removeChild(s)
	}
}

func (s *Scope) removeChild(child *Scope) {
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// PushScope creates a scope under the current one and makes it current.
func (rt *Runtime) PushScope() *Scope {
	s := newScope(rt, rt.CurrentScope())
	if s.parent != nil {
		s.parent.children = append(s.parent.children, s)
	}
	rt.stack = append(rt.stack, s)
	return s
}

// PopScope removes the current scope from the stack and returns it, or nil
// if the stack is empty. The scope stays alive; popping only ends its time
// as the registration target.
func (rt *Runtime) PopScope() *Scope {
	if len(rt.stack) == 0 {
		return nil
	}
	s := rt.stack[len(rt.stack)-1]
	rt.stack = rt.stack[:len(rt.stack)-1]
	return s
}

// CurrentScope returns the top of the scope stack, or nil.
func (rt *Runtime) CurrentScope() *Scope {
	if len(rt.stack) == 0 {
		return nil
	}
	return rt.stack[len(rt.stack)-1]
}

// OnCleanup registers fn on the current scope. Registering outside any
// active scope, or on a disposed scope, is a usage error.
func OnCleanup(rt *Runtime, fn Cleanup) error {
	if fn == nil {
		return ErrNilCallback
	}
	s := rt.CurrentScope()
	if s == nil {
		return ErrNoScope
	}
	return s.onCleanup(fn)
}

// RunInScope temporarily makes scope current, executes fn, and restores the
// prior current scope afterward, even when fn fails. It lets a value
// resolved later (an asynchronously produced subtree, say) register
// cleanups against the scope that originally owned it. Re-entering a
// disposed scope is a usage error.
func RunInScope(rt *Runtime, scope *Scope, fn func() error) error {
	if fn == nil {
		return ErrNilCallback
	}
	if scope == nil {
		return ErrNoScope
	}
	if scope.disposed {
		return ErrScopeDisposed
	}
	rt.stack = append(rt.stack, scope)
	defer func() {
		rt.stack = rt.stack[:len(rt.stack)-1]
	}()
	return fn()
}

// Root executes fn inside a fresh scope that is not registered as a child
// of the current scope: the parent's disposal will not reach it, so the
// caller must eventually invoke the dispose function it receives. The root
// still knows its parent, because context reads and errors bubble up.
func Root(rt *Runtime, fn func(dispose func()) error) error {
	if fn == nil {
		return ErrNilCallback
	}
	s := newScope(rt, rt.CurrentScope())
	rt.stack = append(rt.stack, s)
	defer func() {
		rt.stack = rt.stack[:len(rt.stack)-1]
	}()
	return fn(s.Dispose)
}
