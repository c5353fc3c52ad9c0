package reactive

import "github.com/cespare/xxhash/v2"

// symbolErrors keys the per-scope error handler list. Reserving an id in
// the same value table as contexts lets handlers reuse the bubbling lookup.
var symbolErrors = symbolID("lumen.symbol.errors")

// symbolID derives a stable non-negative id from a name.
func symbolID(name string) int64 {
	return int64(xxhash.Sum64String(name) & 0x7fffffffffffffff)
}

// ContextKey carries a typed value down the scope tree: Provide sets it on
// the current scope, Read walks from the current scope up through parents
// and falls back to the default.
type ContextKey[T any] struct {
	id  int64
	def T
}

// NewContextKey creates a key with a stable id derived from name. Two keys
// created with the same name address the same slot.
func NewContextKey[T any](name string, def T) *ContextKey[T] {
	return &ContextKey[T]{id: symbolID(name), def: def}
}

// Provide sets the value on the current scope. It is a usage error to call
// it outside any active scope.
func (k *ContextKey[T]) Provide(rt *Runtime, value T) error {
	s := rt.CurrentScope()
	if s == nil {
		return ErrNoScope
	}
	if s.disposed {
		return ErrScopeDisposed
	}
	if s.values == nil {
		s.values = map[int64]any{}
	}
	s.values[k.id] = value
	return nil
}

// Read returns the nearest provided value, bubbling up the scope chain, or
// the key's default.
func (k *ContextKey[T]) Read(rt *Runtime) T {
	if v, ok := scopeLookup(rt.CurrentScope(), k.id); ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return k.def
}

func scopeLookup(s *Scope, id int64) (any, bool) {
	for ; s != nil; s = s.parent {
		if v, ok := s.values[id]; ok {
			return v, true
		}
	}
	return nil, false
}

// OnError registers an error handler on the current scope. Errors raised by
// effect bodies and cleanups owned by this scope, or any descendant without
// a nearer handler, are delivered to every handler registered here instead
// of reaching the runtime-level handler.
func OnError(rt *Runtime, fn ErrorHandler) error {
	if fn == nil {
		return ErrNilCallback
	}
	s := rt.CurrentScope()
	if s == nil {
		return ErrNoScope
	}
	if s.disposed {
		return ErrScopeDisposed
	}
	if s.values == nil {
		s.values = map[int64]any{}
	}
	handlers, _ := s.values[symbolErrors].([]ErrorHandler)
	s.values[symbolErrors] = append(handlers, fn)
	return nil
}

// handleError walks the scope chain from scope upward looking for the
// nearest error handler list. If one exists, every handler in it is called
// and the error is considered claimed. Returns false when no scope handler
// exists; the caller decides between surfacing the error and the runtime
// handler.
func (rt *Runtime) handleError(scope *Scope, err error) bool {
	for s := scope; s != nil; s = s.parent {
		handlers, _ := s.values[symbolErrors].([]ErrorHandler)
		if len(handlers) > 0 {
			for _, fn := range handlers {
				fn(err)
			}
			return true
		}
	}
	return false
}
