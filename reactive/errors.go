// Package reactive implements a fine-grained dependency-tracking runtime:
// subscribable value cells, effect runners re-executed when the cells they
// read change, a deduplicating microtask-batched scheduler, and a stack of
// component scopes owning cleanup callbacks.
package reactive

import "errors"

// Usage errors. These indicate a structural bug in the calling code and are
// returned synchronously from the call site, never swallowed.
var (
	// ErrNoScope indicates a registration call was made outside of any
	// active scope.
	ErrNoScope = errors.New("no active scope")

	// ErrScopeDisposed indicates an operation on a scope that has already
	// run its cleanups.
	ErrScopeDisposed = errors.New("scope already disposed")

	// ErrNilCallback indicates a nil function was passed where a callback
	// is required.
	ErrNilCallback = errors.New("nil callback")

	// ErrNoDeps indicates an explicit-dependency effect was created with an
	// empty dependency list.
	ErrNoDeps = errors.New("empty dependency list")
)

// ErrNoValue indicates a memo whose first computation failed before
// producing a value; the memo was never constructed.
var ErrNoValue = errors.New("memo produced no value")
