package reactive

// Memo is a derived cell: its value is recomputed by an auto-tracked effect
// whenever the cells the computation reads change, and readers subscribe to
// the result cell exactly as they would to a plain Cell.
type Memo[T any] struct {
	cell   *Cell[T]
	runner *Runner
}

// NewMemo computes fn once synchronously and re-computes it whenever its
// tracked dependencies change. The memo is owned by the current scope, as
// any effect is.
func NewMemo[T any](rt *Runtime, fn func() (T, error)) (*Memo[T], error) {
	if fn == nil {
		return nil, ErrNilCallback
	}

	m := &Memo[T]{}
	runner, err := Effect(rt, func() (Cleanup, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		if m.cell == nil {
			// First run: create the cell directly instead of writing it,
			// so a custom equality is never asked to compare against a
			// value that was never produced.
			m.cell = NewCell(rt, v)
		} else {
			m.cell.Set(v)
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	if m.cell == nil {
		// The first run failed and a scope handler claimed the error, so
		// Effect reported success but no value was ever produced. A memo
		// without a value cannot be read; fail construction instead of
		// handing out a dead handle.
		_ = runner.dispose()
		return nil, ErrNoValue
	}
	m.runner = runner
	return m, nil
}

// Get returns the current derived value, subscribing the current tracking
// runner to the result cell.
func (m *Memo[T]) Get() T {
	return m.cell.Get()
}

// Peek returns the current derived value without subscribing.
func (m *Memo[T]) Peek() T {
	return m.cell.Peek()
}
