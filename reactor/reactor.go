// Package reactor is a minimal reactive computation engine: an arena of
// cells whose values propagate automatically when an upstream input changes,
// spreadsheet style. Input cells hold externally settable values; compute
// cells derive theirs from a fixed, ordered dependency list supplied at
// creation. Setting an input recomputes every transitively dependent compute
// cell exactly once, in dependency order, then fires callbacks for the cells
// whose stable value actually changed.
//
// The engine is value-type agnostic beyond requiring equality comparison for
// change detection. It is single threaded: a Reactor must not be used from
// multiple goroutines without external serialization, and callbacks must not
// call back into the Reactor with mutating operations.
package reactor

import mapset "github.com/deckarep/golang-set/v2"

// Reactor owns all cells and exposes the public operations. Cells live for
// the lifetime of the Reactor; there is no way to remove one, so dependency
// handles validated at creation stay valid forever.
type Reactor[T comparable] struct {
	cells  map[CellID]*cell[T]
	lastID CellID
}

func New[T comparable]() *Reactor[T] {
	return &Reactor[T]{cells: map[CellID]*cell[T]{}}
}

// CreateInput allocates an input cell holding initial. It always succeeds.
func (r *Reactor[T]) CreateInput(initial T) CellID {
	r.lastID++
	r.cells[r.lastID] = &cell[T]{
		kind:       inputCell,
		value:      initial,
		dependents: mapset.NewSet[CellID](),
	}
	return r.lastID
}

// CreateCompute allocates a compute cell whose value is fn applied to the
// current values of deps, in the given order. Dependencies may be input or
// compute cells, so multi-level chains build up naturally. Returns
// ErrInvalidDependency if any handle is unknown, in which case the Reactor
// is left untouched.
func (r *Reactor[T]) CreateCompute(deps []CellID, fn ComputeFunc[T]) (CellID, error) {
	rank := 0
	for _, dep := range deps {
		dc, ok := r.cells[dep]
		if !ok {
			return 0, ErrInvalidDependency
		}
		if dc.rank > rank {
			rank = dc.rank
		}
	}

	c := &cell[T]{
		kind:       computeCell,
		deps:       append([]CellID(nil), deps...),
		fn:         fn,
		rank:       rank + 1,
		dependents: mapset.NewSet[CellID](),
		callbacks:  map[CallbackID]Callback[T]{},
	}
	c.value = fn(r.depValues(c))

	r.lastID++
	r.cells[r.lastID] = c
	for _, dep := range deps {
		r.cells[dep].dependents.Add(r.lastID)
	}
	return r.lastID, nil
}

// Value returns the cell's current stable value.
func (r *Reactor[T]) Value(id CellID) (T, error) {
	c, ok := r.cells[id]
	if !ok {
		var zero T
		return zero, ErrUnknownCell
	}
	return c.value, nil
}

// SetInput updates an input cell's value and runs one synchronous
// propagation round, including all callback firing, before returning.
// Setting a cell to its current value still runs the round; no callbacks
// fire because no stable value changes.
func (r *Reactor[T]) SetInput(id CellID, value T) error {
	c, ok := r.cells[id]
	if !ok {
		return ErrUnknownCell
	}
	if c.kind != inputCell {
		return ErrNotAnInputCell
	}
	c.value = value
	r.propagate(id)
	return nil
}

func (r *Reactor[T]) depValues(c *cell[T]) []T {
	args := make([]T, len(c.deps))
	for i, dep := range c.deps {
		args[i] = r.cells[dep].value
	}
	return args
}
