package reactor

import mapset "github.com/deckarep/golang-set/v2"

// CellID identifies a cell within its Reactor. IDs are handed out in
// creation order and never reused, so a cell's dependencies always carry
// smaller IDs than the cell itself.
type CellID uint32

// CallbackID identifies a callback registered on a compute cell. It is only
// unique within that cell.
type CallbackID uint32

// ComputeFunc derives a compute cell's value from the current values of its
// dependencies, passed in the order given to CreateCompute. It must be pure.
type ComputeFunc[T comparable] func(deps []T) T

// Callback observes a compute cell's new stable value after a propagation
// round changed it.
type Callback[T comparable] func(value T)

type cellKind uint8

const (
	inputCell cellKind = iota
	computeCell
)

type cell[T comparable] struct {
	kind  cellKind
	value T

	// compute cells only
	deps []CellID
	fn   ComputeFunc[T]
	rank int // 1 + max rank of deps, 0 for input cells

	// reverse edges: compute cells that list this cell as a dependency
	dependents mapset.Set[CellID]

	callbacks      map[CallbackID]Callback[T]
	lastCallbackID CallbackID
}
