package reactor

import "errors"

var (
	// ErrUnknownCell is returned when a handle does not refer to a cell in
	// this Reactor.
	ErrUnknownCell = errors.New("reactor: unknown cell")

	// ErrInvalidDependency is returned by CreateCompute when a dependency
	// handle does not refer to an existing cell.
	ErrInvalidDependency = errors.New("reactor: invalid dependency")

	// ErrNotAnInputCell is returned by SetInput for a compute cell handle.
	ErrNotAnInputCell = errors.New("reactor: not an input cell")

	// ErrNotAComputeCell is returned by the callback operations for an input
	// cell handle.
	ErrNotAComputeCell = errors.New("reactor: not a compute cell")

	// ErrUnknownCallback is returned by RemoveCallback when the callback
	// handle is not currently registered on the cell.
	ErrUnknownCallback = errors.New("reactor: unknown callback")
)
