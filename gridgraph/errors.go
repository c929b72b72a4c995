package gridgraph

import "errors"

var (
	// ErrInvalidSide indicates a non-positive grid dimension.
	ErrInvalidSide = errors.New("gridgraph: side must be positive")
	// ErrCellCount indicates the cell slice does not hold side*side values.
	ErrCellCount = errors.New("gridgraph: cell count must equal side*side")
	// ErrIndexOutOfRange indicates a coordinate or linear index outside the grid.
	ErrIndexOutOfRange = errors.New("gridgraph: index out of range")
)
