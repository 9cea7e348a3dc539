package memory

import "errors"

var (
	// ErrBadGeometry indicates a pool was requested with a non-positive unit count or block size.
	ErrBadGeometry = errors.New("memory: unit count and block size must be positive")

	// ErrOutOfRange indicates a unit index or run that falls outside the pool.
	ErrOutOfRange = errors.New("memory: unit index out of range")

	// ErrNotFree indicates a claim over a unit that is already owned.
	ErrNotFree = errors.New("memory: unit is not free")

	// ErrBadCapacity indicates a free-capacity value outside [0, BlockSize).
	ErrBadCapacity = errors.New("memory: free capacity out of range")
)
