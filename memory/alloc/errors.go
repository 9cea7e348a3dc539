package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free run long enough for the request exists.
	ErrNoSpace = errors.New("alloc: no free run large enough")

	// ErrNotOwned indicates a deallocation for a process that owns no units.
	ErrNotOwned = errors.New("alloc: process owns no units")

	// ErrBadSize indicates a request for fewer than one unit.
	ErrBadSize = errors.New("alloc: request must be at least one unit")

	// ErrUnknownPolicy indicates a policy name or value that is not recognized.
	ErrUnknownPolicy = errors.New("alloc: unknown placement policy")
)
