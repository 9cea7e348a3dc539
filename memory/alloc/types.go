package alloc

import (
	"fmt"
	"strings"

	"github.com/joshuapare/memsim/memory"
)

// Policy selects how a free run is chosen for a request.
type Policy uint8

const (
	FirstFit Policy = iota + 1
	BestFit
	WorstFit
)

// Policies returns every policy in the order simulations report them.
func Policies() []Policy {
	return []Policy{FirstFit, BestFit, WorstFit}
}

// String returns the short flag-friendly name of the policy.
func (p Policy) String() string {
	switch p {
	case FirstFit:
		return "first"
	case BestFit:
		return "best"
	case WorstFit:
		return "worst"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// Title returns the heading used in reports ("First Fit", ...).
func (p Policy) Title() string {
	switch p {
	case FirstFit:
		return "First Fit"
	case BestFit:
		return "Best Fit"
	case WorstFit:
		return "Worst Fit"
	default:
		return p.String()
	}
}

// ParsePolicy accepts "first", "first-fit", "ff" and the equivalents for best
// and worst, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "first-fit", "firstfit", "ff":
		return FirstFit, nil
	case "best", "best-fit", "bestfit", "bf":
		return BestFit, nil
	case "worst", "worst-fit", "worstfit", "wf":
		return WorstFit, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Allocator places requests into a pool according to one Policy.
//
// Implementations:
//   - FirstFitAllocator: first run long enough, stops scanning early
//   - BestFitAllocator: smallest run long enough, full scan
//   - WorstFitAllocator: largest run long enough, full scan
type Allocator interface {
	// Allocate claims ceil(units / BlockSize) contiguous units for pid.
	// Returns the number of units scanned, or ErrNoSpace.
	Allocate(pid memory.PID, units int) (int, error)

	// Deallocate frees every unit owned by pid.
	// Returns the number of units freed, or ErrNotOwned.
	Deallocate(pid memory.PID) (int, error)

	// Policy reports which placement rule the allocator applies.
	Policy() Policy

	// Stats returns a snapshot of the allocator's counters.
	Stats() Stats
}

// Stats holds allocator counters for reporting and tests.
type Stats struct {
	AllocCalls    int   // Allocate() calls, including rejected sizes
	Allocations   int   // Successful allocations
	Denials       int   // Allocations that failed with ErrNoSpace
	UnitsScanned  int64 // Units examined across all Allocate() calls
	UnitsClaimed  int64 // Units handed out across all allocations
	DeallocCalls  int   // Deallocate() calls
	DeallocMisses int   // Deallocations that failed with ErrNotOwned
	UnitsFreed    int64 // Units returned by Deallocate()
}

// New builds the allocator for policy over pool.
func New(policy Policy, pool *memory.Pool) (Allocator, error) {
	switch policy {
	case FirstFit:
		return NewFirstFit(pool), nil
	case BestFit:
		return NewBestFit(pool), nil
	case WorstFit:
		return NewWorstFit(pool), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
}

// BlocksFor converts a request in capacity units into whole pool units.
func BlocksFor(units, blockSize int) int {
	return (units + blockSize - 1) / blockSize
}
