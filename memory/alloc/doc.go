// Package alloc implements contiguous placement policies over a memory.Pool.
//
// # Overview
//
// Every request asks for a number of capacity units. The request is rounded
// up to whole pool units with exact integer ceiling division:
//
//	blocks = (units + BlockSize - 1) / BlockSize
//
// A policy then searches the pool for a run of fully free units at least
// blocks long and claims blocks units from the start of that run. Every
// claimed unit except the last is filled; the last keeps units mod BlockSize
// of free capacity.
//
// # Policies
//
// FirstFit: scans front to back and stops at the first run that reaches
// blocks units. Cheap, tends to pack the front of the pool.
//
// BestFit: scans the whole pool and picks the smallest maximal run that fits.
// Ties keep the run found first.
//
// WorstFit: scans the whole pool and picks the largest maximal run. Ties keep
// the run found first.
//
// # Scan Cost
//
// Allocate returns the number of units examined before the run was chosen.
// FirstFit stops at the last unit of the chosen run; BestFit and WorstFit always
// examine every unit.
//
// # Errors
//
//   - ErrNoSpace: no run is long enough (the pool is left untouched)
//   - ErrNotOwned: Deallocate found no unit owned by the process
//   - ErrBadSize: the request asked for fewer than one unit
//
// # Usage Example
//
//	pool, _ := memory.New(128, 2)
//	a, err := alloc.New(alloc.BestFit, pool)
//	if err != nil {
//	    return err
//	}
//
//	cost, err := a.Allocate(42, 7)
//	if errors.Is(err, alloc.ErrNoSpace) {
//	    // denied
//	}
//
//	freed, err := a.Deallocate(42)
//
// # Thread Safety
//
// Allocators are not thread-safe and share the pool they were built over.
package alloc
