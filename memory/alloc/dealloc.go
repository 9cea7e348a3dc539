package alloc

import (
	"fmt"

	"github.com/joshuapare/memsim/memory"
)

// Deallocate releases every unit owned by pid, scanning front to back. Runs are
// always claimed contiguously, so the scan stops at the first non-matching
// unit after a match. Returns the number of units freed, or ErrNotOwned.
func Deallocate(pool *memory.Pool, pid memory.PID) (int, error) {
	freed := 0
	for i := range pool.Len() {
		if pool.OwnedBy(i, pid) {
			pool.Release(i)
			freed++
			continue
		}
		if freed > 0 {
			break
		}
	}
	if freed == 0 {
		return 0, fmt.Errorf("%w: pid %d", ErrNotOwned, pid)
	}
	return freed, nil
}
