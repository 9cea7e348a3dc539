package alloc

import "github.com/joshuapare/memsim/memory"

// WorstFitAllocator takes the largest free run.
type WorstFitAllocator struct {
	base
}

// NewWorstFit returns a worst-fit allocator over pool.
func NewWorstFit(pool *memory.Pool) *WorstFitAllocator {
	return &WorstFitAllocator{base{pool: pool}}
}

func (a *WorstFitAllocator) Policy() Policy { return WorstFit }

// Allocate scans the whole pool and claims from the start of the largest
// qualifying run. Equal-length runs keep the earliest one.
func (a *WorstFitAllocator) Allocate(pid memory.PID, units int) (int, error) {
	blocks, err := a.request(units)
	if err != nil {
		return 0, err
	}
	start, scanned := selectRun(a.pool, blocks, func(candidate, current int) bool {
		return candidate > current
	})
	return a.claim(start, blocks, pid, units, scanned)
}
