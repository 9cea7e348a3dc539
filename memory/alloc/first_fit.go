package alloc

import "github.com/joshuapare/memsim/memory"

// FirstFitAllocator takes the first free run that is long enough.
type FirstFitAllocator struct {
	base
}

// NewFirstFit returns a first-fit allocator over pool.
func NewFirstFit(pool *memory.Pool) *FirstFitAllocator {
	return &FirstFitAllocator{base{pool: pool}}
}

func (a *FirstFitAllocator) Policy() Policy { return FirstFit }

// Allocate scans front to back and stops as soon as the current run reaches
// the needed length. The returned cost counts the units examined, including
// the last unit of the chosen run.
func (a *FirstFitAllocator) Allocate(pid memory.PID, units int) (int, error) {
	blocks, err := a.request(units)
	if err != nil {
		return 0, err
	}
	start, scanned := firstRun(a.pool, blocks)
	return a.claim(start, blocks, pid, units, scanned)
}

// firstRun returns the start of the first free run reaching blocks units and
// the number of units examined. start is -1 when no run qualifies.
func firstRun(pool *memory.Pool, blocks int) (start, scanned int) {
	run := 0
	for i := range pool.Len() {
		if pool.IsFree(i) {
			if run == 0 {
				start = i
			}
			run++
		} else {
			run = 0
		}
		if run == blocks {
			return start, i + 1
		}
	}
	return -1, pool.Len()
}
