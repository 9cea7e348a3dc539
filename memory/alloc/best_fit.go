package alloc

import "github.com/joshuapare/memsim/memory"

// BestFitAllocator takes the smallest free run that is long enough.
type BestFitAllocator struct {
	base
}

// NewBestFit returns a best-fit allocator over pool.
func NewBestFit(pool *memory.Pool) *BestFitAllocator {
	return &BestFitAllocator{base{pool: pool}}
}

func (a *BestFitAllocator) Policy() Policy { return BestFit }

// Allocate scans the whole pool and claims from the start of the smallest
// qualifying run. Equal-length runs keep the earliest one.
func (a *BestFitAllocator) Allocate(pid memory.PID, units int) (int, error) {
	blocks, err := a.request(units)
	if err != nil {
		return 0, err
	}
	start, scanned := selectRun(a.pool, blocks, func(candidate, current int) bool {
		return candidate < current
	})
	return a.claim(start, blocks, pid, units, scanned)
}

// selectRun walks every unit once and evaluates each maximal free run when it
// ends. A run of at least blocks units replaces the current choice only when
// better(candidate, current) holds, so ties keep the earlier run.
func selectRun(pool *memory.Pool, blocks int, better func(candidate, current int) bool) (start, scanned int) {
	chosen, chosenLen := -1, 0
	consider := func(runStart, runLen int) {
		if runLen < blocks {
			return
		}
		if chosen < 0 || better(runLen, chosenLen) {
			chosen, chosenLen = runStart, runLen
		}
	}

	runStart, runLen := 0, 0
	for i := range pool.Len() {
		if pool.IsFree(i) {
			if runLen == 0 {
				runStart = i
			}
			runLen++
			continue
		}
		consider(runStart, runLen)
		runLen = 0
	}
	consider(runStart, runLen)

	return chosen, pool.Len()
}
