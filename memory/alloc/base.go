package alloc

import (
	"fmt"

	"github.com/joshuapare/memsim/memory"
)

// base carries the pool and counters shared by every policy.
type base struct {
	pool  *memory.Pool
	stats Stats
}

func (b *base) Stats() Stats { return b.stats }

// request validates a size and converts it to whole units.
func (b *base) request(units int) (int, error) {
	b.stats.AllocCalls++
	if units < 1 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, units)
	}
	return BlocksFor(units, b.pool.BlockSize()), nil
}

// claim commits a chosen run and records the scan.
func (b *base) claim(start, blocks int, pid memory.PID, units, scanned int) (int, error) {
	b.stats.UnitsScanned += int64(scanned)
	if start < 0 {
		b.stats.Denials++
		return 0, ErrNoSpace
	}
	if err := b.pool.Claim(start, blocks, pid, units%b.pool.BlockSize()); err != nil {
		return 0, err
	}
	b.stats.Allocations++
	b.stats.UnitsClaimed += int64(blocks)
	return scanned, nil
}

func (b *base) Deallocate(pid memory.PID) (int, error) {
	b.stats.DeallocCalls++
	freed, err := Deallocate(b.pool, pid)
	if err != nil {
		b.stats.DeallocMisses++
		return 0, err
	}
	b.stats.UnitsFreed += int64(freed)
	return freed, nil
}
