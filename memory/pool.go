package memory

import (
	"fmt"
	"strconv"
	"strings"
)

// PID identifies the process that owns a unit.
type PID = uint32

// Unit is a single fixed-capacity granule of the pool.
type Unit struct {
	Free  int // Unused capacity; equals the block size when the unit is free
	Owner PID // Owning process, meaningful only when Free < block size
}

// Pool is an ordered, fixed-length arena of units.
type Pool struct {
	units     []Unit
	blockSize int
}

// Run is a maximal stretch of consecutive fully free units.
type Run struct {
	Start int
	Len   int
}

// Stats is a point-in-time summary of pool occupancy.
type Stats struct {
	Units         int `json:"units"`          // Total units in the pool
	FreeUnits     int `json:"free_units"`     // Units with Free == block size
	OwnedUnits    int `json:"owned_units"`    // Units with Free < block size
	FreeRuns      int `json:"free_runs"`      // Number of maximal free runs
	LargestRun    int `json:"largest_run"`    // Length of the largest free run (0 when the pool is full)
	InternalWaste int `json:"internal_waste"` // Free capacity stranded inside owned units
	FreeCapacity  int `json:"free_capacity"`  // Free capacity across every unit
}

// New builds a pool of units, each with blockSize capacity and no owner.
func New(units, blockSize int) (*Pool, error) {
	if units < 1 || blockSize < 1 {
		return nil, fmt.Errorf("%w: units=%d blockSize=%d", ErrBadGeometry, units, blockSize)
	}
	p := &Pool{
		units:     make([]Unit, units),
		blockSize: blockSize,
	}
	for i := range p.units {
		p.units[i].Free = blockSize
	}
	return p, nil
}

// Len returns the number of units in the pool.
func (p *Pool) Len() int { return len(p.units) }

// BlockSize returns the capacity of a single unit.
func (p *Pool) BlockSize() int { return p.blockSize }

// Unit returns a copy of unit i. It panics if i is out of range.
func (p *Pool) Unit(i int) Unit { return p.units[i] }

// IsFree reports whether unit i is fully free.
func (p *Pool) IsFree(i int) bool { return p.units[i].Free == p.blockSize }

// OwnedBy reports whether unit i is owned by pid.
func (p *Pool) OwnedBy(i int, pid PID) bool {
	u := p.units[i]
	return u.Free < p.blockSize && u.Owner == pid
}

// Claim assigns blocks units starting at start to pid. Every unit but the last
// is filled completely; the last keeps lastFree capacity. The run must lie
// inside the pool and be fully free.
func (p *Pool) Claim(start, blocks int, pid PID, lastFree int) error {
	if blocks < 1 || start < 0 || start+blocks > len(p.units) {
		return fmt.Errorf("%w: run [%d,%d) in pool of %d", ErrOutOfRange, start, start+blocks, len(p.units))
	}
	if lastFree < 0 || lastFree >= p.blockSize {
		return fmt.Errorf("%w: %d (block size %d)", ErrBadCapacity, lastFree, p.blockSize)
	}
	end := start + blocks
	for i := start; i < end; i++ {
		if !p.IsFree(i) {
			return fmt.Errorf("%w: unit %d owned by %d", ErrNotFree, i, p.units[i].Owner)
		}
	}

	for i := start; i < end-1; i++ {
		p.units[i] = Unit{Free: 0, Owner: pid}
	}
	p.units[end-1] = Unit{Free: lastFree, Owner: pid}
	return nil
}

// Release returns unit i to the fully free state and clears its owner.
func (p *Pool) Release(i int) {
	p.units[i] = Unit{Free: p.blockSize}
}

// FreeCapacity returns the sum of free capacity across every unit.
func (p *Pool) FreeCapacity() int {
	total := 0
	for _, u := range p.units {
		total += u.Free
	}
	return total
}

// Runs returns every maximal free run in pool order.
func (p *Pool) Runs() []Run {
	var runs []Run
	var cur Run
	for i := range p.units {
		if p.IsFree(i) {
			if cur.Len == 0 {
				cur.Start = i
			}
			cur.Len++
			continue
		}
		if cur.Len > 0 {
			runs = append(runs, cur)
			cur = Run{}
		}
	}
	if cur.Len > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// Stats summarizes the current occupancy of the pool.
func (p *Pool) Stats() Stats {
	s := Stats{Units: len(p.units)}
	for i, u := range p.units {
		s.FreeCapacity += u.Free
		if p.IsFree(i) {
			s.FreeUnits++
			continue
		}
		s.OwnedUnits++
		s.InternalWaste += u.Free
	}
	for _, r := range p.Runs() {
		s.FreeRuns++
		if r.Len > s.LargestRun {
			s.LargestRun = r.Len
		}
	}
	return s
}

// String renders the pool on a single line, one character per unit.
func (p *Pool) String() string {
	return p.Render(0)
}

// Render draws one character per unit showing its free capacity in base 36,
// wrapping every width units. A width <= 0 disables wrapping.
func (p *Pool) Render(width int) string {
	var b strings.Builder
	b.Grow(len(p.units) + len(p.units)/max(width, 1))
	for i, u := range p.units {
		if width > 0 && i > 0 && i%width == 0 {
			b.WriteByte('\n')
		}
		if u.Free > 35 {
			b.WriteByte('+')
			continue
		}
		b.WriteString(strconv.FormatInt(int64(u.Free), 36))
	}
	return b.String()
}
