package sim

import (
	"github.com/joshuapare/memsim/memory"
	"github.com/joshuapare/memsim/memory/alloc"
)

// Result aggregates the outcome of one policy run.
type Result struct {
	Policy   alloc.Policy `json:"-"`
	Title    string       `json:"policy"`
	Requests int          `json:"requests"`

	Allocations   int   `json:"allocations"`    // Successful allocations
	Denials       int   `json:"denials"`        // Allocations that found no run
	Traversed     int64 `json:"traversed"`      // Scan cost summed over successes
	Deallocations int   `json:"deallocations"`  // Deallocation requests issued
	DeallocMisses int   `json:"dealloc_misses"` // Requests with no target or no owned units
	UnitsFreed    int64 `json:"units_freed"`

	Pool    memory.Stats `json:"pool"`
	PoolMap string       `json:"-"`
}

// AvgScan returns the mean scan cost per successful allocation.
func (r Result) AvgScan() float64 {
	if r.Allocations == 0 {
		return 0
	}
	return float64(r.Traversed) / float64(r.Allocations)
}

// DenialPercent returns the share of all requests that were not successful
// allocations, in percent. Deallocation requests count as not successful.
func (r Result) DenialPercent() float64 {
	if r.Requests == 0 {
		return 0
	}
	return float64(r.Requests-r.Allocations) / float64(r.Requests) * 100
}

// AvgFragments returns the pool's final free capacity divided by the number
// of successful allocations.
func (r Result) AvgFragments() float64 {
	if r.Allocations == 0 {
		return 0
	}
	return float64(r.Pool.FreeCapacity) / float64(r.Allocations)
}
