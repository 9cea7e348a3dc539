// Package owners tracks which processes currently hold units in a pool, in
// allocation order, so a simulation can pick deallocation targets.
package owners

import (
	"slices"

	"github.com/joshuapare/memsim/memory"
)

// Registry is a cyclic sequence of process IDs with a traversal cursor.
//
// New entries join the end of the cycle, just behind the cursor. Take walks
// forward from the cursor, removes the entry it lands on and parks the cursor
// on the entry that followed it.
type Registry struct {
	pids   []memory.PID
	cursor int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Len returns the number of registered processes.
func (r *Registry) Len() int { return len(r.pids) }

// Add registers pid as the last entry of the cycle.
func (r *Registry) Add(pid memory.PID) {
	if r.cursor == 0 {
		r.pids = append(r.pids, pid)
		return
	}
	r.pids = slices.Insert(r.pids, r.cursor, pid)
	r.cursor++
}

// Take removes and returns the entry offset steps past the cursor, wrapping
// around the cycle as often as needed. It returns false when the registry is
// empty or offset is negative.
func (r *Registry) Take(offset int) (memory.PID, bool) {
	n := len(r.pids)
	if n == 0 || offset < 0 {
		return 0, false
	}
	idx := (r.cursor + offset) % n
	pid := r.pids[idx]
	r.pids = slices.Delete(r.pids, idx, idx+1)
	if len(r.pids) == 0 {
		r.cursor = 0
	} else {
		r.cursor = idx % len(r.pids)
	}
	return pid, true
}

// Contains reports whether pid is registered at least once.
func (r *Registry) Contains(pid memory.PID) bool {
	return slices.Contains(r.pids, pid)
}

// PIDs returns the registered IDs in traversal order, starting at the cursor.
func (r *Registry) PIDs() []memory.PID {
	out := make([]memory.PID, 0, len(r.pids))
	out = append(out, r.pids[r.cursor:]...)
	return append(out, r.pids[:r.cursor]...)
}
