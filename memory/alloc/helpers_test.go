package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memsim/memory"
)

// layoutOwner owns every 'x' unit built by newLayoutPool.
const layoutOwner memory.PID = 999

// newLayoutPool builds a pool from a layout string: '.' is a free unit and
// 'x' is a unit completely owned by layoutOwner.
func newLayoutPool(t testing.TB, layout string, blockSize int) *memory.Pool {
	t.Helper()
	p, err := memory.New(len(layout), blockSize)
	require.NoError(t, err)
	for i, c := range layout {
		switch c {
		case '.':
		case 'x':
			require.NoError(t, p.Claim(i, 1, layoutOwner, 0))
		default:
			t.Fatalf("bad layout byte %q at %d", c, i)
		}
	}
	return p
}

// allAllocators returns one allocator per policy, each over its own copy of layout.
func allAllocators(t testing.TB, layout string, blockSize int) map[Policy]Allocator {
	t.Helper()
	out := make(map[Policy]Allocator, 3)
	for _, policy := range Policies() {
		a, err := New(policy, newLayoutPool(t, layout, blockSize))
		require.NoError(t, err)
		out[policy] = a
	}
	return out
}

// assertClaimed checks that [start, start+blocks) belongs to pid and the last
// unit carries units mod BlockSize of free capacity.
func assertClaimed(t *testing.T, p *memory.Pool, start, blocks int, pid memory.PID, units int) {
	t.Helper()
	for i := start; i < start+blocks; i++ {
		assert.False(t, p.IsFree(i), "unit %d should be owned", i)
		assert.True(t, p.OwnedBy(i, pid), "unit %d should belong to %d", i, pid)
	}
	last := p.Unit(start + blocks - 1)
	assert.Equal(t, units%p.BlockSize(), last.Free, "last unit slack")
	for i := start; i < start+blocks-1; i++ {
		assert.Equal(t, 0, p.Unit(i).Free, "unit %d should be full", i)
	}
}

// assertPoolInvariants checks capacity bounds and conservation.
func assertPoolInvariants(t *testing.T, p *memory.Pool) {
	t.Helper()
	total := 0
	for i := range p.Len() {
		u := p.Unit(i)
		require.GreaterOrEqual(t, u.Free, 0, "unit %d below zero", i)
		require.LessOrEqual(t, u.Free, p.BlockSize(), "unit %d above block size", i)
		total += u.Free
		if !p.IsFree(i) {
			total += p.BlockSize() - u.Free
		}
	}
	require.Equal(t, p.Len()*p.BlockSize(), total, "capacity not conserved")
}

// poolOf digs the pool back out of an allocator built in this package.
func poolOf(a Allocator) *memory.Pool {
	switch v := a.(type) {
	case *FirstFitAllocator:
		return v.pool
	case *BestFitAllocator:
		return v.pool
	case *WorstFitAllocator:
		return v.pool
	}
	return nil
}
