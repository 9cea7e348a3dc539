package owners

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memsim/memory"
)

func newFilled(pids ...memory.PID) *Registry {
	r := New()
	for _, pid := range pids {
		r.Add(pid)
	}
	return r
}

func TestTake_Empty(t *testing.T) {
	r := New()
	pid, ok := r.Take(3)
	assert.False(t, ok)
	assert.Zero(t, pid)
	assert.Empty(t, r.PIDs())
}

func TestTake_OffsetZeroTakesCursor(t *testing.T) {
	r := newFilled(10, 20, 30)

	pid, ok := r.Take(0)
	require.True(t, ok)
	assert.Equal(t, memory.PID(10), pid)
	assert.Equal(t, []memory.PID{20, 30}, r.PIDs())
}

func TestTake_RelinksAroundRemovedEntry(t *testing.T) {
	r := newFilled(1, 2, 3, 4, 5)

	pid, ok := r.Take(2)
	require.True(t, ok)
	assert.Equal(t, memory.PID(3), pid)
	// Cursor now sits on the entry that followed the removed one.
	assert.Equal(t, []memory.PID{4, 5, 1, 2}, r.PIDs())

	pid, ok = r.Take(1)
	require.True(t, ok)
	assert.Equal(t, memory.PID(5), pid)
	assert.Equal(t, []memory.PID{1, 2, 4}, r.PIDs())
}

func TestTake_WrapsPastEnd(t *testing.T) {
	r := newFilled(1, 2, 3)

	pid, ok := r.Take(10) // 10 mod 3 == 1
	require.True(t, ok)
	assert.Equal(t, memory.PID(2), pid)
	assert.Equal(t, []memory.PID{3, 1}, r.PIDs())

	pid, ok = r.Take(1)
	require.True(t, ok)
	assert.Equal(t, memory.PID(1), pid)
	assert.Equal(t, []memory.PID{3}, r.PIDs())
}

func TestTake_LastEntryWrapsCursor(t *testing.T) {
	r := newFilled(1, 2, 3)

	pid, _ := r.Take(2)
	assert.Equal(t, memory.PID(3), pid)
	assert.Equal(t, []memory.PID{1, 2}, r.PIDs())
}

func TestTake_NegativeOffset(t *testing.T) {
	r := newFilled(1)
	_, ok := r.Take(-1)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestAdd_JoinsBehindCursor(t *testing.T) {
	r := newFilled(1, 2, 3, 4)
	_, _ = r.Take(1) // removes 2, cursor on 3

	r.Add(9)
	assert.Equal(t, []memory.PID{3, 4, 1, 9}, r.PIDs())
	assert.True(t, r.Contains(9))
	assert.False(t, r.Contains(2))
	assert.Equal(t, 4, r.Len())
}

func TestTakeUntilEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := New()
	want := map[memory.PID]int{}
	for i := range 50 {
		pid := memory.PID(i % 40) // a few duplicates on purpose
		r.Add(pid)
		want[pid]++
	}

	got := map[memory.PID]int{}
	for r.Len() > 0 {
		before := r.Len()
		pid, ok := r.Take(rng.Intn(11))
		require.True(t, ok)
		require.Equal(t, before-1, r.Len())
		got[pid]++
	}
	assert.Equal(t, want, got)
	_, ok := r.Take(0)
	assert.False(t, ok)
}
