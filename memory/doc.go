// Package memory models the fixed-size memory pool that the placement
// policies in memory/alloc search and mutate.
//
// # Units
//
// A Pool is an ordered, fixed-length sequence of units. Every unit has the
// same capacity (the block size). A unit whose Free value equals the block
// size is fully free; anything lower means the unit is owned by a process:
//
//	Free == BlockSize  → free, Owner ignored
//	Free <  BlockSize  → owned by Owner, Free bytes of slack inside it
//
// Units are stored in a slice and addressed by index. The order of units is
// fixed when the pool is built; only their state changes afterwards.
//
// # Mutation
//
// Pools are mutated through two operations only:
//
//   - Claim(start, blocks, pid, lastFree): take a run of fully free units
//   - Release(i): return a single unit to the fully free state
//
// Claim validates the whole run before touching it, so a failed claim leaves
// the pool unchanged.
//
// # Thread Safety
//
// Pool instances are not thread-safe. A simulation run owns its pool for the
// duration of the run.
package memory
