// Package arena implement a growable slot table for tree nodes.
// Structural links between nodes become int32 slot indices instead of
// pointers, which sidesteps parent/child ownership cycles, and every
// slot carries a generation counter bumped on free, which makes stale
// references detectable in O(1).
package arena

import "fmt"

import "github.com/burner/dcollections/api"

// Arena slot table of T values. Not safe for concurrent use.
type Arena[T any] struct {
	// stats
	n_allocs int64
	n_frees  int64
	n_resets int64

	capacity int64 // max live slots
	minslabs int64 // initial slab, in slots
	slots    []T
	gens     []uint32
	live     []bool
	freelist []int32
}

// New arena hosting at most capacity live slots, materializing
// minslabs slots up front. Slabs grow by doubling thereafter.
func New[T any](capacity, minslabs int64) *Arena[T] {
	if capacity <= 0 {
		panic("arena.New(): zero capacity, call the programmer")
	}
	if minslabs <= 0 {
		minslabs = 1
	} else if minslabs > capacity {
		minslabs = capacity
	}
	return &Arena[T]{
		capacity: capacity,
		minslabs: minslabs,
		slots:    make([]T, 0, minslabs),
		gens:     make([]uint32, 0, minslabs),
		live:     make([]bool, 0, minslabs),
	}
}

// Alloc return a zeroed slot, from the free list when possible,
// otherwise by extending the slab. api.ErrorOutofMemory once capacity
// live slots are reached.
func (a *Arena[T]) Alloc() (int32, error) {
	if n := len(a.freelist); n > 0 {
		slot := a.freelist[n-1]
		a.freelist = a.freelist[:n-1]
		a.live[slot] = true
		a.n_allocs++
		return slot, nil
	}
	if int64(len(a.slots)) >= a.capacity {
		return -1, api.ErrorOutofMemory
	}
	var zero T
	a.slots = append(a.slots, zero)
	a.gens = append(a.gens, 0)
	a.live = append(a.live, true)
	a.n_allocs++
	return int32(len(a.slots) - 1), nil
}

// Free release slot back to the free list, zeroing its value so held
// references are dropped, and bump its generation so outstanding refs
// to it stop matching.
func (a *Arena[T]) Free(slot int32) {
	a.boundscheck(slot)
	if a.live[slot] == false {
		panic(fmt.Errorf("arena.Free(%v): double free, call the programmer", slot))
	}
	var zero T
	a.slots[slot] = zero
	a.gens[slot]++
	a.live[slot] = false
	a.freelist = append(a.freelist, slot)
	a.n_frees++
}

// At return the value under a live slot. The pointer is valid only
// until the next Alloc, the slab may move when it grows.
func (a *Arena[T]) At(slot int32) *T {
	a.boundscheck(slot)
	return &a.slots[slot]
}

// Gen current generation of slot.
func (a *Arena[T]) Gen(slot int32) uint32 {
	a.boundscheck(slot)
	return a.gens[slot]
}

// Live true if slot is currently allocated.
func (a *Arena[T]) Live(slot int32) bool {
	if slot < 0 || int(slot) >= len(a.slots) {
		return false
	}
	return a.live[slot]
}

// Reset free every live slot in one sweep, keeping the slabs. All
// generations of freed slots are bumped, so every outstanding
// reference turns stale.
func (a *Arena[T]) Reset() {
	var zero T
	a.freelist = a.freelist[:0]
	for slot := len(a.slots) - 1; slot >= 0; slot-- {
		if a.live[slot] {
			a.slots[slot] = zero
			a.gens[slot]++
			a.live[slot] = false
			a.n_frees++
		}
		a.freelist = append(a.freelist, int32(slot))
	}
	a.n_resets++
}

// Allocated number of live slots.
func (a *Arena[T]) Allocated() int64 {
	return int64(len(a.slots) - len(a.freelist))
}

// Available number of further allocations before out-of-memory.
func (a *Arena[T]) Available() int64 {
	return a.capacity - a.Allocated()
}

// Capacity configured ceiling on live slots.
func (a *Arena[T]) Capacity() int64 {
	return a.capacity
}

// Slots number of materialized slots, live or free.
func (a *Arena[T]) Slots() int64 {
	return int64(len(a.slots))
}

// Utilization ratio of live slots over materialized slots.
func (a *Arena[T]) Utilization() float64 {
	if len(a.slots) == 0 {
		return 0
	}
	return float64(a.Allocated()) / float64(len(a.slots))
}

// Stats slot accounting for this arena.
func (a *Arena[T]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"slots.allocated": a.Allocated(),
		"slots.available": a.Available(),
		"slots.capacity":  a.capacity,
		"slots.extent":    a.Slots(),
		"n_allocs":        a.n_allocs,
		"n_frees":         a.n_frees,
		"n_resets":        a.n_resets,
	}
}

func (a *Arena[T]) boundscheck(slot int32) {
	if slot < 0 || int(slot) >= len(a.slots) {
		panic(fmt.Errorf("arena: slot %v out of bounds, call the programmer", slot))
	}
}
