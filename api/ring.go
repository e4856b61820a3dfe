// Package api
// Author: momentics@gmail.com
//
// Ring buffer contracts shared by ring, control and test helpers.

package api

// Ring is a fixed-capacity FIFO ring buffer contract.
type Ring[T any] interface {
	// Push appends an item. Returns ErrBufferFull when full and not overwriting.
	Push(item T) error
	// Pop removes the oldest item. Returns ErrBufferEmpty when empty.
	Pop() (T, error)
	// Peek returns the oldest item without removing it.
	Peek() (T, error)
	// Clear logically empties the buffer.
	Clear()
	Inspector
}

// Inspector exposes read-only ring state for observability.
type Inspector interface {
	// Len returns current number of items.
	Len() int
	// Cap returns the number of storage slots, sentinel included.
	Cap() int
	IsEmpty() bool
	IsFull() bool
	// Dropped returns how many items were discarded by overwriting pushes.
	Dropped() uint64
}
