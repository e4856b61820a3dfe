// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer with a reserved sentinel slot,
// optional atomic head/tail publication and an optional drop-oldest policy.
// Implements api.Ring for cross-package consistency.

package ring

import (
	"math/bits"
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a fixed-capacity FIFO buffer (single-producer, single-consumer
// safe when built WithThreadSafe).
type RingBuffer[T any] struct {
	pos      cursors
	storage  []T
	capacity uint64
	mask     *uint64 // nil unless capacity is a power of two

	concurrent bool
	overwrite  bool
	alloc      api.Allocator[T]

	dropped atomic.Uint64
}

// New allocates a ring buffer with capacity slots, capacity-1 of them usable.
func New[T any](capacity int, opts ...Option[T]) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, api.ErrInvalidCapacity.WithContext("capacity", capacity)
	}
	s := settings[T]{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.concurrent && s.overwrite {
		return nil, api.ErrIncompatibleOptions
	}
	if s.alloc == nil {
		s.alloc = pool.NewHeap[T]()
	}

	storage, err := s.alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	if len(storage) != capacity {
		s.alloc.Release(storage)
		return nil, api.ErrOutOfMemory.
			WithContext("requested", capacity).
			WithContext("got", len(storage))
	}

	return &RingBuffer[T]{
		storage:    storage,
		capacity:   uint64(capacity),
		mask:       wrapMask(uint64(capacity)),
		concurrent: s.concurrent,
		overwrite:  s.overwrite,
		alloc:      s.alloc,
	}, nil
}

// wrapMask returns capacity-1 when capacity is a power of two.
func wrapMask(capacity uint64) *uint64 {
	if bits.OnesCount64(capacity) != 1 {
		return nil
	}
	m := capacity - 1
	return &m
}

// advance returns the slot after i.
func (r *RingBuffer[T]) advance(i uint64) uint64 {
	if r.mask != nil {
		return (i + 1) & *r.mask
	}
	return (i + 1) % r.capacity
}

// Push appends item. On a full buffer it returns api.ErrBufferFull, or,
// when overwriting, discards the oldest item first.
func (r *RingBuffer[T]) Push(item T) error {
	head := r.pos.head.load(r.concurrent)
	tail := r.pos.tail.load(r.concurrent)
	next := r.advance(head)
	if next == tail {
		if !r.overwrite {
			return api.ErrBufferFull
		}
		r.pos.tail.store(r.concurrent, r.advance(tail))
		r.dropped.Add(1)
	}
	// Slot write must be visible before head moves.
	r.storage[head] = item
	r.pos.head.store(r.concurrent, next)
	return nil
}

// Pop removes and returns the oldest item. The vacated slot keeps its value
// until a later Push overwrites it, so live iterators stay valid.
func (r *RingBuffer[T]) Pop() (T, error) {
	tail := r.pos.tail.load(r.concurrent)
	if tail == r.pos.head.load(r.concurrent) {
		var zero T
		return zero, api.ErrBufferEmpty
	}
	item := r.storage[tail]
	r.pos.tail.store(r.concurrent, r.advance(tail))
	return item, nil
}

// Peek returns the oldest item without removing it.
func (r *RingBuffer[T]) Peek() (T, error) {
	tail := r.pos.tail.load(r.concurrent)
	if tail == r.pos.head.load(r.concurrent) {
		var zero T
		return zero, api.ErrBufferEmpty
	}
	return r.storage[tail], nil
}

// Clear resets both indices to zero. Slots are not scanned; stale values
// stay referenced until overwritten. Neither side may be active during Clear.
func (r *RingBuffer[T]) Clear() {
	r.pos.head.store(r.concurrent, 0)
	r.pos.tail.store(r.concurrent, 0)
}

// IsEmpty reports whether the buffer holds no items.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.pos.head.load(r.concurrent) == r.pos.tail.load(r.concurrent)
}

// IsFull reports whether the next Push would hit the sentinel slot.
func (r *RingBuffer[T]) IsFull() bool {
	return r.advance(r.pos.head.load(r.concurrent)) == r.pos.tail.load(r.concurrent)
}

// Len returns number of items currently in buffer.
func (r *RingBuffer[T]) Len() int {
	head := r.pos.head.load(r.concurrent)
	tail := r.pos.tail.load(r.concurrent)
	return int(r.distance(tail, head))
}

// distance is the modular count of slots in [from, to).
func (r *RingBuffer[T]) distance(from, to uint64) uint64 {
	if to >= from {
		return to - from
	}
	return r.capacity - (from - to)
}

// Cap returns the number of storage slots, sentinel included.
func (r *RingBuffer[T]) Cap() int {
	return int(r.capacity)
}

// Usable returns the maximum number of items the buffer can hold.
func (r *RingBuffer[T]) Usable() int {
	return int(r.capacity - 1)
}

// Dropped returns how many items overwriting pushes have discarded.
func (r *RingBuffer[T]) Dropped() uint64 {
	return r.dropped.Load()
}

// ThreadSafe reports whether indices are published atomically.
func (r *RingBuffer[T]) ThreadSafe() bool { return r.concurrent }

// Overwrites reports whether a full Push discards the oldest item.
func (r *RingBuffer[T]) Overwrites() bool { return r.overwrite }

// Destroy returns storage to the allocator. The buffer and any iterator
// over it must not be used afterwards.
func (r *RingBuffer[T]) Destroy() {
	if r.storage == nil {
		return
	}
	r.alloc.Release(r.storage)
	r.storage = nil
}
