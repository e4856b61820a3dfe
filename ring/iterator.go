// File: ring/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "iter"

// Iterator walks the items present when it was created, oldest first.
// It never moves the buffer's indices and does not observe later pushes or
// pops. It must not outlive the buffer.
type Iterator[T any] struct {
	r         *RingBuffer[T]
	cursor    uint64
	remaining int
}

// Iterator returns a fresh snapshot iterator.
func (r *RingBuffer[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		r:         r,
		cursor:    r.pos.tail.load(r.concurrent),
		remaining: r.Len(),
	}
}

// Next returns the next item, or false once the snapshot is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	item := it.r.storage[it.cursor]
	it.cursor = it.r.advance(it.cursor)
	it.remaining--
	return item, true
}

// Remaining returns how many items Next will still yield.
func (it *Iterator[T]) Remaining() int {
	return it.remaining
}

// All ranges over a fresh iterator.
func (r *RingBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := r.Iterator()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
