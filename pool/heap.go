// File: pool/heap.go
// Author: momentics <momentics@gmail.com>

package pool

import "github.com/momentics/hioload-ring/api"

// Heap allocates storage from the Go heap and leaves reclamation to the GC.
type Heap[T any] struct{}

var _ api.Allocator[any] = Heap[any]{}

// NewHeap returns a heap allocator.
func NewHeap[T any]() Heap[T] { return Heap[T]{} }

// Allocate returns make([]T, n).
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, api.ErrInvalidCapacity.WithContext("capacity", n)
	}
	return make([]T, n), nil
}

// Release is a no-op; GC handles memory.
func (Heap[T]) Release(_ []T) {}
