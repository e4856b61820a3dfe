// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines the allocator collaborator that supplies ring storage.

package api

// Allocator provides contiguous typed storage for ring buffers.
type Allocator[T any] interface {
	// Allocate returns a slice of exactly n zeroed elements,
	// or ErrOutOfMemory when the allocator cannot satisfy the request.
	Allocate(n int) ([]T, error)

	// Release returns storage obtained from Allocate.
	// The slice must not be used afterwards.
	Release(storage []T)
}
