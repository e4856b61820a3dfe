// Package pool
// Author: momentics <momentics@gmail.com>
//
// Storage allocators for ring buffers.
// Heap is the default; Slab reuses released storage of matching length;
// Budget caps the number of slots outstanding across buffers.
// See heap.go, slab.go, budget.go for implementation details.
package pool
