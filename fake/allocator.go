// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// Allocator is a recording allocator stub for testing.
// Set Err to make the next Allocate calls fail; set Short to hand out
// slices one element shorter than requested.
type Allocator[T any] struct {
	mu       sync.Mutex
	Err      error
	Short    bool
	allocs   []int
	releases []int
}

var _ api.Allocator[any] = (*Allocator[any])(nil)

func (f *Allocator[T]) Allocate(n int) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	f.allocs = append(f.allocs, n)
	if f.Short && n > 0 {
		return make([]T, n-1), nil
	}
	return make([]T, n), nil
}

func (f *Allocator[T]) Release(storage []T) {
	f.mu.Lock()
	f.releases = append(f.releases, len(storage))
	f.mu.Unlock()
}

// Allocs returns requested sizes in call order.
func (f *Allocator[T]) Allocs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.allocs...)
}

// Releases returns released slice lengths in call order.
func (f *Allocator[T]) Releases() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.releases...)
}
