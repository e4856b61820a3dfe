// File: pool/budget.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-ring/api"
)

// Budget limits the total number of slots outstanding through it.
// Requests that would exceed the limit fail with api.ErrOutOfMemory.
type Budget[T any] struct {
	limit    int64
	inUse    atomic.Int64
	upstream api.Allocator[T]
	log      logrus.FieldLogger
}

var _ api.Allocator[any] = (*Budget[any])(nil)

// NewBudget wraps upstream with a slot limit. A nil upstream means Heap.
func NewBudget[T any](limit int, upstream api.Allocator[T], log logrus.FieldLogger) *Budget[T] {
	if upstream == nil {
		upstream = NewHeap[T]()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Budget[T]{
		limit:    int64(limit),
		upstream: upstream,
		log:      log,
	}
}

// Allocate reserves n slots from the budget, then asks upstream.
func (b *Budget[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, api.ErrInvalidCapacity.WithContext("capacity", n)
	}
	for {
		cur := b.inUse.Load()
		if cur+int64(n) > b.limit {
			b.log.WithFields(logrus.Fields{
				"requested": n,
				"limit":     b.limit,
				"in_use":    cur,
			}).Warn("budget: allocation refused")
			return nil, api.ErrOutOfMemory.
				WithContext("requested", n).
				WithContext("limit", b.limit).
				WithContext("in_use", cur)
		}
		if b.inUse.CompareAndSwap(cur, cur+int64(n)) {
			break
		}
	}
	buf, err := b.upstream.Allocate(n)
	if err != nil {
		b.inUse.Add(-int64(n))
		return nil, err
	}
	return buf, nil
}

// Release returns the slots to the budget and the storage upstream.
func (b *Budget[T]) Release(storage []T) {
	if len(storage) == 0 {
		return
	}
	b.inUse.Add(-int64(len(storage)))
	b.upstream.Release(storage)
}

// InUse returns the number of slots currently reserved.
func (b *Budget[T]) InUse() int {
	return int(b.inUse.Load())
}

// Limit returns the configured slot limit.
func (b *Budget[T]) Limit() int {
	return int(b.limit)
}
