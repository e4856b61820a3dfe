// File: pool/slab.go
// Package pool implements storage reuse with per-length free lists.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-ring/api"
)

const defaultMaxCached = 8

// SlabStats aggregates allocation/reuse counters.
type SlabStats struct {
	Allocated uint64 // served by the upstream allocator
	Reused    uint64 // served from a free list
	Released  uint64 // cached on Release
	Dropped   uint64 // handed back upstream because the free list was full
	Cached    int    // slices currently held
}

// Slab caches released storage keyed by exact length. Each length class
// keeps at most MaxCached slices in FIFO order; overflow goes upstream.
type Slab[T any] struct {
	mu        sync.Mutex
	classes   map[int]*queue.Queue
	maxCached int
	upstream  api.Allocator[T]
	log       logrus.FieldLogger
	stats     SlabStats
}

var _ api.Allocator[any] = (*Slab[any])(nil)

// SlabOption customizes a Slab.
type SlabOption[T any] func(*Slab[T])

// WithMaxCached bounds each length class. Values below 1 are ignored.
func WithMaxCached[T any](n int) SlabOption[T] {
	return func(s *Slab[T]) {
		if n > 0 {
			s.maxCached = n
		}
	}
}

// WithUpstream sets the allocator used on free-list misses.
func WithUpstream[T any](a api.Allocator[T]) SlabOption[T] {
	return func(s *Slab[T]) {
		s.upstream = a
	}
}

// WithSlabLogger sets the logger; defaults to logrus.StandardLogger().
func WithSlabLogger[T any](l logrus.FieldLogger) SlabOption[T] {
	return func(s *Slab[T]) {
		s.log = l
	}
}

// NewSlab creates an empty slab allocator.
func NewSlab[T any](opts ...SlabOption[T]) *Slab[T] {
	s := &Slab[T]{
		classes:   make(map[int]*queue.Queue),
		maxCached: defaultMaxCached,
		upstream:  NewHeap[T](),
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allocate returns a zeroed slice of length n, reusing cached storage when possible.
func (s *Slab[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, api.ErrInvalidCapacity.WithContext("capacity", n)
	}
	s.mu.Lock()
	if q, ok := s.classes[n]; ok && q.Length() > 0 {
		buf := q.Remove().([]T)
		s.stats.Reused++
		s.stats.Cached--
		s.mu.Unlock()
		clear(buf)
		s.log.WithField("len", n).Debug("slab: reused storage")
		return buf, nil
	}
	s.mu.Unlock()

	buf, err := s.upstream.Allocate(n)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.stats.Allocated++
	s.mu.Unlock()
	return buf, nil
}

// Release caches storage for reuse, or hands it upstream if its class is full.
func (s *Slab[T]) Release(storage []T) {
	n := len(storage)
	if n == 0 {
		return
	}
	s.mu.Lock()
	q, ok := s.classes[n]
	if !ok {
		q = queue.New()
		s.classes[n] = q
	}
	if q.Length() >= s.maxCached {
		s.stats.Dropped++
		s.mu.Unlock()
		s.log.WithFields(logrus.Fields{"len": n, "max_cached": s.maxCached}).
			Debug("slab: free list full, releasing upstream")
		s.upstream.Release(storage)
		return
	}
	q.Add(storage)
	s.stats.Released++
	s.stats.Cached++
	s.mu.Unlock()
}

// Stats returns a snapshot of slab counters.
func (s *Slab[T]) Stats() SlabStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
