// File: ring/options.go
// Package ring defines functional options for RingBuffer construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/hioload-ring/api"

// Option customizes ring buffer initialization.
type Option[T any] func(*settings[T])

type settings[T any] struct {
	concurrent bool
	overwrite  bool
	alloc      api.Allocator[T]
}

// WithThreadSafe publishes head and tail atomically for one producer and one consumer.
func WithThreadSafe[T any]() Option[T] {
	return func(s *settings[T]) {
		s.concurrent = true
	}
}

// WithOverwrite makes Push on a full buffer discard the oldest item.
func WithOverwrite[T any]() Option[T] {
	return func(s *settings[T]) {
		s.overwrite = true
	}
}

// WithAllocator overrides the default heap allocator.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(s *settings[T]) {
		s.alloc = a
	}
}
