// File: ring/index.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// index is a ring position. Concurrent buffers go through the atomic word,
// single-goroutine buffers through the plain one; a buffer never mixes them.
type index struct {
	shared atomic.Uint64
	local  uint64
}

func (i *index) load(concurrent bool) uint64 {
	if concurrent {
		return i.shared.Load()
	}
	return i.local
}

func (i *index) store(concurrent bool, v uint64) {
	if concurrent {
		i.shared.Store(v)
		return
	}
	i.local = v
}

// cursors keeps producer and consumer indices on separate cache lines.
type cursors struct {
	_    cpu.CacheLinePad
	head index // next slot to write
	_    cpu.CacheLinePad
	tail index // oldest valid slot
	_    cpu.CacheLinePad
}
