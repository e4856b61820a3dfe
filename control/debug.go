// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.

package control

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// RingState is a point-in-time view of a ring buffer.
type RingState struct {
	Len     int
	Cap     int
	Empty   bool
	Full    bool
	Dropped uint64
}

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// RegisterRing inserts a probe reporting r's RingState.
func (dp *DebugProbes) RegisterRing(name string, r api.Inspector) {
	dp.RegisterProbe(name, func() any {
		return RingState{
			Len:     r.Len(),
			Cap:     r.Cap(),
			Empty:   r.IsEmpty(),
			Full:    r.IsFull(),
			Dropped: r.Dropped(),
		}
	})
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
