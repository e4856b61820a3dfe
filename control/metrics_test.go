package control

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/ring"
)

func TestCollector_ReportsRingState(t *testing.T) {
	r, err := ring.New[int](8, ring.WithOverwrite[int]())
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		require.NoError(t, r.Push(i))
	}

	c := NewCollector("hioload")
	c.Register("events", r)
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	expected := `
# HELP hioload_ring_capacity Storage slots of the ring buffer, sentinel included
# TYPE hioload_ring_capacity gauge
hioload_ring_capacity{ring="events"} 8
# HELP hioload_ring_dropped_total Items discarded by overwriting pushes
# TYPE hioload_ring_dropped_total counter
hioload_ring_dropped_total{ring="events"} 2
# HELP hioload_ring_len Current number of items in the ring buffer
# TYPE hioload_ring_len gauge
hioload_ring_len{ring="events"} 7
# HELP hioload_ring_usable Maximum number of items the ring buffer can hold
# TYPE hioload_ring_usable gauge
hioload_ring_usable{ring="events"} 7
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}

func TestCollector_RegisterUnregister(t *testing.T) {
	a, err := ring.New[int](4)
	require.NoError(t, err)
	b, err := ring.New[int](4, ring.WithThreadSafe[int]())
	require.NoError(t, err)

	c := NewCollector("")
	c.Register("b", b)
	c.Register("a", a)
	assert.Equal(t, []string{"a", "b"}, c.Names())
	assert.Equal(t, 8, testutil.CollectAndCount(c))

	assert.True(t, c.Unregister("a"))
	assert.False(t, c.Unregister("a"))
	assert.Equal(t, 4, testutil.CollectAndCount(c))
}
