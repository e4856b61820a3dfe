package pool

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/fake"
)

func newTestSlab(t *testing.T, opts ...SlabOption[int]) (*Slab[int], *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewSlab[int](append([]SlabOption[int]{WithSlabLogger[int](logger)}, opts...)...), hook
}

func TestHeap_Allocate(t *testing.T) {
	h := NewHeap[int]()
	buf, err := h.Allocate(9)
	require.NoError(t, err)
	assert.Len(t, buf, 9)

	_, err = h.Allocate(0)
	assert.ErrorIs(t, err, api.ErrInvalidCapacity)
}

func TestSlab_ReusesZeroedStorage(t *testing.T) {
	s, hook := newTestSlab(t)
	buf, err := s.Allocate(4)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = i + 1
	}
	s.Release(buf)

	again, err := s.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, again)
	assert.Same(t, &buf[0], &again[0], "storage must be reused")

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Allocated)
	assert.Equal(t, uint64(1), st.Reused)
	assert.Equal(t, uint64(1), st.Released)
	assert.Equal(t, 0, st.Cached)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestSlab_ClassesByLength(t *testing.T) {
	s, _ := newTestSlab(t)
	a, err := s.Allocate(4)
	require.NoError(t, err)
	s.Release(a)

	b, err := s.Allocate(8)
	require.NoError(t, err)
	assert.Len(t, b, 8)
	assert.Equal(t, uint64(2), s.Stats().Allocated)
	assert.Equal(t, 1, s.Stats().Cached)
}

func TestSlab_FreeListBounded(t *testing.T) {
	up := &fake.Allocator[int]{}
	s, hook := newTestSlab(t, WithMaxCached[int](2), WithUpstream[int](up))

	var bufs [][]int
	for i := 0; i < 3; i++ {
		b, err := s.Allocate(5)
		require.NoError(t, err)
		bufs = append(bufs, b)
	}
	for _, b := range bufs {
		s.Release(b)
	}

	st := s.Stats()
	assert.Equal(t, 2, st.Cached)
	assert.Equal(t, uint64(1), st.Dropped)
	assert.Equal(t, []int{5}, up.Releases())
	assert.Equal(t, "slab: free list full, releasing upstream", hook.LastEntry().Message)
}

func TestSlab_FIFOReuse(t *testing.T) {
	s, _ := newTestSlab(t)
	a, _ := s.Allocate(3)
	b, _ := s.Allocate(3)
	s.Release(a)
	s.Release(b)

	first, err := s.Allocate(3)
	require.NoError(t, err)
	assert.Same(t, &a[0], &first[0])
}

func TestSlab_UpstreamError(t *testing.T) {
	up := &fake.Allocator[int]{Err: api.ErrOutOfMemory}
	s, _ := newTestSlab(t, WithUpstream[int](up))
	_, err := s.Allocate(3)
	assert.ErrorIs(t, err, api.ErrOutOfMemory)
	assert.Zero(t, s.Stats().Allocated)
}

func TestSlab_InvalidLength(t *testing.T) {
	s, _ := newTestSlab(t)
	_, err := s.Allocate(0)
	assert.ErrorIs(t, err, api.ErrInvalidCapacity)
	s.Release(nil)
	assert.Zero(t, s.Stats().Released)
}
