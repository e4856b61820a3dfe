package ring

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

// TestSPSC_OrderPreserved runs one producer and one consumer concurrently;
// run with -race to check index publication.
func TestSPSC_OrderPreserved(t *testing.T) {
	for _, c := range []int{7, 64} {
		r, err := New[int](c, WithThreadSafe[int]())
		require.NoError(t, err)
		const items = 20000

		go func() {
			for i := 0; i < items; i++ {
				for {
					err := r.Push(i)
					if err == nil {
						break
					}
					if !errors.Is(err, api.ErrBufferFull) {
						panic(err)
					}
					runtime.Gosched()
				}
			}
		}()

		done := make(chan []int)
		go func() {
			got := make([]int, 0, items)
			for len(got) < items {
				v, err := r.Pop()
				if errors.Is(err, api.ErrBufferEmpty) {
					runtime.Gosched()
					continue
				}
				got = append(got, v)
			}
			done <- got
		}()

		select {
		case got := <-done:
			require.Len(t, got, items)
			for i, v := range got {
				if v != i {
					t.Fatalf("capacity %d: position %d got %d", c, i, v)
				}
			}
		case <-time.After(10 * time.Second):
			t.Fatalf("capacity %d: timeout waiting for consumer", c)
		}
		assert.True(t, r.IsEmpty())
	}
}

// TestSPSC_PeekSeesPublishedValue checks a consumer never observes a slot
// before the producer's write to it.
func TestSPSC_PeekSeesPublishedValue(t *testing.T) {
	type msg struct{ seq, check int }
	r, err := New[*msg](16, WithThreadSafe[*msg]())
	require.NoError(t, err)
	const items = 5000

	go func() {
		for i := 0; i < items; i++ {
			m := &msg{seq: i, check: i * 3}
			for r.Push(m) != nil {
				runtime.Gosched()
			}
		}
	}()

	deadline := time.After(10 * time.Second)
	for want := 0; want < items; {
		select {
		case <-deadline:
			t.Fatalf("timeout at %d", want)
		default:
		}
		p, err := r.Peek()
		if err != nil {
			runtime.Gosched()
			continue
		}
		require.NotNil(t, p)
		require.Equal(t, want, p.seq)
		require.Equal(t, p.seq*3, p.check)
		v, err := r.Pop()
		require.NoError(t, err)
		require.Same(t, p, v)
		want++
	}
}
