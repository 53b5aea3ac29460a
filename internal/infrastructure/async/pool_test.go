package async

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPoolRunsTasks(t *testing.T) {
	pool := NewPool(4, 16, zap.NewNop())
	defer func() { _ = pool.Stop(context.Background()) }()

	var count atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			count.Add(1)
		}))
	}
	wg.Wait()
	assert.Equal(t, int32(50), count.Load())
}

func TestPoolRecoversFromPanic(t *testing.T) {
	pool := NewPool(1, 4, zap.NewNop())
	defer func() { _ = pool.Stop(context.Background()) }()

	require.NoError(t, pool.Submit(func() { panic("boom") }))

	// the worker must survive and process the next task
	done := make(chan struct{})
	require.NoError(t, pool.Submit(func() { close(done) }))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive panic")
	}
}

func TestPoolStop(t *testing.T) {
	pool := NewPool(2, 4, zap.NewNop())
	require.NoError(t, pool.Stop(context.Background()))

	err := pool.Submit(func() {})
	assert.ErrorIs(t, err, ErrPoolStopped)

	// repeated Stop is a no-op
	require.NoError(t, pool.Stop(context.Background()))
}

func TestPoolDispatchDoesNotBlockWhenQueueFull(t *testing.T) {
	pool := NewPool(1, 1, zap.NewNop())
	defer func() { _ = pool.Stop(context.Background()) }()

	// occupy the only worker and fill the queue
	block := make(chan struct{})
	require.NoError(t, pool.Submit(func() { <-block }))
	require.NoError(t, pool.Submit(func() {}))

	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < 5; i++ {
		wg.Add(1)
		require.NoError(t, pool.Dispatch(func() {
			defer wg.Done()
		}))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	wg.Wait()
	close(block)
}

func TestPoolDispatchAfterStop(t *testing.T) {
	pool := NewPool(1, 4, zap.NewNop())
	require.NoError(t, pool.Stop(context.Background()))
	assert.ErrorIs(t, pool.Dispatch(func() {}), ErrPoolStopped)
}

func TestPoolSubmitDuringStopDoesNotPanic(t *testing.T) {
	// submitters racing Stop must get either an accepted task or
	// ErrPoolStopped, never a send on a closed channel
	for i := 0; i < 200; i++ {
		pool := NewPool(2, 4, zap.NewNop())

		var wg sync.WaitGroup
		for j := 0; j < 4; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					if err := pool.Submit(func() {}); err != nil {
						assert.ErrorIs(t, err, ErrPoolStopped)
						return
					}
				}
			}()
		}

		require.NoError(t, pool.Stop(context.Background()))
		wg.Wait()
	}
}

func TestPoolStopDrainsQueuedTasks(t *testing.T) {
	pool := NewPool(1, 16, zap.NewNop())

	var count atomic.Int32
	for i := 0; i < 10; i++ {
		require.NoError(t, pool.Submit(func() {
			count.Add(1)
		}))
	}

	require.NoError(t, pool.Stop(context.Background()))
	assert.Equal(t, int32(10), count.Load())
}
