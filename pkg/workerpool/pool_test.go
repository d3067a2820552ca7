package workerpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitExecutesTask(t *testing.T) {
	pool := New(Config{CoreWorkers: 2, MaxWorkers: 2, QueueCapacity: 4})
	defer shutdownQuietly(pool)

	done := make(chan struct{})
	require.NoError(t, pool.Submit(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task was not executed")
	}
}

func TestSubmitRejectsWhenSaturated(t *testing.T) {
	pool := New(Config{CoreWorkers: 1, MaxWorkers: 1, QueueCapacity: 1})
	defer shutdownQuietly(pool)

	release := make(chan struct{})
	started := make(chan struct{})

	// Occupy the only worker.
	require.NoError(t, pool.Submit(func() {
		close(started)
		<-release
	}))
	<-started

	// Fill the queue.
	require.NoError(t, pool.Submit(func() {}))

	// Queue full, no overflow headroom: fails synchronously.
	err := pool.Submit(func() {})
	assert.ErrorIs(t, err, ErrSaturated)

	close(release)
}

func TestOverflowWorkersSpawnAndRetire(t *testing.T) {
	pool := New(Config{
		CoreWorkers:   1,
		MaxWorkers:    2,
		QueueCapacity: 1,
		IdleTimeout:   20 * time.Millisecond,
	})
	defer shutdownQuietly(pool)

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, pool.Submit(func() {
		close(started)
		<-release
	}))
	<-started

	require.NoError(t, pool.Submit(func() {})) // queued

	// Queue full but below MaxWorkers: an overflow worker takes this one.
	overflowRan := make(chan struct{})
	require.NoError(t, pool.Submit(func() { close(overflowRan) }))

	select {
	case <-overflowRan:
	case <-time.After(time.Second):
		t.Fatal("overflow task was not executed")
	}
	assert.Equal(t, 2, pool.WorkerCount())

	// After the idle timeout the overflow worker retires.
	require.Eventually(t, func() bool {
		return pool.WorkerCount() == 1
	}, time.Second, 10*time.Millisecond)

	close(release)
}

func TestShutdownDrainsQueuedWork(t *testing.T) {
	pool := New(Config{CoreWorkers: 2, MaxWorkers: 2, QueueCapacity: 32})

	var executed atomic.Int32
	for i := 0; i < 20; i++ {
		require.NoError(t, pool.Submit(func() {
			time.Sleep(time.Millisecond)
			executed.Add(1)
		}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))

	assert.Equal(t, int32(20), executed.Load())
}

func TestShutdownForceCancelsAfterGrace(t *testing.T) {
	pool := New(Config{CoreWorkers: 1, MaxWorkers: 1, QueueCapacity: 8})

	started := make(chan struct{})
	require.NoError(t, pool.Submit(func() {
		close(started)
		select {} // never finishes
	}))
	<-started

	// Queued behind the stuck task; will be abandoned.
	require.NoError(t, pool.Submit(func() {}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := pool.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSubmitAfterShutdown(t *testing.T) {
	pool := New(Config{CoreWorkers: 1, MaxWorkers: 1, QueueCapacity: 1})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))

	err := pool.Submit(func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func shutdownQuietly(pool *Pool) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = pool.Shutdown(ctx)
}
