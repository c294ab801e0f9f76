package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supchaser/imagegrid/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func startQueue(t *testing.T) *Queue {
	t.Helper()
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = q.Run(ctx)
		close(stopped)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})
	return q
}

func TestQueue_RunsInDispatchOrder(t *testing.T) {
	q := startQueue(t)

	var got []int
	done := make(chan struct{})
	for i := 0; i < 100; i++ {
		i := i
		q.Dispatch(func() {
			got = append(got, i)
			if i == 99 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queue did not drain")
	}

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestQueue_NeverRunsJobsConcurrently(t *testing.T) {
	q := startQueue(t)

	var running, maxRunning int32
	var wg sync.WaitGroup
	const jobs = 50
	wg.Add(jobs)

	for i := 0; i < jobs; i++ {
		go q.Dispatch(func() {
			defer wg.Done()
			n := atomic.AddInt32(&running, 1)
			if n > atomic.LoadInt32(&maxRunning) {
				atomic.StoreInt32(&maxRunning, n)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&running, -1)
		})
	}

	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}

func TestQueue_DispatchBeforeRun(t *testing.T) {
	q := NewQueue()
	ran := make(chan struct{})
	q.Dispatch(func() { close(ran) })
	assert.Equal(t, 1, q.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = q.Run(ctx) }()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("queued job never ran")
	}
}

func TestQueue_SurvivesPanickingJob(t *testing.T) {
	q := startQueue(t)

	ran := make(chan struct{})
	q.Dispatch(func() { panic("boom") })
	q.Dispatch(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("queue stopped after a panicking job")
	}
}

func TestQueue_CloseDrainsAndDropsLaterJobs(t *testing.T) {
	q := NewQueue()
	var count int32
	q.Dispatch(func() { atomic.AddInt32(&count, 1) })
	q.Close()
	q.Dispatch(func() { atomic.AddInt32(&count, 1) })

	err := q.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&count))
	assert.Equal(t, 0, q.Len())
}

func TestQueue_RunReturnsContextError(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := q.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInline_RunsOnCaller(t *testing.T) {
	ran := false
	Inline{}.Dispatch(func() { ran = true })
	assert.True(t, ran)

	assert.NotPanics(t, func() { Inline{}.Dispatch(nil) })
}

func TestQueue_CancelledRunClosesQueue(t *testing.T) {
	q := NewQueue()
	q.Dispatch(func() {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a cancelled Run may still drain what was queued before it noticed
	err := q.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, q.Len())

	ran := false
	q.Dispatch(func() { ran = true })
	assert.Equal(t, 0, q.Len())
	assert.False(t, ran)
}
