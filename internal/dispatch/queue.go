// Package dispatch provides the completion context that batch callbacks run on.
//
// A Queue executes dispatched functions one at a time on the goroutine that
// called Run, in dispatch order. Code that mutates shared presentation state
// from completion callbacks can rely on never running concurrently with
// another callback dispatched on the same Queue.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/supchaser/imagegrid/internal/metrics"
	"github.com/supchaser/imagegrid/internal/utils/logger"
	"go.uber.org/zap"
)

type Dispatcher interface {
	Dispatch(fn func())
}

type Queue struct {
	mu     sync.Mutex
	jobs   []func()
	closed bool
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func NewQueue() *Queue {
	return &Queue{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Dispatch never blocks. Jobs dispatched after Close are dropped.
func (q *Queue) Dispatch(fn func()) {
	const funcName = "Queue.Dispatch"
	if fn == nil {
		return
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		logger.Warn("dispatch on closed queue, job dropped",
			zap.String("function", funcName),
		)
		return
	}
	q.jobs = append(q.jobs, fn)
	metrics.DispatchBacklog.Set(float64(len(q.jobs)))
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Run drains the queue until ctx is cancelled or Close is called. Cancelling
// ctx closes the queue. Only one Run may be active per Queue.
func (q *Queue) Run(ctx context.Context) error {
	const funcName = "Queue.Run"
	logger.Debug("completion queue started",
		zap.String("function", funcName),
	)

	for {
		q.drain()

		select {
		case <-ctx.Done():
			q.Close()
			dropped := q.discard()
			logger.Debug("completion queue stopped",
				zap.String("function", funcName),
				zap.Int("dropped_jobs", dropped),
				zap.Error(ctx.Err()),
			)
			return ctx.Err()
		case <-q.done:
			q.drain()
			logger.Debug("completion queue closed",
				zap.String("function", funcName),
			)
			return nil
		case <-q.notify:
		}
	}
}

func (q *Queue) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		close(q.done)
	})
}

// discard empties a closed queue that will never be drained again.
func (q *Queue) discard() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.jobs)
	q.jobs = nil
	metrics.DispatchBacklog.Set(0)
	return n
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.jobs) == 0 {
			q.mu.Unlock()
			return
		}
		fn := q.jobs[0]
		q.jobs[0] = nil
		q.jobs = q.jobs[1:]
		metrics.DispatchBacklog.Set(float64(len(q.jobs)))
		q.mu.Unlock()

		q.execute(fn)
	}
}

func (q *Queue) execute(fn func()) {
	const funcName = "Queue.execute"
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("dispatched job panicked",
				zap.String("function", funcName),
				zap.String("panic", fmt.Sprint(rec)),
			)
		}
	}()
	fn()
}

// Inline runs every job on the dispatching goroutine.
type Inline struct{}

func (Inline) Dispatch(fn func()) {
	if fn != nil {
		fn()
	}
}
