// Package tracker fans a list of image requests out to concurrent fetches and
// reports the successful artifacts once every fetch has settled.
package tracker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/supchaser/imagegrid/internal/app"
	"github.com/supchaser/imagegrid/internal/app/models"
	"github.com/supchaser/imagegrid/internal/dispatch"
	"github.com/supchaser/imagegrid/internal/metrics"
	"github.com/supchaser/imagegrid/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const drainPollInterval = 20 * time.Millisecond

type Tracker struct {
	fetcher    app.ImageFetcher
	completion dispatch.Dispatcher
	inFlight   atomic.Int64
}

// CreateTracker returns a Tracker whose completions run on completion. A nil
// dispatcher runs completions inline on the goroutine of the last settlement.
func CreateTracker(fetcher app.ImageFetcher, completion dispatch.Dispatcher) *Tracker {
	if completion == nil {
		completion = dispatch.Inline{}
	}
	return &Tracker{
		fetcher:    fetcher,
		completion: completion,
	}
}

// batchState is owned by a single FetchAll call and never leaves it.
type batchState struct {
	mu          sync.Mutex
	outstanding int
	images      []*models.Artifact
	failed      int
	completed   bool
}

// settle records one outcome. It reports true exactly once: for the
// settlement that brings outstanding to zero.
func (b *batchState) settle(result models.FetchResult) (bool, []*models.Artifact, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.completed {
		return false, nil, 0
	}

	if result.OK() {
		b.images = append(b.images, result.Artifact)
	} else {
		b.failed++
	}

	b.outstanding--
	if b.outstanding > 0 {
		return false, nil, 0
	}

	b.completed = true
	return true, b.images, b.failed
}

// FetchAll launches one fetch per request without waiting on any of them and
// returns immediately. completion runs exactly once on the tracker's
// dispatcher after all fetches have settled, with the decoded artifacts in
// settlement order. Failed fetches are left out of the result.
func (t *Tracker) FetchAll(ctx context.Context, reqs []models.ResourceRequest, completion func([]*models.Artifact)) {
	const funcName = "Tracker.FetchAll"
	start := time.Now()
	total := len(reqs)

	metrics.BatchSize.Observe(float64(total))
	metrics.BatchesInFlight.Inc()
	t.inFlight.Add(1)

	logger.Debug("starting batch fetch",
		zap.String("function", funcName),
		zap.Int("requests", total),
	)

	if total == 0 {
		t.complete(funcName, start, 0, 0, []*models.Artifact{}, completion)
		return
	}

	state := &batchState{
		outstanding: total,
		images:      make([]*models.Artifact, 0, total),
	}

	for _, req := range reqs {
		// a request settles once even if its callback fires again
		var once sync.Once
		t.fetcher.FetchOne(ctx, req, func(result models.FetchResult) {
			once.Do(func() {
				done, images, failed := state.settle(result)
				if !done {
					return
				}
				t.complete(funcName, start, total, failed, images, completion)
			})
		})
	}
}

func (t *Tracker) complete(funcName string, start time.Time, total, failed int, images []*models.Artifact, completion func([]*models.Artifact)) {
	metrics.BatchesInFlight.Dec()
	metrics.BatchesTotal.Inc()

	logger.Info("batch fetch settled",
		zap.String("function", funcName),
		zap.Int("requests", total),
		zap.Int("images", len(images)),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(start)),
	)

	t.completion.Dispatch(func() {
		completion(images)
	})
	t.inFlight.Add(-1)
}

// InFlight reports how many FetchAll batches have not yet handed their
// completion to the dispatcher.
func (t *Tracker) InFlight() int64 {
	return t.inFlight.Load()
}

// Drain blocks until every FetchAll batch started so far has dispatched its
// completion, or ctx is done.
func (t *Tracker) Drain(ctx context.Context) error {
	const funcName = "Tracker.Drain"

	ticker := time.NewTicker(drainPollInterval)
	defer ticker.Stop()

	for {
		pending := t.inFlight.Load()
		if pending == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Warn("batches still in flight",
				zap.String("function", funcName),
				zap.Int64("batches", pending),
			)
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Collect fetches every request concurrently and blocks until all have
// settled. The result keeps request order with failures removed. When ctx is
// done before every fetch settles, the artifacts gathered so far are returned
// together with the context error.
func (t *Tracker) Collect(ctx context.Context, reqs []models.ResourceRequest) ([]*models.Artifact, error) {
	const funcName = "Tracker.Collect"
	start := time.Now()

	slots := make([]*models.Artifact, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			artifact, err := t.fetcher.Fetch(gctx, req)
			if err != nil {
				// a single bad image is dropped; only cancellation stops the batch
				return gctx.Err()
			}
			slots[i] = artifact
			return nil
		})
	}
	err := g.Wait()

	images := make([]*models.Artifact, 0, len(slots))
	for _, a := range slots {
		if a != nil {
			images = append(images, a)
		}
	}

	metrics.BatchSize.Observe(float64(len(reqs)))
	metrics.BatchesTotal.Inc()

	if err != nil {
		logger.Warn("batch collect interrupted",
			zap.String("function", funcName),
			zap.Int("requests", len(reqs)),
			zap.Int("images", len(images)),
			zap.Error(err),
		)
		return images, err
	}

	logger.Info("batch collect settled",
		zap.String("function", funcName),
		zap.Int("requests", len(reqs)),
		zap.Int("images", len(images)),
		zap.Duration("duration", time.Since(start)),
	)

	return images, nil
}
