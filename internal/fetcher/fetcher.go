// Package fetcher downloads and decodes single remote images.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/supchaser/imagegrid/internal/app/models"
	"github.com/supchaser/imagegrid/internal/metrics"
	"github.com/supchaser/imagegrid/internal/utils/errs"
	"github.com/supchaser/imagegrid/internal/utils/logger"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 10 << 20
)

type Config struct {
	Timeout  time.Duration
	MaxBytes int64
}

type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// CreateFetcher builds a Fetcher. A nil client gets a plain http.Client
// bounded by cfg.Timeout.
func CreateFetcher(client *http.Client, cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Fetcher{
		client:   client,
		maxBytes: cfg.MaxBytes,
	}
}

// FetchOne starts the fetch and returns at once. callback is invoked exactly
// once, from another goroutine, with the settled result.
func (f *Fetcher) FetchOne(ctx context.Context, req models.ResourceRequest, callback func(models.FetchResult)) {
	go func() {
		artifact, err := f.Fetch(ctx, req)
		if err != nil {
			callback(models.Failure(req, err))
			return
		}
		callback(models.Success(req, artifact))
	}()
}

// Fetch performs exactly one GET for req and decodes the body. Failures are
// logged and returned wrapped in errs.ErrTransport or errs.ErrDecode.
func (f *Fetcher) Fetch(ctx context.Context, req models.ResourceRequest) (*models.Artifact, error) {
	const funcName = "Fetcher.Fetch"
	start := time.Now()
	defer func() {
		metrics.FetchDuration.Observe(time.Since(start).Seconds())
	}()

	logger.Debug("fetching image",
		zap.String("function", funcName),
		zap.String("url", req.URL),
	)

	data, err := f.download(ctx, req.URL)
	if err != nil {
		metrics.FetchesTotal.WithLabelValues(metrics.OutcomeTransport).Inc()
		logger.Warn("failed to download image",
			zap.String("function", funcName),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		metrics.FetchesTotal.WithLabelValues(metrics.OutcomeDecode).Inc()
		logger.Warn("unable to decode image",
			zap.String("function", funcName),
			zap.String("url", req.URL),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrDecode, req.URL, err)
	}

	metrics.FetchesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.FetchBytes.Add(float64(len(data)))

	logger.Debug("image fetched",
		zap.String("function", funcName),
		zap.String("url", req.URL),
		zap.String("format", format),
		zap.Int("bytes", len(data)),
		zap.Duration("duration", time.Since(start)),
	)

	return &models.Artifact{
		URL:    req.URL,
		Format: format,
		Image:  img,
		Bytes:  int64(len(data)),
	}, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", errs.ErrTransport, err)
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %w: %d", errs.ErrTransport, errs.ErrUnexpectedStatusCode, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", transportError(err))
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: %w: limit %d bytes", errs.ErrTransport, errs.ErrImageTooLarge, f.maxBytes)
	}

	return data, nil
}

// transportError keeps the cause matchable and marks client-side timeouts
// as context.DeadlineExceeded.
func transportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w: %w", errs.ErrTransport, context.DeadlineExceeded, err)
	}
	return fmt.Errorf("%w: %w", errs.ErrTransport, err)
}
