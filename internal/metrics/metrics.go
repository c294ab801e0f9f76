// Package metrics holds the Prometheus collectors for image fetches and batches.
//
// Metrics:
//   - imagegrid_fetches_total{outcome} (Counter): settled fetches by outcome (success, transport, decode)
//   - imagegrid_fetch_duration_seconds (Histogram): time from request to settlement
//   - imagegrid_fetch_bytes_total (Counter): bytes read from successful fetches
//   - imagegrid_batches_total (Counter): completed batches
//   - imagegrid_batch_size (Histogram): requests per batch
//   - imagegrid_batches_in_flight (Gauge): batches launched but not yet completed
//   - imagegrid_dispatch_backlog (Gauge): jobs waiting on the completion queue
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess   = "success"
	OutcomeTransport = "transport"
	OutcomeDecode    = "decode"
)

var (
	FetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "imagegrid_fetches_total",
		Help: "Total settled image fetches by outcome",
	}, []string{"outcome"})

	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "imagegrid_fetch_duration_seconds",
		Help:    "Image fetch duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	FetchBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "imagegrid_fetch_bytes_total",
		Help: "Total bytes read by successful image fetches",
	})

	BatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "imagegrid_batches_total",
		Help: "Total completed fetch-all batches",
	})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "imagegrid_batch_size",
		Help:    "Number of requests per fetch-all batch",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
	})

	BatchesInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "imagegrid_batches_in_flight",
		Help: "Fetch-all batches launched but not yet completed",
	})

	DispatchBacklog = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "imagegrid_dispatch_backlog",
		Help: "Jobs waiting on the completion queue",
	})
)
