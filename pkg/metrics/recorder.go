package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder handles metrics recording and exposure
type Recorder struct {
	// API metrics
	apiRequestCounter   *prometheus.CounterVec
	apiLatencyHistogram *prometheus.HistogramVec

	// Evaluation metrics, labelled by kind: price, gradient, hessian,
	// taylor, implied_vol
	evalCounter *prometheus.CounterVec
	evalLatency *prometheus.HistogramVec
}

// NewRecorder creates a new metrics recorder
func NewRecorder() *Recorder {
	return &Recorder{
		apiRequestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ge_api_requests_total",
				Help: "The total number of API requests",
			},
			[]string{"method", "path", "status"},
		),
		apiLatencyHistogram: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ge_api_latency_seconds",
				Help:    "API request latency distribution",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
			},
			[]string{"method", "path"},
		),
		evalCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ge_evaluations_total",
				Help: "The total number of sensitivity evaluations",
			},
			[]string{"kind"},
		),
		evalLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ge_evaluation_duration_seconds",
				Help:    "Sensitivity evaluation latency distribution",
				Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12),
			},
			[]string{"kind"},
		),
	}
}

// RecordAPIRequest records an API request with its outcome and latency
func (r *Recorder) RecordAPIRequest(method, path, status string, duration time.Duration) {
	r.apiRequestCounter.WithLabelValues(method, path, status).Inc()
	r.apiLatencyHistogram.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordEvaluation records one sensitivity evaluation of the given kind
func (r *Recorder) RecordEvaluation(kind string, duration time.Duration) {
	r.evalCounter.WithLabelValues(kind).Inc()
	r.evalLatency.WithLabelValues(kind).Observe(duration.Seconds())
}
