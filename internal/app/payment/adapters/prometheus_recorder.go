package adapters

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/contracts"
)

var _ contracts.Recorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder counts and times requests sent to the payment processor
type PrometheusRecorder struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusRecorder creates the collectors and registers them on reg.
// Collectors already registered on reg are reused.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yoco_requests_total",
			Help: "Requests sent to the Yoco API by operation and outcome (success/declined/error).",
		},
		[]string{"operation", "outcome"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "yoco_request_duration_seconds",
			Help:    "Yoco API round-trip latency in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 15},
		},
		[]string{"operation"},
	)

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return &PrometheusRecorder{requests: requests, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveRequest records one request. A zero elapsed time is counted but not timed.
func (r *PrometheusRecorder) ObserveRequest(operation, outcome string, elapsed time.Duration) {
	r.requests.WithLabelValues(operation, outcome).Inc()
	if elapsed > 0 {
		r.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
	}
}
