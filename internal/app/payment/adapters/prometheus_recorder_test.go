package adapters

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/contracts"
)

func TestPrometheusRecorder_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	rec.ObserveRequest("charge", contracts.OutcomeSuccess, 120*time.Millisecond)
	rec.ObserveRequest("charge", contracts.OutcomeDeclined, 80*time.Millisecond)
	rec.ObserveRequest("refund", contracts.OutcomeSuccess, 50*time.Millisecond)
	rec.ObserveRequest("refund", contracts.OutcomeError, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.requests.WithLabelValues("charge", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.requests.WithLabelValues("charge", "declined")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.requests.WithLabelValues("refund", "error")))
	assert.Equal(t, 4, testutil.CollectAndCount(rec.requests))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.duration))
}

func TestPrometheusRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)
	second, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	first.ObserveRequest("charge", contracts.OutcomeSuccess, time.Millisecond)
	second.ObserveRequest("charge", contracts.OutcomeSuccess, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(first.requests.WithLabelValues("charge", "success")))
}

// wrappingRegisterer wraps registration errors the way instrumented registries do
type wrappingRegisterer struct {
	prometheus.Registerer
}

func (w wrappingRegisterer) Register(c prometheus.Collector) error {
	if err := w.Registerer.Register(c); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func TestPrometheusRecorder_ReusesCollectorsBehindWrappedError(t *testing.T) {
	reg := wrappingRegisterer{Registerer: prometheus.NewRegistry()}
	first, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)
	second, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	second.ObserveRequest("refund", contracts.OutcomeDeclined, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(first.requests.WithLabelValues("refund", "declined")))
}
