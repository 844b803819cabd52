package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newCollectorWithReader(t *testing.T) (*HTTPClientCollector, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	collector, err := NewHTTPClientCollector(provider.Meter("test"))
	require.NoError(t, err)

	return collector, reader
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestNewHTTPClientCollector(t *testing.T) {
	t.Run("with nil meter falls back to noop", func(t *testing.T) {
		collector, err := NewHTTPClientCollector(nil)

		require.NoError(t, err)
		assert.NotNil(t, collector)
	})

	t.Run("with real meter", func(t *testing.T) {
		collector, _ := newCollectorWithReader(t)

		assert.NotNil(t, collector.requestCount)
		assert.NotNil(t, collector.requestDuration)
		assert.NotNil(t, collector.errorCount)
		assert.NotNil(t, collector.circuitBreakerState)
		assert.NotNil(t, collector.circuitBreakerChanges)
	})
}

func TestHTTPClientCollector_RecordRequest(t *testing.T) {
	t.Run("completed exchange records request without error count", func(t *testing.T) {
		collector, reader := newCollectorWithReader(t)

		collector.RecordRequest(context.Background(), http.MethodPost, "fcm.googleapis.com", 200, 50*time.Millisecond, nil)

		var rm metricdata.ResourceMetrics
		require.NoError(t, reader.Collect(context.Background(), &rm))

		requests, found := findMetric(rm, "http.client.requests")
		require.True(t, found)
		sum, ok := requests.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		assert.Equal(t, int64(1), sum.DataPoints[0].Value)

		_, found = findMetric(rm, "http.client.errors")
		assert.False(t, found)
	})

	t.Run("transport failure records error count", func(t *testing.T) {
		collector, reader := newCollectorWithReader(t)

		collector.RecordRequest(context.Background(), http.MethodPost, "fcm.googleapis.com", 0, 50*time.Millisecond, errors.New("connection refused"))

		var rm metricdata.ResourceMetrics
		require.NoError(t, reader.Collect(context.Background(), &rm))

		errorsMetric, found := findMetric(rm, "http.client.errors")
		require.True(t, found)
		sum, ok := errorsMetric.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		assert.Equal(t, int64(1), sum.DataPoints[0].Value)
	})
}

func TestHTTPClientCollector_RecordCircuitBreakerState(t *testing.T) {
	collector, reader := newCollectorWithReader(t)

	collector.RecordCircuitBreakerState(context.Background(), "fcm.googleapis.com", "open")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	state, found := findMetric(rm, "http.client.circuit_breaker.state")
	require.True(t, found)
	gauge, ok := state.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(1), gauge.DataPoints[0].Value)
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "none"},
		{"open circuit breaker", gobreaker.ErrOpenState, "circuit_breaker_open"},
		{"half open limit", gobreaker.ErrTooManyRequests, "circuit_breaker_open"},
		{"deadline exceeded", context.DeadlineExceeded, "timeout"},
		{"net timeout", &net.DNSError{Err: "timeout", IsTimeout: true}, "timeout"},
		{"anything else", errors.New("connection refused"), "transport"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getErrorType(tt.err))
		})
	}
}

func TestCircuitBreakerStateToInt(t *testing.T) {
	tests := []struct {
		state    string
		expected int64
	}{
		{"closed", 0},
		{"open", 1},
		{"half-open", 2},
		{"unknown", -1},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.expected, circuitBreakerStateToInt(tt.state))
		})
	}
}
