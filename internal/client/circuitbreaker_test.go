package client

import (
	"sync"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRegistry(config CircuitBreakerRegistryConfig) *CircuitBreakerRegistry {
	return NewCircuitBreakerRegistry(CircuitBreakerRegistryParams{
		Config: config,
		Logger: zap.NewNop(),
	})
}

func TestNewCircuitBreakerRegistry(t *testing.T) {
	registry := newTestRegistry(CircuitBreakerRegistryConfig{
		MaxHalfOpenRequests:     5,
		OpenStateTimeout:        60 * time.Second,
		MinRequestsBeforeTrip:   3,
		FailureThresholdPercent: 60,
	})

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.breakers)
	assert.Equal(t, uint32(5), registry.settings.MaxRequests)
	assert.Equal(t, 60*time.Second, registry.settings.Timeout)
	assert.NotNil(t, registry.settings.ReadyToTrip)
	assert.NotNil(t, registry.settings.OnStateChange)
}

func TestCircuitBreakerRegistry_ReadyToTrip(t *testing.T) {
	tests := []struct {
		name     string
		config   CircuitBreakerRegistryConfig
		counts   gobreaker.Counts
		expected bool
	}{
		{
			name: "does not trip below minimum request count",
			config: CircuitBreakerRegistryConfig{
				MinRequestsBeforeTrip:   3,
				FailureThresholdPercent: 60,
			},
			counts:   gobreaker.Counts{Requests: 2, TotalFailures: 2},
			expected: false,
		},
		{
			name: "trips when failure ratio reaches threshold",
			config: CircuitBreakerRegistryConfig{
				MinRequestsBeforeTrip:   3,
				FailureThresholdPercent: 60,
			},
			counts:   gobreaker.Counts{Requests: 5, TotalFailures: 3},
			expected: true,
		},
		{
			name: "does not trip below failure ratio",
			config: CircuitBreakerRegistryConfig{
				MinRequestsBeforeTrip:   3,
				FailureThresholdPercent: 60,
			},
			counts:   gobreaker.Counts{Requests: 10, TotalFailures: 5},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := newTestRegistry(tt.config)

			assert.Equal(t, tt.expected, registry.settings.ReadyToTrip(tt.counts))
		})
	}
}

func TestCircuitBreakerRegistry_GetOrCreate(t *testing.T) {
	t.Run("returns the same breaker for the same host", func(t *testing.T) {
		registry := newTestRegistry(CircuitBreakerRegistryConfig{
			MinRequestsBeforeTrip:   3,
			FailureThresholdPercent: 60,
		})

		first := registry.GetOrCreate("fcm.googleapis.com")
		second := registry.GetOrCreate("fcm.googleapis.com")

		assert.Same(t, first, second)
	})

	t.Run("returns distinct breakers per host", func(t *testing.T) {
		registry := newTestRegistry(CircuitBreakerRegistryConfig{
			MinRequestsBeforeTrip:   3,
			FailureThresholdPercent: 60,
		})

		a := registry.GetOrCreate("a.example.com")
		b := registry.GetOrCreate("b.example.com")

		assert.NotSame(t, a, b)
		assert.Equal(t, "a.example.com", a.Name())
		assert.Equal(t, "b.example.com", b.Name())
	})

	t.Run("is safe under concurrent access", func(t *testing.T) {
		registry := newTestRegistry(CircuitBreakerRegistryConfig{
			MinRequestsBeforeTrip:   3,
			FailureThresholdPercent: 60,
		})

		var wg sync.WaitGroup
		results := make([]*gobreaker.CircuitBreaker[CircuitBreakerResponse], 10)

		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = registry.GetOrCreate("fcm.googleapis.com")
			}(i)
		}
		wg.Wait()

		for _, cb := range results {
			assert.Same(t, results[0], cb)
		}
	})
}
