package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pushforge/fcm-composer/internal/metrics"
	"github.com/pushforge/fcm-composer/internal/payload"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// sendPath is the fixed path under the gateway endpoint.
const sendPath = "/send"

//go:generate mockgen -package mockclient -destination ./mock/mockclient.go . GatewayProvider
type GatewayProvider interface {
	Send(ctx context.Context, serverKey string, p payload.Payload) (SendResult, error)
}

var _ GatewayProvider = (*HTTPClient)(nil)

type HTTPClient struct {
	endpoint               string
	httpclient             *http.Client
	circuitBreakerRegistry *CircuitBreakerRegistry
	metricsCollector       *metrics.HTTPClientCollector
	logger                 *zap.Logger
}

type HTTPClientConfig struct {
	Endpoint string        `envconfig:"FCM_ENDPOINT" default:"https://fcm.googleapis.com/fcm"`
	Timeout  time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
}

type HTTPClientParams struct {
	fx.In

	Config                 HTTPClientConfig
	CircuitBreakerRegistry *CircuitBreakerRegistry
	MetricsCollector       *metrics.HTTPClientCollector
	Logger                 *zap.Logger
}

func NewHTTPClient(params HTTPClientParams) *HTTPClient {
	return &HTTPClient{
		endpoint: params.Config.Endpoint,
		httpclient: &http.Client{
			Timeout: params.Config.Timeout,
		},
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
		metricsCollector:       params.MetricsCollector,
		logger:                 params.Logger,
	}
}

func NewHTTPClientConfig() HTTPClientConfig {
	var cfg HTTPClientConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Send POSTs the payload to <endpoint>/send. Any HTTP response, 2xx or not,
// is a completed exchange and comes back as a SendResult carrying the status
// code and the raw body; only transport-level failures (DNS, refused
// connection, timeout, open circuit breaker) return an error. The circuit
// breaker therefore counts transport failures only.
func (c *HTTPClient) Send(ctx context.Context, serverKey string, p payload.Payload) (SendResult, error) {
	start := time.Now()
	host, err := extractHost(c.endpoint)
	if err != nil {
		return SendResult{}, err
	}

	circuitBreaker := c.circuitBreakerRegistry.GetOrCreate(host)

	cbState := circuitBreaker.State().String()
	c.metricsCollector.RecordCircuitBreakerState(ctx, host, cbState)

	jsonBody, err := json.Marshal(p)
	if err != nil {
		return SendResult{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint+sendPath,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return SendResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+serverKey)

	resp, err := circuitBreaker.Execute(func() (CircuitBreakerResponse, error) {
		resp, err := c.httpclient.Do(req)
		if err != nil {
			return CircuitBreakerResponse{}, err
		}
		defer resp.Body.Close()

		rawBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return CircuitBreakerResponse{}, err
		}

		return CircuitBreakerResponse{
			Body:       rawBody,
			StatusCode: resp.StatusCode,
		}, nil
	})

	duration := time.Since(start)

	if err != nil {
		c.logger.Warn("push send transport failure",
			zap.String("host", host),
			zap.Error(err),
		)
		c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, 0, duration, err)
		return SendResult{}, err
	}

	c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, resp.StatusCode, duration, nil)

	return SendResult{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}

func extractHost(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return parsed.Host, nil
}
