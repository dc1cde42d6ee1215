package httpclient

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
)

// Doer executes HTTP requests. Both Client and CircuitBreakerClient satisfy it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Config holds HTTP client configuration. There is deliberately no retry
// setting: every call is a single attempt.
type Config struct {
	// Name labels metrics and spans for this client.
	Name            string
	Timeout         time.Duration
	MaxConnsPerHost int
	UserAgent       string
}

// DefaultConfig returns sensible defaults for HTTP client
func DefaultConfig(name string) Config {
	return Config{
		Name:            name,
		Timeout:         15 * time.Second,
		MaxConnsPerHost: 16,
		UserAgent:       "proyx-app/1.0",
	}
}

// Client wraps http.Client with tracing, metrics and error classification.
type Client struct {
	httpClient *http.Client
	config     Config
	tracer     trace.Tracer
}

// New creates a new HTTP client with connection pooling.
func New(cfg Config) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		tracer: otel.Tracer("github.com/doulovera/proyx-app/pkg/httpclient"),
	}
}

// Do executes the request once. Transport failures come back as
// NetworkError kinds; any HTTP status is returned to the caller as-is.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, req.Method+" "+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
			attribute.String("client.name", c.config.Name),
		),
	)
	defer span.End()

	req = req.WithContext(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
	if c.config.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	inFlight.WithLabelValues(c.config.Name).Inc()
	defer inFlight.WithLabelValues(c.config.Name).Dec()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observeRequest(c.config.Name, req.Method, "error", time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return nil, apperrors.Network(fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err))
	}

	observeRequest(c.config.Name, req.Method, strconv.Itoa(resp.StatusCode), time.Since(start))
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}

	return resp, nil
}
