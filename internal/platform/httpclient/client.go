// Package httpclient is the outbound HTTP client shared by the billing API
// adapter and the invoicectl transport. Every call passes through a circuit
// breaker, an optional rate limiter, request-id propagation, a client span
// and a retry loop, in that order.
//
//	client := httpclient.New(&cfg.Billing, "billing-api", metrics, logger)
//	resp, err := client.Do(req)
package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/invoice-viewer/internal/platform/config"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/telemetry"
)

// Client wraps http.Client with resilience and instrumentation for one
// downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	service string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil disables rate limiting
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the downstream named service. service labels
// spans, metrics and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, service string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		service: service,
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        service,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}
	return c
}

// Do sends req using its context for cancellation, tracing and id
// propagation.
//
// A non-retryable response is returned with a nil error and an open body.
// When retries run out on a retryable status the last response is returned
// together with an error, and the caller still owns its body. A rejected
// call (open breaker, rate limiter, network failure) returns a nil response.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
		}

		propagateIDs(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.send(req.WithContext(spanCtx))
		endSpan(span, resp, err)
		return resp, err
	})

	c.observe(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL is the configured root URL of the downstream service.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name is the downstream service name.
func (c *Client) Name() string {
	return c.service
}

// HealthCheck reports the breaker state without calling the downstream:
// nil when closed, an error when half-open (degraded) or open (failing).
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.service)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.service)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.service, state)
	}
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
