package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/invoice-viewer/internal/platform/config"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/logging"
)

// jitter is the maximum relative deviation applied to each backoff delay.
const jitter = 0.25

// retryPolicy is exponential backoff with jitter. attempts counts the first
// try, so 1 disables retries.
type retryPolicy struct {
	attempts int
	base     time.Duration
	ceiling  time.Duration
	factor   float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts: cfg.MaxAttempts,
		base:     cfg.InitialInterval,
		ceiling:  cfg.MaxInterval,
		factor:   cfg.Multiplier,
	}
}

// delay returns the wait before retry n (n >= 1): base*factor^(n-1), capped
// at ceiling, then moved by up to ±25%.
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.base) * math.Pow(p.factor, float64(n-1))
	d = min(d, float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// retryableStatus reports whether a response status is worth another try:
// 429 and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// retryableErr reports whether a transport error is worth another try.
// Cancellation and deadlines end the loop; anything else is treated as
// transient.
func retryableErr(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// send runs the retry loop. The final retryable response is returned with an
// error so the caller can still read its body.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if c.retry.attempts < 1 {
		return nil, fmt.Errorf("httpclient: retry attempts must be >= 1, got %d", c.retry.attempts)
	}
	if err := makeReplayable(req); err != nil {
		return nil, err
	}

	ctx := req.Context()
	var lastErr error

	for n := range c.retry.attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, lastErr); err != nil {
				return nil, err
			}
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr = err
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("%s answered HTTP %d", c.service, resp.StatusCode)
		if n == c.retry.attempts-1 {
			return resp, lastErr
		}
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, n int, cause error) error {
	wait := c.retry.delay(n)

	logging.FromContext(ctx).WarnContext(ctx, "retrying outbound request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.service),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// makeReplayable makes sure req.GetBody can produce the body again.
func makeReplayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("buffering request body: %w", err)
	}

	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	req.Body, _ = req.GetBody()
	req.ContentLength = int64(len(body))
	return nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}
