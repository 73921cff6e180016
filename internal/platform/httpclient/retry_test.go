package httpclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := retryPolicy{attempts: 5, base: 100 * time.Millisecond, ceiling: time.Second, factor: 2}

	tests := []struct {
		retry int
		want  time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{5, time.Second}, // 1.6s capped
	}

	for _, tt := range tests {
		for range 50 {
			got := p.delay(tt.retry)
			lo := time.Duration(float64(tt.want) * (1 - jitter))
			hi := time.Duration(float64(tt.want) * (1 + jitter))
			if got < lo || got > hi {
				t.Fatalf("delay(%d) = %v, want within [%v, %v]", tt.retry, got, lo, hi)
			}
		}
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	} {
		if got := retryableStatus(code); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestRetryableErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"wrapped deadline", errors.Join(errors.New("dial"), context.DeadlineExceeded), false},
		{"connection refused", errors.New("connect: connection refused"), true},
	}

	for _, tt := range tests {
		if got := retryableErr(tt.err); got != tt.want {
			t.Errorf("%s: retryableErr() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSend_RejectsZeroAttempts(t *testing.T) {
	t.Parallel()

	c := &Client{http: http.DefaultClient, retry: retryPolicy{attempts: 0}}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://billing.local", http.NoBody)

	if _, err := c.send(req); err == nil {
		t.Fatal("send() with zero attempts = nil error")
	}
}
