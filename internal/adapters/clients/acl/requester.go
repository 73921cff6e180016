package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/httpclient"
)

// maxDocumentSize limits how much of a binary response body we read.
const maxDocumentSize = 32 << 20 // 32 MB

// Authorizer decorates an outbound request with credentials.
type Authorizer func(ctx context.Context, req *http.Request) error

// RequesterOption configures a Requester.
type RequesterOption func(*Requester)

// WithAuthorizer sets a hook that runs on every request before it is sent.
// An error from the hook aborts the request.
func WithAuthorizer(fn Authorizer) RequesterOption {
	return func(r *Requester) { r.authorize = fn }
}

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, credential injection, execution via httpclient.Client,
// response body cleanup, status code validation, error translation, and
// decoding.
type Requester struct {
	client    *httpclient.Client
	logger    *slog.Logger
	authorize Authorizer
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger, opts ...RequesterOption) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Requester{client: client, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetJSON sends GET path?query, requires a 200 response, and decodes the JSON
// body into respBody. Non-200 responses are passed to TranslateHTTPError.
func (r *Requester) GetJSON(ctx context.Context, path string, query url.Values, respBody any) error {
	req, err := r.newGet(ctx, path, query, "application/json")
	if err != nil {
		return err
	}

	return r.execute(req, func(resp *http.Response) error {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
		return nil
	})
}

// GetBytes sends GET path with the given Accept header, requires a 200
// response, and returns the body and its content type.
func (r *Requester) GetBytes(ctx context.Context, path, accept string) ([]byte, string, error) {
	req, err := r.newGet(ctx, path, nil, accept)
	if err != nil {
		return nil, "", err
	}

	var (
		body        []byte
		contentType string
	)
	err = r.execute(req, func(resp *http.Response) error {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
		if err != nil {
			return fmt.Errorf("reading response from %s %s: %w", req.Method, req.URL.Path, err)
		}
		body = b
		contentType = resp.Header.Get("Content-Type")
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return body, contentType, nil
}

// Stream sends GET path and hands the open response body to the caller, who
// must close it.
func (r *Requester) Stream(ctx context.Context, path, accept string) (io.ReadCloser, error) {
	req, err := r.newGet(ctx, path, nil, accept)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// HealthCheck reports the circuit breaker state of the underlying HTTP
// client.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) newGet(ctx context.Context, path string, query url.Values, accept string) (*http.Request, error) {
	target := r.client.BaseURL() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	if r.authorize != nil {
		if err := r.authorize(ctx, req); err != nil {
			return nil, fmt.Errorf("authorizing GET %s: %w", path, err)
		}
	}
	return req, nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request and runs read on a 200 response. It ensures
// resp.Body is always closed.
func (r *Requester) execute(req *http.Request, read func(*http.Response) error) error {
	resp, err := r.send(req)
	if err != nil {
		return err
	}
	defer r.closeBody(req.Context(), resp)

	return read(resp)
}

// send executes req and returns the response only when its status is 200.
// On any other outcome the body is closed and a translated error returned.
func (r *Requester) send(req *http.Request) (*http.Response, error) {
	resp, err := r.client.Do(req)
	if err != nil {
		// Exhausted retries on a 5xx return the last response as well; map
		// its body rather than the retry error.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			if resp.StatusCode != http.StatusOK {
				return nil, TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer r.closeBody(req.Context(), resp)
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", http.StatusOK),
		)
		return nil, translateErr
	}

	return resp, nil
}
