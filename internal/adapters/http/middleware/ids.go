package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/invoice-viewer/internal/platform/httpclient"
)

// maxIDLength bounds caller-supplied ids so they cannot bloat logs and audit
// rows.
const maxIDLength = 128

type requestIDs struct {
	request     string
	correlation string
}

type requestIDsKey struct{}

// WithRequestIDs stores the request and correlation ids in ctx, both for
// RequestIDFromContext and for outbound calls made through httpclient.
func WithRequestIDs(ctx context.Context, requestID, correlationID string) context.Context {
	ctx = context.WithValue(ctx, requestIDsKey{}, requestIDs{request: requestID, correlation: correlationID})
	ctx = httpclient.WithRequestID(ctx, requestID)
	return httpclient.WithCorrelationID(ctx, correlationID)
}

// RequestIDFromContext returns the id of the current request, or "".
func RequestIDFromContext(ctx context.Context) string {
	ids, _ := ctx.Value(requestIDsKey{}).(requestIDs)
	return ids.request
}

// CorrelationIDFromContext returns the correlation id of the current
// request, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	ids, _ := ctx.Value(requestIDsKey{}).(requestIDs)
	return ids.correlation
}

// RequestIDs assigns every request an X-Request-ID and an X-Correlation-ID.
// Well-formed incoming values are kept. A missing or malformed request id is
// replaced by a new UUID, and a missing correlation id falls back to the
// request id. Both are echoed on the response.
func RequestIDs() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(httpclient.HeaderRequestID)
			if !validID(reqID) {
				reqID = uuid.NewString()
			}
			corrID := r.Header.Get(httpclient.HeaderCorrelationID)
			if !validID(corrID) {
				corrID = reqID
			}

			w.Header().Set(httpclient.HeaderRequestID, reqID)
			w.Header().Set(httpclient.HeaderCorrelationID, corrID)
			next.ServeHTTP(w, r.WithContext(WithRequestIDs(r.Context(), reqID, corrID)))
		})
	}
}

// validID accepts up to maxIDLength characters from [A-Za-z0-9._:-].
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == ':', c == '-':
		default:
			return false
		}
	}
	return true
}
