// Package middleware holds the inbound request pipeline. cmd/server installs
// it in this order:
//
//	Recovery, RequestIDs, Telemetry, AccessLog, Timeout
//
// RequireBearer is applied per route by the router.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/invoice-viewer/internal/platform/logging"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/telemetry"
)

const tracerName = "invoice-viewer/http"

// statusRecorder remembers the status and body size a handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status != 0 {
		return
	}
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

func (sr *statusRecorder) wrote() bool {
	return sr.status != 0
}

// code is the status sent to the client; a handler that wrote nothing sent 200.
func (sr *statusRecorder) code() int {
	if sr.status == 0 {
		return http.StatusOK
	}
	return sr.status
}

// routePattern is the chi pattern that served r, e.g.
// "/api/invoices/{id}/download". Unmatched paths report "unmatched" so span
// names stay low-cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// AccessLog logs one line when a request starts and one when it completes.
// Downstream code gets a child logger, tagged with the request and
// correlation ids, through logging.FromContext. At debug level the request
// headers are logged with credentials redacted.
func AccessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			attrs := []any{slog.String("method", r.Method), slog.String("path", r.URL.Path)}
			if tenant := r.URL.Query().Get("tenant"); tenant != "" {
				attrs = append(attrs, slog.String("tenant", tenant))
			}
			reqLogger.InfoContext(ctx, "request started", attrs...)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request headers", slog.GroupAttrs("headers", RedactHeaders(r.Header)...))
			}

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			reqLogger.InfoContext(ctx, "request completed", append(attrs,
				slog.Int("status", sr.code()),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			)...)
		})
	}
}

// Telemetry opens a server span per request, continuing any W3C trace
// context the caller sent, and records the server request metrics. metrics
// may be nil.
func Telemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
				),
			)
			defer span.End()

			sr := record(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(sr, r)

			route, status := routePattern(r), sr.code()
			span.SetName(r.Method + " " + route)
			span.SetAttributes(semconv.HTTPRoute(route), semconv.HTTPResponseStatusCode(status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			if metrics == nil {
				return
			}
			result := "success"
			if status >= http.StatusBadRequest {
				result = "error"
			}
			set := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(status),
				telemetry.AttrResult.String(result),
			)
			metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), set)
			metrics.ServerRequestTotal.Add(ctx, 1, set)
		})
	}
}
