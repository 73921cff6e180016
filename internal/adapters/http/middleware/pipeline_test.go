package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/httpclient"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/logging"
)

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reqID    string
		corrID   string
		keepReq  bool
		wantCorr string // empty means "same as request id"
	}{
		{name: "both generated"},
		{name: "request id kept", reqID: "req-42", keepReq: true},
		{name: "both kept", reqID: "req-42", corrID: "flow:7", keepReq: true, wantCorr: "flow:7"},
		{name: "malformed request id replaced", reqID: "bad id\n"},
		{name: "oversized correlation id replaced", reqID: "req-42", corrID: strings.Repeat("x", 200), keepReq: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seenReq, seenCorr string
			h := middleware.RequestIDs()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seenReq = middleware.RequestIDFromContext(r.Context())
				seenCorr = middleware.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/invoices", http.NoBody)
			if tt.reqID != "" {
				req.Header.Set(httpclient.HeaderRequestID, tt.reqID)
			}
			if tt.corrID != "" {
				req.Header.Set(httpclient.HeaderCorrelationID, tt.corrID)
			}
			rec := serve(h, req)

			if seenReq == "" {
				t.Fatal("request id missing from context")
			}
			if tt.keepReq && seenReq != tt.reqID {
				t.Errorf("request id = %q, want %q", seenReq, tt.reqID)
			}
			if !tt.keepReq && seenReq == tt.reqID {
				t.Errorf("request id %q should have been replaced", seenReq)
			}
			wantCorr := tt.wantCorr
			if wantCorr == "" {
				wantCorr = seenReq
			}
			if seenCorr != wantCorr {
				t.Errorf("correlation id = %q, want %q", seenCorr, wantCorr)
			}
			if got := rec.Header().Get(httpclient.HeaderRequestID); got != seenReq {
				t.Errorf("response X-Request-ID = %q, want %q", got, seenReq)
			}
			if got := rec.Header().Get(httpclient.HeaderCorrelationID); got != seenCorr {
				t.Errorf("response X-Correlation-ID = %q, want %q", got, seenCorr)
			}
		})
	}
}

func TestAccessLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var fromCtx *slog.Logger
	h := middleware.RequestIDs()(middleware.AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = logging.FromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices?tenant=t-1", http.NoBody)
	req.Header.Set(httpclient.HeaderRequestID, "req-1")
	req.Header.Set("Authorization", "Bearer secret-token")
	serve(h, req)

	if fromCtx == nil || fromCtx == logger {
		t.Error("handler did not receive a request-scoped logger")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d log lines, want 3:\n%s", len(lines), buf.String())
	}
	if strings.Contains(buf.String(), "secret-token") {
		t.Errorf("log leaked the bearer token:\n%s", buf.String())
	}

	var done map[string]any
	if err := json.Unmarshal([]byte(lines[2]), &done); err != nil {
		t.Fatalf("unmarshal completion line: %v", err)
	}
	checks := map[string]any{
		"msg":        "request completed",
		"request_id": "req-1",
		"tenant":     "t-1",
		"status":     float64(http.StatusNotFound),
		"bytes":      float64(4),
	}
	for k, want := range checks {
		if done[k] != want {
			t.Errorf("%s = %v, want %v", k, done[k], want)
		}
	}
}

func TestTelemetry_NamesSpanByRoute(t *testing.T) {
	// Swaps the global tracer provider.
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	r := chi.NewRouter()
	r.Use(middleware.Telemetry(nil))
	r.Get("/api/invoices/{id}/download", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/api/invoices/inv-9/download", http.NoBody))
	serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Name != "GET /api/invoices/{id}/download" {
		t.Errorf("span name = %q", spans[0].Name)
	}
	if spans[0].Status.Code.String() != "Error" {
		t.Errorf("span status = %v, want Error for 502", spans[0].Status.Code)
	}
	if spans[1].Name != "GET unmatched" {
		t.Errorf("span name = %q, want %q", spans[1].Name, "GET unmatched")
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	t.Run("writes generic problem", func(t *testing.T) {
		t.Parallel()

		h := middleware.Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("tenant store exploded")
		}))
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/tenants", http.NoBody))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "exploded") {
			t.Errorf("body leaked the panic value: %s", rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Errorf("Content-Type = %q", ct)
		}
	})

	t.Run("keeps a started response", func(t *testing.T) {
		t.Parallel()

		h := middleware.Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("%PDF"))
			panic("stream broke")
		}))
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/invoices/inv-1/download", http.NoBody))

		if rec.Code != http.StatusOK || rec.Body.String() != "%PDF" {
			t.Errorf("got %d %q, want untouched 200 response", rec.Code, rec.Body.String())
		}
	})

	t.Run("re-panics abort", func(t *testing.T) {
		t.Parallel()

		h := middleware.Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))
		defer func() {
			if v := recover(); v != http.ErrAbortHandler {
				t.Errorf("recovered %v, want http.ErrAbortHandler", v)
			}
		}()
		serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("in time", func(t *testing.T) {
		t.Parallel()

		h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF"))
		}))
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		if rec.Code != http.StatusOK || rec.Body.String() != "%PDF" {
			t.Errorf("got %d %q", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Content-Type = %q", ct)
		}
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		t.Parallel()

		lateWrite := make(chan error, 1)
		h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
			time.Sleep(10 * time.Millisecond)
			_, err := w.Write([]byte("late"))
			lateWrite <- err
		}))
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		if rec.Code != http.StatusGatewayTimeout {
			t.Errorf("status = %d, want 504", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), middleware.MsgTimeout) {
			t.Errorf("body = %s", rec.Body.String())
		}
		if err := <-lateWrite; err != http.ErrHandlerTimeout {
			t.Errorf("late write error = %v, want http.ErrHandlerTimeout", err)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		h := middleware.Timeout(0)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				t.Error("context has a deadline with timeout disabled")
			}
		}))
		serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody).WithContext(context.Background()))
	})
}

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Api-Key":     {"k-123"},
		"Authorization": {"Bearer abc"},
		"Accept":        {"application/json", "application/pdf"},
		"Cookie":        {"sid=1"},
	})

	want := []string{
		"Accept=application/json,application/pdf",
		"Authorization=[REDACTED]",
		"Cookie=[REDACTED]",
		"X-Api-Key=[REDACTED]",
	}
	if len(attrs) != len(want) {
		t.Fatalf("got %d attrs, want %d", len(attrs), len(want))
	}
	for i, a := range attrs {
		if got := a.Key + "=" + a.Value.String(); got != want[i] {
			t.Errorf("attrs[%d] = %q, want %q", i, got, want[i])
		}
	}
}
