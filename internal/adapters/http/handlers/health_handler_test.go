package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/invoice-viewer/mocks"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	expectStatus(t, rec, http.StatusOK)
	body := decodeBody[dto.HealthResponse](t, rec)
	if body.Status != "OK" {
		t.Errorf("status = %q, want OK", body.Status)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", body.Timestamp, err)
	}
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[map[string]string](t, rec)["status"]; got != "ok" {
		t.Errorf("status = %q, want ok", got)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: dto.ReadinessReady,
			wantChecks: map[string]string{},
		},
		{
			name:       "all healthy",
			results:    map[string]error{"postgres": nil, "billing-api": nil},
			wantCode:   http.StatusOK,
			wantStatus: dto.ReadinessReady,
			wantChecks: map[string]string{"postgres": "ok", "billing-api": "ok"},
		},
		{
			name:       "billing breaker open",
			results:    map[string]error{"postgres": nil, "billing-api": errors.New("billing-api: failing (circuit breaker open)")},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.ReadinessNotReady,
			wantChecks: map[string]string{"postgres": "ok", "billing-api": "billing-api: failing (circuit breaker open)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			expectStatus(t, rec, tt.wantCode)
			body := decodeBody[dto.ReadinessResponse](t, rec)
			if body.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", body.Status, tt.wantStatus)
			}
			if len(body.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %v, want %v", body.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if body.Checks[name] != want {
					t.Errorf("checks[%s] = %q, want %q", name, body.Checks[name], want)
				}
			}
		})
	}
}
