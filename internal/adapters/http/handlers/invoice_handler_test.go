package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
	"github.com/jsamuelsen11/invoice-viewer/mocks"
)

func validInvoice() invoice.Invoice {
	return invoice.Invoice{
		ID:          "inv-001",
		Number:      "2024-001",
		InvoiceDate: invoice.Date(2024, time.January, 15),
		DueDate:     invoice.Date(2024, time.February, 15),
		TotalAmount: decimal.RequireFromString("1250"),
		Currency:    "USD",
		Status:      invoice.StatusPaid,
		TenantID:    "tenant-1",
		TenantName:  "Contoso Ltd",
	}
}

// --- ListTenants ---

func TestInvoiceHandler_ListTenants(t *testing.T) {
	t.Parallel()

	t.Run("returns tenant array", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockInvoiceService(t)
		svc.EXPECT().ListTenants(mock.Anything).Return([]tenant.Tenant{
			{ID: "tenant-1", DisplayName: "Contoso Ltd", Domain: "contoso.onmicrosoft.com"},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
		handlers.NewInvoiceHandler(svc).ListTenants(rec, req)

		expectStatus(t, rec, http.StatusOK)

		resp := decodeBody[[]map[string]string](t, rec)
		if len(resp) != 1 || resp[0]["displayName"] != "Contoso Ltd" {
			t.Errorf("response = %v, want one Contoso Ltd tenant", resp)
		}
	})

	t.Run("store failure hides detail", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockInvoiceService(t)
		svc.EXPECT().ListTenants(mock.Anything).Return(nil, errors.New("pq: relation tenants does not exist"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
		handlers.NewInvoiceHandler(svc).ListTenants(rec, req)

		expectStatus(t, rec, http.StatusInternalServerError)
		if strings.Contains(rec.Body.String(), "relation") {
			t.Errorf("body leaks internal detail: %s", rec.Body.String())
		}

		resp := decodeBody[map[string]any](t, rec)
		if resp["error"] != "Failed to fetch tenants" {
			t.Errorf("error = %v, want %q", resp["error"], "Failed to fetch tenants")
		}
	})
}

// --- ListInvoices ---

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	t.Parallel()

	t.Run("parses filter and passes caller", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockInvoiceService(t)

		var (
			gotCaller ports.Caller
			gotFilter invoice.Filter
		)
		svc.EXPECT().ListInvoices(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, c ports.Caller, f invoice.Filter) {
				gotCaller = c
				gotFilter = f
			}).
			Return([]invoice.Invoice{validInvoice()}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/invoices?tenant=tenant-1&minAmount=abc&dateFrom=2024-01-01", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		req.Header.Set("User-Agent", "invoicectl/1.0")
		req = req.WithContext(middleware.WithPrincipal(req.Context(), middleware.Principal{Token: "t", ActorID: "user-7"}))
		handlers.NewInvoiceHandler(svc).ListInvoices(rec, req)

		expectStatus(t, rec, http.StatusOK)

		if gotCaller.ActorID != "user-7" || gotCaller.IPAddress != "192.0.2.10" || gotCaller.UserAgent != "invoicectl/1.0" {
			t.Errorf("caller = %+v, want user-7 from 192.0.2.10 with invoicectl/1.0", gotCaller)
		}
		if gotFilter.TenantID != "tenant-1" {
			t.Errorf("filter TenantID = %q, want %q", gotFilter.TenantID, "tenant-1")
		}
		if gotFilter.MinAmount != nil {
			t.Errorf("filter MinAmount = %v, want nil for non-numeric input", gotFilter.MinAmount)
		}
		if gotFilter.DateFrom == nil {
			t.Error("filter DateFrom = nil, want parsed date")
		}

		resp := decodeBody[[]map[string]any](t, rec)
		if len(resp) != 1 || resp[0]["invoiceNumber"] != "2024-001" || resp[0]["totalAmount"] != 1250.0 {
			t.Errorf("response = %v, want invoice 2024-001 totalling 1250", resp)
		}
	})

	t.Run("empty result is empty array", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockInvoiceService(t)
		svc.EXPECT().ListInvoices(mock.Anything, mock.Anything, mock.Anything).Return([]invoice.Invoice{}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		handlers.NewInvoiceHandler(svc).ListInvoices(rec, req)

		expectStatus(t, rec, http.StatusOK)
		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("body = %s, want []", got)
		}
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockInvoiceService(t)
		svc.EXPECT().ListInvoices(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		handlers.NewInvoiceHandler(svc).ListInvoices(rec, req)

		expectStatus(t, rec, http.StatusBadGateway)

		resp := decodeBody[map[string]any](t, rec)
		if resp["error"] != "Failed to fetch invoices" {
			t.Errorf("error = %v, want %q", resp["error"], "Failed to fetch invoices")
		}
	})
}

// --- DownloadInvoice ---

func TestInvoiceHandler_DownloadInvoice(t *testing.T) {
	t.Parallel()

	t.Run("streams PDF attachment", func(t *testing.T) {
		t.Parallel()

		content := []byte("%PDF-1.4 Mock Invoice PDF Content")
		svc := mocks.NewMockInvoiceService(t)
		svc.EXPECT().DownloadInvoice(mock.Anything, "inv-001").Return(&document.Document{
			InvoiceID:   "inv-001",
			Filename:    "invoice-inv-001.pdf",
			ContentType: document.ContentTypePDF,
			Content:     content,
		}, nil)

		rec := httptest.NewRecorder()
		req := withInvoiceID(httptest.NewRequest(http.MethodGet, "/api/invoices/inv-001/download", nil), "inv-001")
		handlers.NewInvoiceHandler(svc).DownloadInvoice(rec, req)

		expectStatus(t, rec, http.StatusOK)

		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Content-Type = %q, want %q", ct, "application/pdf")
		}
		wantCD := `attachment; filename="invoice-inv-001.pdf"`
		if cd := rec.Header().Get("Content-Disposition"); cd != wantCD {
			t.Errorf("Content-Disposition = %q, want %q", cd, wantCD)
		}
		if rec.Body.String() != string(content) {
			t.Errorf("body = %q, want %q", rec.Body.String(), content)
		}
	})

	t.Run("invalid id is 400", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockInvoiceService(t)
		svc.EXPECT().DownloadInvoice(mock.Anything, "a b").
			Return(nil, &domain.ValidationError{Fields: map[string]string{"id": "invalid"}})

		rec := httptest.NewRecorder()
		req := withInvoiceID(httptest.NewRequest(http.MethodGet, "/api/invoices/x/download", nil), "a b")
		handlers.NewInvoiceHandler(svc).DownloadInvoice(rec, req)

		expectStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("failure hides detail", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockInvoiceService(t)
		svc.EXPECT().DownloadInvoice(mock.Anything, "inv-9").Return(nil, errors.New("disk on fire"))

		rec := httptest.NewRecorder()
		req := withInvoiceID(httptest.NewRequest(http.MethodGet, "/api/invoices/inv-9/download", nil), "inv-9")
		handlers.NewInvoiceHandler(svc).DownloadInvoice(rec, req)

		expectStatus(t, rec, http.StatusInternalServerError)

		resp := decodeBody[map[string]any](t, rec)
		if resp["error"] != "Failed to download invoice" {
			t.Errorf("error = %v, want %q", resp["error"], "Failed to download invoice")
		}
	})
}
