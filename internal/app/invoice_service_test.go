package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/audit"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
	"github.com/jsamuelsen11/invoice-viewer/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type serviceMocks struct {
	tenants   *mocks.MockTenantStore
	invoices  *mocks.MockInvoiceSource
	documents *mocks.MockDocumentSource
	recorder  *mocks.MockAuditRecorder
}

func newTestService(t *testing.T) (*InvoiceService, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		tenants:   mocks.NewMockTenantStore(t),
		invoices:  mocks.NewMockInvoiceSource(t),
		documents: mocks.NewMockDocumentSource(t),
		recorder:  mocks.NewMockAuditRecorder(t),
	}
	svc := NewInvoiceService(InvoiceServiceDeps{
		Tenants:   m.tenants,
		Invoices:  m.invoices,
		Documents: m.documents,
		Recorder:  m.recorder,
	}, discardLogger())
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	return svc, m
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleInvoices() []invoice.Invoice {
	return []invoice.Invoice{
		{ID: "1", Number: "INV-001", InvoiceDate: invoice.Date(2024, 1, 15), TotalAmount: amount("1250.00"), Status: invoice.StatusPaid, TenantID: "tenant-1"},
		{ID: "2", Number: "INV-002", InvoiceDate: invoice.Date(2024, 1, 20), TotalAmount: amount("850.50"), Status: invoice.StatusPending, TenantID: "tenant-1"},
		{ID: "3", Number: "INV-003", InvoiceDate: invoice.Date(2024, 1, 10), TotalAmount: amount("2100.00"), Status: invoice.StatusOverdue, TenantID: "tenant-2"},
	}
}

// --- NewInvoiceService ---

func TestNewInvoiceService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewInvoiceService(InvoiceServiceDeps{}, nil)
	if svc.logger == nil {
		t.Fatal("NewInvoiceService(nil logger) should create a no-op logger, got nil")
	}
}

// --- ListTenants ---

func TestInvoiceService_ListTenants(t *testing.T) {
	t.Parallel()

	t.Run("returns tenants ordered by display name", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.tenants.EXPECT().ListTenants(mock.Anything).Return([]tenant.Tenant{
			{ID: "t2", DisplayName: "Globex"},
			{ID: "t1", DisplayName: "Acme Corp"},
		}, nil)

		got, err := svc.ListTenants(context.Background())
		if err != nil {
			t.Fatalf("ListTenants() error = %v, want nil", err)
		}
		if len(got) != 2 || got[0].DisplayName != "Acme Corp" {
			t.Errorf("ListTenants() = %+v, want Acme Corp first", got)
		}
	})

	t.Run("wraps store error", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.tenants.EXPECT().ListTenants(mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.ListTenants(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListTenants() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- ListInvoices ---

func TestInvoiceService_ListInvoices(t *testing.T) {
	t.Parallel()

	caller := ports.Caller{ActorID: "user-1", IPAddress: "10.0.0.1", UserAgent: "test-agent", RequestID: "req-1"}

	t.Run("records audit entry and applies filter", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		filter := invoice.Filter{TenantID: "tenant-1"}
		var recorded audit.Entry
		m.recorder.EXPECT().Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, e audit.Entry) { recorded = e }).
			Once()
		m.invoices.EXPECT().ListInvoices(mock.Anything, filter).Return(sampleInvoices(), nil)

		got, err := svc.ListInvoices(context.Background(), caller, filter)
		if err != nil {
			t.Fatalf("ListInvoices() error = %v, want nil", err)
		}
		if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
			t.Errorf("ListInvoices() = %+v, want invoices 1 and 2", got)
		}

		if recorded.ActorID != "user-1" {
			t.Errorf("audit ActorID = %q, want %q", recorded.ActorID, "user-1")
		}
		if recorded.TenantID != "tenant-1" {
			t.Errorf("audit TenantID = %q, want %q", recorded.TenantID, "tenant-1")
		}
		if recorded.Action != audit.ActionViewInvoices {
			t.Errorf("audit Action = %q, want %q", recorded.Action, audit.ActionViewInvoices)
		}
		if recorded.ResourceType != audit.ResourceInvoices {
			t.Errorf("audit ResourceType = %q, want %q", recorded.ResourceType, audit.ResourceInvoices)
		}
		if recorded.IPAddress != "10.0.0.1" || recorded.UserAgent != "test-agent" {
			t.Errorf("audit caller = (%q, %q), want (10.0.0.1, test-agent)", recorded.IPAddress, recorded.UserAgent)
		}
		if recorded.ID == "" {
			t.Error("audit ID is empty, want generated ID")
		}
		if !recorded.OccurredAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)) {
			t.Errorf("audit OccurredAt = %v, want fixed clock", recorded.OccurredAt)
		}
	})

	t.Run("records all scope and unknown actor", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		var recorded audit.Entry
		m.recorder.EXPECT().Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, e audit.Entry) { recorded = e })
		m.invoices.EXPECT().ListInvoices(mock.Anything, invoice.Filter{}).Return(sampleInvoices(), nil)

		got, err := svc.ListInvoices(context.Background(), ports.Caller{}, invoice.Filter{})
		if err != nil {
			t.Fatalf("ListInvoices() error = %v, want nil", err)
		}
		if len(got) != 3 {
			t.Errorf("ListInvoices() len = %d, want 3", len(got))
		}
		if recorded.TenantID != invoice.AllTenants {
			t.Errorf("audit TenantID = %q, want %q", recorded.TenantID, invoice.AllTenants)
		}
		if recorded.ActorID != UnknownActor {
			t.Errorf("audit ActorID = %q, want %q", recorded.ActorID, UnknownActor)
		}
	})

	t.Run("re-applies filter to unfiltered source results", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		minAmt := amount("1000")
		filter := invoice.Filter{MinAmount: &minAmt}
		m.recorder.EXPECT().Record(mock.Anything, mock.Anything)
		m.invoices.EXPECT().ListInvoices(mock.Anything, filter).Return(sampleInvoices(), nil)

		got, err := svc.ListInvoices(context.Background(), caller, filter)
		if err != nil {
			t.Fatalf("ListInvoices() error = %v, want nil", err)
		}
		if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
			t.Errorf("ListInvoices() = %+v, want invoices 1 and 3", got)
		}
	})

	t.Run("returns source error after auditing", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.recorder.EXPECT().Record(mock.Anything, mock.Anything).Once()
		m.invoices.EXPECT().ListInvoices(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.ListInvoices(context.Background(), caller, invoice.Filter{})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListInvoices() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("empty result is non-nil", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.recorder.EXPECT().Record(mock.Anything, mock.Anything)
		m.invoices.EXPECT().ListInvoices(mock.Anything, mock.Anything).Return(nil, nil)

		got, err := svc.ListInvoices(context.Background(), caller, invoice.Filter{InvoiceNumber: "XYZ"})
		if err != nil {
			t.Fatalf("ListInvoices() error = %v, want nil", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("ListInvoices() = %#v, want empty non-nil slice", got)
		}
	})
}

// --- DownloadInvoice ---

func TestInvoiceService_DownloadInvoice(t *testing.T) {
	t.Parallel()

	t.Run("returns named PDF document", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.documents.EXPECT().FetchDocument(mock.Anything, "42").
			Return(&document.Document{Content: []byte("%PDF-1.4")}, nil)

		doc, err := svc.DownloadInvoice(context.Background(), "42")
		if err != nil {
			t.Fatalf("DownloadInvoice() error = %v, want nil", err)
		}
		if doc.Filename != "invoice-42.pdf" {
			t.Errorf("Filename = %q, want %q", doc.Filename, "invoice-42.pdf")
		}
		if doc.ContentType != document.ContentTypePDF {
			t.Errorf("ContentType = %q, want %q", doc.ContentType, document.ContentTypePDF)
		}
		if doc.InvoiceID != "42" {
			t.Errorf("InvoiceID = %q, want %q", doc.InvoiceID, "42")
		}
	})

	t.Run("rejects malformed id without fetching", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		for _, id := range []string{"", `a"b`, "a/b", "a\r\nb"} {
			_, err := svc.DownloadInvoice(context.Background(), id)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("DownloadInvoice(%q) error = %v, want ErrValidation", id, err)
			}
		}
	})

	t.Run("wraps source error", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.documents.EXPECT().FetchDocument(mock.Anything, "7").Return(nil, domain.ErrNotFound)

		_, err := svc.DownloadInvoice(context.Background(), "7")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("DownloadInvoice() error = %v, want ErrNotFound", err)
		}
	})
}
