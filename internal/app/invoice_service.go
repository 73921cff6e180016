// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/audit"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/telemetry"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// Compile-time check that InvoiceService implements ports.InvoiceService.
var _ ports.InvoiceService = (*InvoiceService)(nil)

// UnknownActor is recorded when the caller's identity cannot be determined.
const UnknownActor = "unknown"

// InvoiceService implements ports.InvoiceService by orchestrating the tenant
// store, the invoice and document sources, and the audit recorder. Filtering
// is always re-applied here, whatever the source pushed down.
type InvoiceService struct {
	tenants   ports.TenantStore
	invoices  ports.InvoiceSource
	documents ports.DocumentSource
	recorder  ports.AuditRecorder
	returned  metric.Int64Histogram
	logger    *slog.Logger
	now       func() time.Time
}

// InvoiceServiceDeps groups the collaborators of InvoiceService.
type InvoiceServiceDeps struct {
	Tenants   ports.TenantStore
	Invoices  ports.InvoiceSource
	Documents ports.DocumentSource
	Recorder  ports.AuditRecorder

	// Metrics is optional. When nil, no result-size histogram is recorded.
	Metrics *telemetry.Metrics
}

// NewInvoiceService creates an InvoiceService. A nil logger is replaced by a
// no-op logger.
func NewInvoiceService(deps InvoiceServiceDeps, logger *slog.Logger) *InvoiceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	svc := &InvoiceService{
		tenants:   deps.Tenants,
		invoices:  deps.Invoices,
		documents: deps.Documents,
		recorder:  deps.Recorder,
		logger:    logger,
		now:       time.Now,
	}
	if deps.Metrics != nil {
		svc.returned = deps.Metrics.InvoicesReturned
	}
	return svc
}

// ListTenants returns every tenant ordered by display name.
func (s *InvoiceService) ListTenants(ctx context.Context) ([]tenant.Tenant, error) {
	s.logger.InfoContext(ctx, "listing tenants")

	tenants, err := s.tenants.ListTenants(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tenants",
			slog.String("operation", "ListTenants"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing tenants: %w", err)
	}

	tenant.SortByDisplayName(tenants)
	return tenants, nil
}

// ListInvoices records an audit entry for caller, then returns the invoices
// matching filter in source order.
func (s *InvoiceService) ListInvoices(ctx context.Context, caller ports.Caller, filter invoice.Filter) ([]invoice.Invoice, error) {
	scope := filter.TenantScope()
	s.logger.InfoContext(ctx, "listing invoices", slog.String("tenant", scope))

	s.recorder.Record(ctx, s.viewEntry(caller, scope))

	candidates, err := s.invoices.ListInvoices(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list invoices",
			slog.String("operation", "ListInvoices"),
			slog.String("tenant", scope),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	matched := invoice.Apply(candidates, filter)

	if s.returned != nil {
		s.returned.Record(ctx, int64(len(matched)),
			metric.WithAttributes(telemetry.AttrTenantScope.String(scope)),
		)
	}

	return matched, nil
}

// DownloadInvoice returns the PDF rendition of the invoice with the given ID.
// The ID is checked for shape only; existence is left to the document source.
func (s *InvoiceService) DownloadInvoice(ctx context.Context, id string) (*document.Document, error) {
	s.logger.InfoContext(ctx, "downloading invoice", slog.String("id", id))

	if err := document.ValidateInvoiceID(id); err != nil {
		return nil, err
	}

	doc, err := s.documents.FetchDocument(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch invoice document",
			slog.String("operation", "DownloadInvoice"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching invoice document: %w", err)
	}

	doc.InvoiceID = id
	doc.Filename = document.FilenameFor(id)
	if doc.ContentType == "" {
		doc.ContentType = document.ContentTypePDF
	}
	return doc, nil
}

func (s *InvoiceService) viewEntry(caller ports.Caller, scope string) audit.Entry {
	actor := caller.ActorID
	if actor == "" {
		actor = UnknownActor
	}
	return audit.Entry{
		ID:           uuid.NewString(),
		ActorID:      actor,
		TenantID:     scope,
		Action:       audit.ActionViewInvoices,
		ResourceType: audit.ResourceInvoices,
		IPAddress:    caller.IPAddress,
		UserAgent:    caller.UserAgent,
		RequestID:    caller.RequestID,
		OccurredAt:   s.now().UTC(),
	}
}
