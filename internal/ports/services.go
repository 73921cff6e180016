package ports

import (
	"context"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/audit"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
)

// InvoiceService defines the service port for the invoice viewer's read
// operations. Implemented by the application layer; called by inbound
// adapters (handlers). Authentication is enforced before these methods run.
type InvoiceService interface {
	// ListTenants returns all tenants ordered by display name ascending.
	ListTenants(ctx context.Context) ([]tenant.Tenant, error)

	// ListInvoices records an audit entry for the caller and returns the
	// invoices matching filter in source order. Audit failures never
	// surface here.
	ListInvoices(ctx context.Context, caller Caller, filter invoice.Filter) ([]invoice.Invoice, error)

	// DownloadInvoice returns the PDF rendition of an invoice.
	// Returns domain.ErrValidation if id is not a syntactically valid ID.
	DownloadInvoice(ctx context.Context, id string) (*document.Document, error)
}

// Caller describes who issued a request, for audit purposes.
type Caller struct {
	ActorID   string
	IPAddress string
	UserAgent string
	RequestID string
}

// AuditRecorder accepts audit entries for best-effort, asynchronous delivery.
// Record never blocks on the underlying store and never reports failure to
// the caller; failures are captured by logs and metrics.
type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry)
}
