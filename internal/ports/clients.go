package ports

import (
	"context"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/audit"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
)

// InvoiceSource defines the client port for fetching invoices from a billing
// system. Implementations may push any part of filter down to the upstream;
// the application layer re-applies the full filter to whatever is returned.
type InvoiceSource interface {
	// ListInvoices returns candidate invoices for filter.
	// Returns domain.ErrUnavailable if the upstream cannot be reached.
	ListInvoices(ctx context.Context, filter invoice.Filter) ([]invoice.Invoice, error)
}

// DocumentSource defines the client port for fetching invoice renditions.
type DocumentSource interface {
	// FetchDocument returns the PDF rendition of the invoice with the given ID.
	FetchDocument(ctx context.Context, invoiceID string) (*document.Document, error)
}

// TenantStore defines the client port for reading tenants from persistent
// storage.
type TenantStore interface {
	// ListTenants returns all tenants ordered by display name ascending.
	ListTenants(ctx context.Context) ([]tenant.Tenant, error)
}

// AuditWriter defines the client port for appending audit entries.
type AuditWriter interface {
	// WriteAudit appends entry to the audit log.
	WriteAudit(ctx context.Context, entry audit.Entry) error
}
