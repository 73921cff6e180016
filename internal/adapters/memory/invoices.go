package memory

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.InvoiceSource  = (*InvoiceSource)(nil)
	_ ports.DocumentSource = (*DocumentSource)(nil)
)

// PlaceholderPDF is the body served for every invoice download.
var PlaceholderPDF = []byte("%PDF-1.4 Mock Invoice PDF Content")

// InvoiceSource serves a fixed invoice list. It does no filtering of its
// own; the application layer applies the filter.
type InvoiceSource struct {
	invoices []invoice.Invoice
}

// NewInvoiceSource returns a source backed by invoices. A nil slice selects
// SampleInvoices.
func NewInvoiceSource(invoices []invoice.Invoice) *InvoiceSource {
	if invoices == nil {
		invoices = SampleInvoices()
	}
	return &InvoiceSource{invoices: invoices}
}

// ListInvoices returns a copy of every invoice in the source.
func (s *InvoiceSource) ListInvoices(ctx context.Context, _ invoice.Filter) ([]invoice.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.invoices), nil
}

// DocumentSource returns PlaceholderPDF for any invoice ID.
type DocumentSource struct{}

// NewDocumentSource creates a DocumentSource.
func NewDocumentSource() *DocumentSource {
	return &DocumentSource{}
}

// FetchDocument returns the placeholder rendition. Existence is not checked.
func (s *DocumentSource) FetchDocument(ctx context.Context, invoiceID string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &document.Document{
		InvoiceID:   invoiceID,
		Filename:    document.FilenameFor(invoiceID),
		ContentType: document.ContentTypePDF,
		Content:     slices.Clone(PlaceholderPDF),
	}, nil
}

// SampleInvoices returns the demo invoice set.
func SampleInvoices() []invoice.Invoice {
	mk := func(id, number string, issued, due time.Time, amount string, status invoice.Status, t sampleTenant) invoice.Invoice {
		return invoice.Invoice{
			ID:          id,
			Number:      number,
			InvoiceDate: issued,
			DueDate:     due,
			TotalAmount: decimal.RequireFromString(amount),
			Currency:    "USD",
			Status:      status,
			TenantID:    t.id,
			TenantName:  t.name,
		}
	}

	return []invoice.Invoice{
		mk("inv-001", "2024-001", invoice.Date(2024, time.January, 15), invoice.Date(2024, time.February, 15), "1250.00", invoice.StatusPaid, contoso),
		mk("inv-002", "2024-002", invoice.Date(2024, time.January, 20), invoice.Date(2024, time.February, 20), "890.50", invoice.StatusPending, fabrikam),
		mk("inv-003", "2024-003", invoice.Date(2024, time.January, 25), invoice.Date(2024, time.February, 25), "2100.75", invoice.StatusPaid, adventureWorks),
		mk("inv-004", "2024-004", invoice.Date(2024, time.February, 1), invoice.Date(2024, time.March, 1), "675.25", invoice.StatusOverdue, contoso),
		mk("inv-005", "2024-005", invoice.Date(2024, time.February, 10), invoice.Date(2024, time.March, 10), "1500.00", invoice.StatusPending, fabrikam),
	}
}
