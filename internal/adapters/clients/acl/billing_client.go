package acl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/clients/acl/billing"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/httpclient"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// BillingServiceName identifies the billing API in traces, metrics, and the
// health registry.
const BillingServiceName = "billing-api"

// Compile-time interface checks.
var (
	_ ports.InvoiceSource  = (*BillingClient)(nil)
	_ ports.DocumentSource = (*BillingClient)(nil)
	_ ports.HealthChecker  = (*BillingClient)(nil)
)

// BillingClient is the outbound adapter for the downstream billing API. It
// implements [ports.InvoiceSource] and [ports.DocumentSource].
//
// Filters are pushed down as query parameters via [billing.ToListQuery]; the
// application layer re-applies them, so a downstream that ignores a parameter
// still yields correct results. HTTP errors are mapped to domain errors by
// [TranslateHTTPError].
type BillingClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewBillingClient creates a BillingClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the billing API root.
func NewBillingClient(client *httpclient.Client, logger *slog.Logger) *BillingClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BillingClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListInvoices fetches invoices from GET /api/v1/invoices. Records that
// cannot be translated are skipped and logged.
func (c *BillingClient) ListInvoices(ctx context.Context, filter invoice.Filter) ([]invoice.Invoice, error) {
	var dto billing.InvoiceListResponseDTO
	if err := c.req.GetJSON(ctx, "/api/v1/invoices", billing.ToListQuery(filter), &dto); err != nil {
		return nil, err
	}

	invoices, skipped := billing.ToDomainInvoiceList(dto)
	if skipped > 0 {
		c.logger.WarnContext(ctx, "skipped untranslatable invoices",
			slog.Int("skipped", skipped),
			slog.Int("received", len(dto.Items)),
		)
	}
	return invoices, nil
}

// FetchDocument downloads the PDF rendition from
// GET /api/v1/invoices/{id}/pdf. Returns [domain.ErrNotFound] if the billing
// API does not know the invoice.
func (c *BillingClient) FetchDocument(ctx context.Context, invoiceID string) (*document.Document, error) {
	path := "/api/v1/invoices/" + url.PathEscape(invoiceID) + "/pdf"

	content, contentType, err := c.req.GetBytes(ctx, path, document.ContentTypePDF)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = document.ContentTypePDF
	}

	return &document.Document{
		InvoiceID:   invoiceID,
		Filename:    document.FilenameFor(invoiceID),
		ContentType: contentType,
		Content:     content,
	}, nil
}
