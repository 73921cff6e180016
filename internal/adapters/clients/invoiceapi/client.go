// Package invoiceapi is the outbound adapter the terminal viewer uses to talk
// to the invoice viewer's own HTTP API. It shares the request lifecycle,
// retry, circuit breaker and error mapping of the ACL clients.
package invoiceapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/httpclient"
)

// ServiceName identifies the invoice API in client traces and metrics.
const ServiceName = "invoice-api"

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client calls GET /api/tenants, GET /api/invoices and
// GET /api/invoices/{id}/download with a bearer token.
type Client struct {
	req *acl.Requester
}

// New creates a Client whose httpclient.Client BaseURL points at the server
// root. A nil tokens sends requests without credentials.
func New(client *httpclient.Client, tokens TokenSource, logger *slog.Logger) *Client {
	var opts []acl.RequesterOption
	if tokens != nil {
		opts = append(opts, acl.WithAuthorizer(bearer(tokens)))
	}
	return &Client{req: acl.NewRequester(client, logger, opts...)}
}

// ListTenants returns every tenant in server order.
func (c *Client) ListTenants(ctx context.Context) ([]tenant.Tenant, error) {
	var body []dto.TenantResponse
	if err := c.req.GetJSON(ctx, "/api/tenants", nil, &body); err != nil {
		return nil, err
	}

	tenants := make([]tenant.Tenant, len(body))
	for i := range body {
		tenants[i] = dto.FromTenantResponse(body[i])
	}
	return tenants, nil
}

// ListInvoices returns the invoices matching filter.
func (c *Client) ListInvoices(ctx context.Context, filter invoice.Filter) ([]invoice.Invoice, error) {
	var body []dto.InvoiceResponse
	if err := c.req.GetJSON(ctx, "/api/invoices", dto.InvoiceQuery(filter), &body); err != nil {
		return nil, err
	}

	invoices := make([]invoice.Invoice, len(body))
	for i := range body {
		invoices[i] = dto.FromInvoiceResponse(body[i])
	}
	return invoices, nil
}

// DownloadInvoice opens the PDF rendition of an invoice. The caller must
// close the returned reader.
func (c *Client) DownloadInvoice(ctx context.Context, id string) (io.ReadCloser, error) {
	path := "/api/invoices/" + url.PathEscape(id) + "/download"
	return c.req.Stream(ctx, path, document.ContentTypePDF)
}

func bearer(tokens TokenSource) acl.Authorizer {
	return func(ctx context.Context, req *http.Request) error {
		token, err := tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("acquiring access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}
