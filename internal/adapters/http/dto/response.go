// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
)

// HealthStatusOK is the status reported by GET /health.
const HealthStatusOK = "OK"

// TenantResponse represents a single tenant in HTTP responses.
type TenantResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Domain      string `json:"domain"`
}

// ToTenantResponse converts a domain Tenant to an HTTP response DTO.
func ToTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:          t.ID,
		DisplayName: t.DisplayName,
		Domain:      t.Domain,
	}
}

// ToTenantList converts tenants to the bare JSON array returned by
// GET /api/tenants. The result is never nil.
func ToTenantList(tenants []tenant.Tenant) []TenantResponse {
	items := make([]TenantResponse, len(tenants))
	for i := range tenants {
		items[i] = ToTenantResponse(&tenants[i])
	}
	return items
}

// FromTenantResponse converts a wire tenant back into the domain type.
func FromTenantResponse(r TenantResponse) tenant.Tenant {
	return tenant.Tenant{ID: r.ID, DisplayName: r.DisplayName, Domain: r.Domain}
}

// InvoiceResponse represents a single invoice in HTTP responses. Dates are
// YYYY-MM-DD and the total is a JSON number.
type InvoiceResponse struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	InvoiceDate   string  `json:"invoiceDate"`
	DueDate       string  `json:"dueDate,omitempty"`
	TotalAmount   float64 `json:"totalAmount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	TenantID      string  `json:"tenantId"`
	TenantName    string  `json:"tenantName"`
}

// ToInvoiceResponse converts a domain Invoice to an HTTP response DTO.
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.Number,
		InvoiceDate:   formatDate(inv.InvoiceDate),
		DueDate:       formatDate(inv.DueDate),
		TotalAmount:   inv.TotalAmount.InexactFloat64(),
		Currency:      inv.Currency,
		Status:        inv.Status.String(),
		TenantID:      inv.TenantID,
		TenantName:    inv.TenantName,
	}
}

// ToInvoiceList converts invoices to the bare JSON array returned by
// GET /api/invoices, preserving order. The result is never nil.
func ToInvoiceList(invoices []invoice.Invoice) []InvoiceResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		items[i] = ToInvoiceResponse(&invoices[i])
	}
	return items
}

// FromInvoiceResponse converts a wire invoice back into the domain type.
// Unparseable dates become the zero time.
func FromInvoiceResponse(r InvoiceResponse) invoice.Invoice {
	issued, _ := invoice.ParseDate(r.InvoiceDate)
	due, _ := invoice.ParseDate(r.DueDate)
	return invoice.Invoice{
		ID:          r.ID,
		Number:      r.InvoiceNumber,
		InvoiceDate: issued,
		DueDate:     due,
		TotalAmount: decimal.NewFromFloat(r.TotalAmount),
		Currency:    r.Currency,
		Status:      invoice.Status(r.Status),
		TenantID:    r.TenantID,
		TenantName:  r.TenantName,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse reports an OK status at now.
func NewHealthResponse(now time.Time) HealthResponse {
	return HealthResponse{
		Status:    HealthStatusOK,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

// Readiness statuses.
const (
	ReadinessReady    = "ready"
	ReadinessNotReady = "not_ready"
	checkOK           = "ok"
)

// ReadinessResponse is the body of GET /health/ready. Checks maps each
// dependency (postgres, billing-api) to "ok" or its failure text.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// NewReadinessResponse summarizes health check results. The service is ready
// only when every check passed; no checks at all counts as ready.
func NewReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{Status: ReadinessReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = checkOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = ReadinessNotReady
	}
	return resp
}

// Ready reports whether every check passed.
func (r ReadinessResponse) Ready() bool {
	return r.Status == ReadinessReady
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(invoice.DateLayout)
}
