package dto

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
)

// Query parameter names accepted by GET /api/invoices.
const (
	QueryTenant        = "tenant"
	QueryDateFrom      = "dateFrom"
	QueryDateTo        = "dateTo"
	QueryMinAmount     = "minAmount"
	QueryMaxAmount     = "maxAmount"
	QueryInvoiceNumber = "invoiceNumber"
)

// RawFilter carries the invoice search criteria exactly as received on the
// query string, before any parsing.
type RawFilter struct {
	Tenant        string
	DateFrom      string
	DateTo        string
	MinAmount     string
	MaxAmount     string
	InvoiceNumber string
}

// RawFilterFromQuery extracts the invoice search parameters from q.
func RawFilterFromQuery(q url.Values) RawFilter {
	return RawFilter{
		Tenant:        q.Get(QueryTenant),
		DateFrom:      q.Get(QueryDateFrom),
		DateTo:        q.Get(QueryDateTo),
		MinAmount:     q.Get(QueryMinAmount),
		MaxAmount:     q.Get(QueryMaxAmount),
		InvoiceNumber: q.Get(QueryInvoiceNumber),
	}
}

// ParseFilter converts raw criteria into an invoice.Filter. It never fails:
// unparseable dates and non-numeric amounts are treated as absent, and a
// tenant of "all" means no tenant restriction.
func ParseFilter(raw RawFilter) invoice.Filter {
	f := invoice.Filter{
		InvoiceNumber: strings.TrimSpace(raw.InvoiceNumber),
	}

	if tenant := strings.TrimSpace(raw.Tenant); tenant != invoice.AllTenants {
		f.TenantID = tenant
	}
	if t, ok := invoice.ParseDate(raw.DateFrom); ok {
		f.DateFrom = &t
	}
	if t, ok := invoice.ParseDate(raw.DateTo); ok {
		f.DateTo = &t
	}
	f.MinAmount = parseAmount(raw.MinAmount)
	f.MaxAmount = parseAmount(raw.MaxAmount)

	return f
}

// ParseInvoiceFilter is shorthand for ParseFilter(RawFilterFromQuery(q)).
func ParseInvoiceFilter(q url.Values) invoice.Filter {
	return ParseFilter(RawFilterFromQuery(q))
}

// InvoiceQuery encodes f as GET /api/invoices query parameters. Absent
// criteria are omitted, so ParseInvoiceFilter(InvoiceQuery(f)) equals f for
// any filter with calendar-date bounds.
func InvoiceQuery(f invoice.Filter) url.Values {
	q := url.Values{}
	if f.TenantID != "" {
		q.Set(QueryTenant, f.TenantID)
	}
	if f.DateFrom != nil {
		q.Set(QueryDateFrom, f.DateFrom.Format(invoice.DateLayout))
	}
	if f.DateTo != nil {
		q.Set(QueryDateTo, f.DateTo.Format(invoice.DateLayout))
	}
	if f.MinAmount != nil {
		q.Set(QueryMinAmount, f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		q.Set(QueryMaxAmount, f.MaxAmount.String())
	}
	if f.InvoiceNumber != "" {
		q.Set(QueryInvoiceNumber, f.InvoiceNumber)
	}
	return q
}

func parseAmount(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
