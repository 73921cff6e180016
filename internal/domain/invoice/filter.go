package invoice

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AllTenants is the tenant selection that disables tenant filtering.
const AllTenants = "all"

// Filter holds optional search criteria for listing invoices.
// Nil pointers and empty strings mean "no filter" for that dimension.
// Date and amount bounds are inclusive.
type Filter struct {
	TenantID      string
	DateFrom      *time.Time
	DateTo        *time.Time
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	InvoiceNumber string
}

// TenantScope returns the selected tenant, or AllTenants when none is selected.
func (f Filter) TenantScope() string {
	if f.TenantID == "" {
		return AllTenants
	}
	return f.TenantID
}

// IsZero reports whether no criterion is present.
func (f Filter) IsZero() bool {
	return f.TenantScope() == AllTenants &&
		f.DateFrom == nil && f.DateTo == nil &&
		f.MinAmount == nil && f.MaxAmount == nil &&
		f.InvoiceNumber == ""
}

// Matches reports whether inv satisfies every present criterion.
func (f Filter) Matches(inv *Invoice) bool {
	if scope := f.TenantScope(); scope != AllTenants && inv.TenantID != scope {
		return false
	}

	day := calendarDay(inv.InvoiceDate)
	if f.DateFrom != nil && day.Before(calendarDay(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && day.After(calendarDay(*f.DateTo)) {
		return false
	}

	if f.MinAmount != nil && inv.TotalAmount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && inv.TotalAmount.GreaterThan(*f.MaxAmount) {
		return false
	}

	if f.InvoiceNumber != "" &&
		!strings.Contains(strings.ToLower(inv.Number), strings.ToLower(f.InvoiceNumber)) {
		return false
	}

	return true
}

// Apply returns the invoices matching f in their original relative order.
// A zero Filter returns every invoice. The input slice is never modified.
func Apply(invoices []Invoice, f Filter) []Invoice {
	out := make([]Invoice, 0, len(invoices))
	for i := range invoices {
		if f.Matches(&invoices[i]) {
			out = append(out, invoices[i])
		}
	}
	return out
}
