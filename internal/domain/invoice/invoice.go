// Package invoice holds the Invoice entity and the filter engine that selects
// invoices matching a set of optional search criteria.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = time.DateOnly

// Invoice is a read-only billing record sourced from an external billing
// system. InvoiceDate and DueDate are calendar dates stored as UTC midnight.
type Invoice struct {
	ID          string
	Number      string
	InvoiceDate time.Time
	DueDate     time.Time
	TotalAmount decimal.Decimal
	Currency    string
	Status      Status
	TenantID    string
	TenantName  string
}

// Validate checks business rules for the Invoice entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (inv *Invoice) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(inv.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(inv.Number) == "" {
		fields["invoice_number"] = domain.MsgRequired
	}
	if inv.InvoiceDate.IsZero() {
		fields["invoice_date"] = domain.MsgRequired
	}
	if inv.TotalAmount.IsNegative() {
		fields["total_amount"] = fmt.Sprintf("must be non-negative, got %s", inv.TotalAmount)
	}
	if !inv.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", inv.Status)
	}
	if strings.TrimSpace(inv.TenantID) == "" {
		fields["tenant_id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Date returns the calendar date y-m-d as UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date in YYYY-MM-DD form, or an RFC 3339
// timestamp whose calendar date (in its own offset) is kept. The second
// return value is false when s is empty or unparseable.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date(t.Year(), t.Month(), t.Day()), true
	}
	return time.Time{}, false
}

// calendarDay truncates t to its calendar date in UTC.
func calendarDay(t time.Time) time.Time {
	u := t.UTC()
	return Date(u.Year(), u.Month(), u.Day())
}
