package billing

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
)

// Downstream invoice states. "open" and "sent" are both unpaid and not yet due.
const (
	stateSettled = "settled"
	stateOpen    = "open"
	stateSent    = "sent"
	statePastDue = "past_due"
)

// ToDomainInvoice converts a downstream InvoiceDTO to a domain Invoice.
// The second return value is false when the record cannot be represented
// (unparseable dates or amount); callers skip such records.
func ToDomainInvoice(dto *InvoiceDTO) (invoice.Invoice, bool) {
	issued, ok := invoice.ParseDate(dto.IssuedOn)
	if !ok {
		return invoice.Invoice{}, false
	}
	due, _ := invoice.ParseDate(dto.DueOn)

	total, err := decimal.NewFromString(dto.Total.Amount)
	if err != nil {
		return invoice.Invoice{}, false
	}

	return invoice.Invoice{
		ID:          dto.ID,
		Number:      dto.Number,
		InvoiceDate: issued,
		DueDate:     due,
		TotalAmount: total,
		Currency:    dto.Total.Currency,
		Status:      toDomainStatus(dto.State),
		TenantID:    dto.Customer.ID,
		TenantName:  dto.Customer.Name,
	}, true
}

// ToDomainInvoiceList converts a downstream list response, dropping records
// that cannot be represented. The second return value counts dropped records.
func ToDomainInvoiceList(dto InvoiceListResponseDTO) ([]invoice.Invoice, int) {
	out := make([]invoice.Invoice, 0, len(dto.Items))
	skipped := 0
	for i := range dto.Items {
		inv, ok := ToDomainInvoice(&dto.Items[i])
		if !ok {
			skipped++
			continue
		}
		out = append(out, inv)
	}
	return out, skipped
}

// ToListQuery converts a domain filter to downstream query parameters.
// Only criteria the billing API supports are pushed down.
func ToListQuery(f invoice.Filter) url.Values {
	q := url.Values{}
	if scope := f.TenantScope(); scope != invoice.AllTenants {
		q.Set("customer_id", scope)
	}
	if f.DateFrom != nil {
		q.Set("issued_from", f.DateFrom.Format(invoice.DateLayout))
	}
	if f.DateTo != nil {
		q.Set("issued_to", f.DateTo.Format(invoice.DateLayout))
	}
	if f.MinAmount != nil {
		q.Set("min_total", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		q.Set("max_total", f.MaxAmount.String())
	}
	if f.InvoiceNumber != "" {
		q.Set("number_contains", f.InvoiceNumber)
	}
	return q
}

func toDomainStatus(state string) invoice.Status {
	switch state {
	case stateSettled:
		return invoice.StatusPaid
	case statePastDue:
		return invoice.StatusOverdue
	case stateOpen, stateSent:
		return invoice.StatusPending
	default:
		return invoice.StatusPending
	}
}
