// Package audit holds the audit Entry appended whenever a user reads
// tenant-scoped billing data.
package audit

import "time"

// Action tags recorded in audit entries.
const (
	ActionViewInvoices = "VIEW_INVOICES"
)

// Resource types recorded in audit entries.
const (
	ResourceInvoices = "invoices"
)

// Entry is an append-only audit record.
type Entry struct {
	ID           string
	ActorID      string
	TenantID     string
	Action       string
	ResourceType string
	IPAddress    string
	UserAgent    string
	RequestID    string
	OccurredAt   time.Time
}
