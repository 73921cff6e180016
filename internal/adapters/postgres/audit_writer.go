package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/audit"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// Compile-time interface check.
var _ ports.AuditWriter = (*AuditWriter)(nil)

const insertAuditSQL = `INSERT INTO audit_logs
	(id, user_id, tenant_id, action, resource_type, ip_address, user_agent, request_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// AuditWriter appends entries to the audit_logs table.
type AuditWriter struct {
	q Querier
}

// NewAuditWriter creates an AuditWriter.
func NewAuditWriter(q Querier) *AuditWriter {
	return &AuditWriter{q: q}
}

// WriteAudit inserts entry. Missing IDs and timestamps are filled in.
func (w *AuditWriter) WriteAudit(ctx context.Context, entry audit.Entry) error {
	id, err := uuid.Parse(entry.ID)
	if err != nil {
		id = uuid.New()
	}
	occurred := entry.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}

	_, err = w.q.Exec(ctx, insertAuditSQL,
		id,
		entry.ActorID,
		entry.TenantID,
		entry.Action,
		entry.ResourceType,
		entry.IPAddress,
		entry.UserAgent,
		entry.RequestID,
		occurred,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}
	return nil
}
