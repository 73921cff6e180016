package memory

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/audit"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// Compile-time interface check.
var _ ports.AuditWriter = (*LogAuditWriter)(nil)

// LogAuditWriter writes audit entries to a structured logger. It is used
// when no database is configured.
type LogAuditWriter struct {
	logger *slog.Logger
}

// NewLogAuditWriter creates a LogAuditWriter.
func NewLogAuditWriter(logger *slog.Logger) *LogAuditWriter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogAuditWriter{logger: logger}
}

// WriteAudit logs entry at INFO.
func (w *LogAuditWriter) WriteAudit(ctx context.Context, entry audit.Entry) error {
	w.logger.InfoContext(ctx, "audit",
		slog.String("audit_id", entry.ID),
		slog.String("actor_id", entry.ActorID),
		slog.String("tenant_id", entry.TenantID),
		slog.String("action", entry.Action),
		slog.String("resource_type", entry.ResourceType),
		slog.String("ip_address", entry.IPAddress),
		slog.String("user_agent", entry.UserAgent),
		slog.String("request_id", entry.RequestID),
		slog.Time("occurred_at", entry.OccurredAt),
	)
	return nil
}
