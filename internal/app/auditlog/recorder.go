// Package auditlog delivers audit entries to an AuditWriter off the request
// path. Entries are queued in a bounded buffer and written by a single worker
// goroutine. A slow or failing audit store never delays or fails the request
// that produced the entry.
package auditlog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/audit"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/telemetry"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// Compile-time check that Recorder implements ports.AuditRecorder.
var _ ports.AuditRecorder = (*Recorder)(nil)

// Failure reasons attached to the audit.write.failures counter.
const (
	reasonQueueFull = "queue_full"
	reasonWrite     = "write_error"
	reasonClosed    = "closed"
)

// Defaults applied when Options leaves a field at its zero value.
const (
	DefaultQueueSize    = 256
	DefaultWriteTimeout = 5 * time.Second
)

// Options configures a Recorder.
type Options struct {
	QueueSize    int
	WriteTimeout time.Duration

	// Metrics is optional. When nil, failures are only logged.
	Metrics *telemetry.Metrics
}

type job struct {
	ctx   context.Context
	entry audit.Entry
}

// Recorder implements ports.AuditRecorder.
type Recorder struct {
	writer       ports.AuditWriter
	writeTimeout time.Duration
	failures     metric.Int64Counter
	logger       *slog.Logger

	queue chan job
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// New creates a Recorder and starts its worker. Callers must call Close to
// flush queued entries and stop the worker.
func New(writer ports.AuditWriter, opts Options, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultWriteTimeout
	}

	r := &Recorder{
		writer:       writer,
		writeTimeout: opts.WriteTimeout,
		logger:       logger,
		queue:        make(chan job, opts.QueueSize),
		done:         make(chan struct{}),
	}
	if opts.Metrics != nil {
		r.failures = opts.Metrics.AuditWriteFailures
	}

	go r.run()
	return r
}

// Record enqueues entry without blocking. If the queue is full or the
// recorder is closed, the entry is dropped and the drop is logged and counted.
//
// The request context is detached from cancellation so the write outlives
// the request, while trace and logger values are kept.
func (r *Recorder) Record(ctx context.Context, entry audit.Entry) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.fail(ctx, entry, reasonClosed, nil)
		return
	}

	select {
	case r.queue <- job{ctx: context.WithoutCancel(ctx), entry: entry}:
	default:
		r.fail(ctx, entry, reasonQueueFull, nil)
	}
}

// Close stops accepting entries and waits for queued entries to be written.
// If ctx expires first, Close returns ctx.Err() and the remaining entries are
// written in the background until the queue is empty.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for j := range r.queue {
		r.write(j)
	}
}

func (r *Recorder) write(j job) {
	ctx, cancel := context.WithTimeout(j.ctx, r.writeTimeout)
	defer cancel()

	if err := r.writer.WriteAudit(ctx, j.entry); err != nil {
		reason := reasonWrite
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		r.fail(ctx, j.entry, reason, err)
	}
}

func (r *Recorder) fail(ctx context.Context, entry audit.Entry, reason string, err error) {
	attrs := []any{
		slog.String("operation", "RecordAudit"),
		slog.String("reason", reason),
		slog.String("audit_id", entry.ID),
		slog.String("action", entry.Action),
		slog.String("tenant", entry.TenantID),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	r.logger.WarnContext(ctx, "audit entry not recorded", attrs...)

	if r.failures != nil {
		r.failures.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrAuditAction.String(entry.Action),
			telemetry.AttrResult.String(reason),
		))
	}
}
