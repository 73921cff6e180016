// Package viewer holds the client-side state controller for browsing
// invoices: it loads tenants once, keeps the invoice list in sync with the
// selected tenant and search filters, and saves invoice PDFs to disk.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/document"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
)

// User-visible error messages.
const (
	MsgLoadTenants     = "Failed to load tenants. Please check your connection."
	MsgLoadInvoices    = "Failed to load invoices. Please try again."
	MsgDownloadInvoice = "Failed to download invoice. Please try again."
)

// ErrStale is returned by fetches whose response was discarded because a
// newer fetch was issued while they were in flight.
var ErrStale = errors.New("superseded by a newer request")

// InvoiceAPI is the remote API the controller drives.
type InvoiceAPI interface {
	ListTenants(ctx context.Context) ([]tenant.Tenant, error)
	ListInvoices(ctx context.Context, filter invoice.Filter) ([]invoice.Invoice, error)
	DownloadInvoice(ctx context.Context, id string) (io.ReadCloser, error)
}

// State is a snapshot of everything a view renders. Filters never carries a
// tenant; the tenant lives in SelectedTenant.
type State struct {
	Tenants        []tenant.Tenant
	Invoices       []invoice.Invoice
	SelectedTenant string
	Filters        invoice.Filter
	Loading        bool
	Err            string
}

// Option configures a Controller.
type Option func(*Controller)

// WithSubscriber registers fn to receive a snapshot after every state
// transition. Snapshots are delivered one at a time. fn may read State but
// must not call the controller's mutating methods.
func WithSubscriber(fn func(State)) Option {
	return func(c *Controller) { c.subscribers = append(c.subscribers, fn) }
}

// WithLogger sets the logger used for failed fetches.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// Controller coordinates fetching for one viewing session. It is safe for
// concurrent use.
type Controller struct {
	api         InvoiceAPI
	logger      *slog.Logger
	subscribers []func(State)

	mu      sync.Mutex
	state   State
	mounted bool
	seq     uint64

	notifyMu sync.Mutex
}

// New creates a Controller with tenant "all", no filters and Loading set
// until the first fetch completes.
func New(api InvoiceAPI, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		logger: slog.New(slog.DiscardHandler),
		state: State{
			SelectedTenant: invoice.AllTenants,
			Loading:        true,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Mount loads tenants and then invoices. Only the first call does anything.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return nil
	}
	c.mounted = true
	c.mu.Unlock()

	tenants, err := c.api.ListTenants(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "loading tenants failed", slog.Any("error", err))
		c.update(func(s *State) {
			s.Err = MsgLoadTenants
			s.Loading = false
		})
		return fmt.Errorf("loading tenants: %w", err)
	}

	c.update(func(s *State) {
		s.Tenants = tenants
		if len(tenants) == 0 {
			s.Loading = false
		}
	})
	if len(tenants) == 0 {
		return nil
	}
	return c.loadInvoices(ctx)
}

// SelectTenant changes the tenant scope and re-fetches invoices once tenants
// are loaded. An empty id selects all tenants.
func (c *Controller) SelectTenant(ctx context.Context, id string) error {
	if id == "" {
		id = invoice.AllTenants
	}
	c.update(func(s *State) { s.SelectedTenant = id })
	return c.refetch(ctx)
}

// SetFilters replaces the search filters and re-fetches invoices once
// tenants are loaded. Any tenant in f is ignored.
func (c *Controller) SetFilters(ctx context.Context, f invoice.Filter) error {
	f.TenantID = ""
	c.update(func(s *State) { s.Filters = f })
	return c.refetch(ctx)
}

// Refresh re-fetches invoices with the current selection. It is the manual
// retry after an error.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.loadInvoices(ctx)
}

// Download saves the PDF for invoice id into dir as invoice-<id>.pdf and
// returns its path. The body is written to a temporary file first, which is
// removed on any failure.
func (c *Controller) Download(ctx context.Context, id, dir string) (string, error) {
	path, err := c.download(ctx, id, dir)
	if err != nil {
		c.logger.ErrorContext(ctx, "downloading invoice failed",
			slog.String("invoice_id", id),
			slog.Any("error", err),
		)
		c.update(func(s *State) { s.Err = MsgDownloadInvoice })
		return "", err
	}
	return path, nil
}

func (c *Controller) download(ctx context.Context, id, dir string) (string, error) {
	if err := document.ValidateInvoiceID(id); err != nil {
		return "", err
	}

	body, err := c.api.DownloadInvoice(ctx, id)
	if err != nil {
		return "", fmt.Errorf("fetching invoice %s: %w", id, err)
	}
	defer body.Close()

	tmp, err := os.CreateTemp(dir, ".invoice-*.part")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := io.Copy(tmp, body); err != nil {
		return "", fmt.Errorf("writing invoice %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	dest := filepath.Join(dir, document.FilenameFor(id))
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("saving %s: %w", dest, err)
	}
	committed = true
	return dest, nil
}

// refetch loads invoices only once tenants are available.
func (c *Controller) refetch(ctx context.Context) error {
	c.mu.Lock()
	ready := len(c.state.Tenants) > 0
	c.mu.Unlock()
	if !ready {
		return nil
	}
	return c.loadInvoices(ctx)
}

// loadInvoices issues a fetch tagged with the next sequence number. A
// response is applied only if no newer fetch was issued meanwhile.
func (c *Controller) loadInvoices(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	filter := c.state.Filters
	if c.state.SelectedTenant != invoice.AllTenants {
		filter.TenantID = c.state.SelectedTenant
	}
	c.state.Loading = true
	c.state.Err = ""
	snap := c.snapshot()
	c.mu.Unlock()
	c.publish(snap)

	invoices, err := c.api.ListInvoices(ctx, filter)

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		c.state.Err = MsgLoadInvoices
	} else {
		c.state.Invoices = invoices
	}
	c.state.Loading = false
	snap = c.snapshot()
	c.mu.Unlock()
	c.publish(snap)

	if err != nil {
		c.logger.ErrorContext(ctx, "loading invoices failed", slog.Any("error", err))
		return fmt.Errorf("loading invoices: %w", err)
	}
	return nil
}

func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	snap := c.snapshot()
	c.mu.Unlock()
	c.publish(snap)
}

// snapshot copies the state. Callers hold mu.
func (c *Controller) snapshot() State {
	s := c.state
	s.Tenants = slices.Clone(c.state.Tenants)
	s.Invoices = slices.Clone(c.state.Invoices)
	return s
}

func (c *Controller) publish(s State) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	for _, fn := range c.subscribers {
		fn(s)
	}
}
