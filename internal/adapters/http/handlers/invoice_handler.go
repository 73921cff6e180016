package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/logging"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// InvoiceHandler handles the authenticated invoice viewer endpoints.
type InvoiceHandler struct {
	service ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler with the given service port.
func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// ListTenants handles GET /api/tenants.
func (h *InvoiceHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.service.ListTenants(r.Context())
	if err != nil {
		logFailure(r, "list_tenants", err)
		dto.WriteServiceError(w, r, err, dto.MsgFetchTenants)
		return
	}

	respondJSON(w, r, http.StatusOK, dto.ToTenantList(tenants))
}

// ListInvoices handles GET /api/invoices.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	filter := dto.ParseInvoiceFilter(r.URL.Query())

	invoices, err := h.service.ListInvoices(r.Context(), callerFrom(r), filter)
	if err != nil {
		logFailure(r, "list_invoices", err)
		dto.WriteServiceError(w, r, err, dto.MsgFetchInvoices)
		return
	}

	respondJSON(w, r, http.StatusOK, dto.ToInvoiceList(invoices))
}

// DownloadInvoice handles GET /api/invoices/{id}/download.
func (h *InvoiceHandler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.service.DownloadInvoice(r.Context(), id)
	if err != nil {
		logFailure(r, "download_invoice", err)
		dto.WriteServiceError(w, r, err, dto.MsgDownloadInvoice)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Content); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to write document",
			slog.String("invoice_id", id),
			slog.Any("error", err),
		)
	}
}

func callerFrom(r *http.Request) ports.Caller {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	return ports.Caller{
		ActorID:   principal.ActorID,
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		RequestID: middleware.RequestIDFromContext(r.Context()),
	}
}

// logFailure logs a failed service call with its operation name.
func logFailure(r *http.Request, operation string, err error) {
	logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
}
