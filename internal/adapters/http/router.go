// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. spa answers unmatched
// non-API paths; when nil they get the JSON 404 as well.
func NewRouter(
	invoiceHandler *handlers.InvoiceHandler,
	healthHandler *handlers.HealthHandler,
	spa http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints are unauthenticated.
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API routes. The bearer check is per route so unknown /api paths still
	// get a plain 404.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireBearer())

		r.Get("/api/tenants", invoiceHandler.ListTenants)
		r.Get("/api/invoices", invoiceHandler.ListInvoices)
		r.Get("/api/invoices/{id}/download", invoiceHandler.DownloadInvoice)
	})

	r.NotFound(notFound(spa))

	return r
}
