package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain"
)

// Public messages for responses whose detail must not leak internals.
const (
	MsgInternal         = "Something went wrong!"
	MsgTokenRequired    = "Access token required"
	MsgAPIRouteNotFound = "API route not found"
	MsgFetchTenants     = "Failed to fetch tenants"
	MsgFetchInvoices    = "Failed to fetch invoices"
	MsgDownloadInvoice  = "Failed to download invoice"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document. Error repeats a short
// message for clients that only read {"error": "..."}.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Error    string        `json:"error"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one rejected request field, e.g. "path.id".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor is checked in order; the first sentinel err wraps wins.
var statusFor = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

func statusOf(err error) int {
	for _, m := range statusFor {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

func newProblem(r *http.Request, status int) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.URL.RequestURI(),
	}
}

// NewErrorResponse builds the problem for err. Server errors (5xx) carry only
// publicMsg, or MsgInternal when it is empty; the caller logs the cause.
// Client errors carry err's text, and validation errors list their fields.
func NewErrorResponse(r *http.Request, err error, publicMsg string) ErrorResponse {
	p := newProblem(r, statusOf(err))

	if p.Status >= http.StatusInternalServerError {
		p.Error = cmp.Or(publicMsg, MsgInternal)
		return p
	}

	p.Detail, p.Error = err.Error(), err.Error()
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Error = domain.ErrValidation.Error()
		for field, msg := range verr.Fields {
			p.Errors = append(p.Errors, ErrorDetail{Location: "path." + field, Message: msg})
		}
		slices.SortFunc(p.Errors, func(a, b ErrorDetail) int { return strings.Compare(a.Location, b.Location) })
	}
	return p
}

// WriteErrorResponse writes the problem for err with MsgInternal as the
// server-error message.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteServiceError(w, r, err, MsgInternal)
}

// WriteServiceError writes the problem for err, showing publicMsg instead of
// err for server errors.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error, publicMsg string) {
	writeProblem(w, r, NewErrorResponse(r, err, publicMsg))
}

// WriteProblem writes a problem whose detail and error are both msg.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, msg string) {
	p := newProblem(r, status)
	p.Detail, p.Error = msg, msg
	writeProblem(w, r, p)
}

func writeProblem(w http.ResponseWriter, r *http.Request, p ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", err))
	}
}
