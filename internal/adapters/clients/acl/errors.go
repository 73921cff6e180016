// Package acl keeps the billing API's wire format out of the domain. The
// translators for its resources live in acl/billing; the request lifecycle
// and the mapping of failed responses to domain errors live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain"
)

// maxErrorBody caps how much of a failed response is read.
const maxErrorBody = 64 << 10

// statusErrors maps billing API statuses to domain sentinels. 429 counts as
// unavailable because the caller can do nothing but retry later.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrUnauthorized,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// billingProblem is the problem+json body the billing API sends on failure.
type billingProblem struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

func (p billingProblem) message(status int) string {
	switch {
	case p.Detail != "":
		return p.Detail
	case p.Error != "":
		return p.Error
	default:
		return http.StatusText(status)
	}
}

// TranslateHTTPError turns a failed billing API response into an error that
// wraps a domain sentinel, so errors.Is works on it. Validation failures that
// name fields become *domain.ValidationError keyed by query parameter. The
// body is read but not closed.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	msg := p.message(resp.StatusCode)

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("billing api: unexpected status %d: %s", resp.StatusCode, msg)
	}

	if sentinel == domain.ErrValidation && len(p.Errors) > 0 {
		fields := make(map[string]string, len(p.Errors))
		for _, e := range p.Errors {
			fields[strings.TrimPrefix(e.Location, "query.")] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	}
	return fmt.Errorf("%s: %w", msg, sentinel)
}

// readProblem decodes a JSON or problem+json body. Anything else, or a body
// that does not decode, yields the zero value.
func readProblem(resp *http.Response) billingProblem {
	var p billingProblem
	if resp.Body == nil {
		return p
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && mediaType != "application/problem+json") {
		return p
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || json.Unmarshal(body, &p) != nil {
		return billingProblem{}
	}
	return p
}
