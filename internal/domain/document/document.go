// Package document holds the downloadable rendition of an invoice.
package document

import (
	"fmt"
	"regexp"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain"
)

// ContentTypePDF is the media type of invoice documents.
const ContentTypePDF = "application/pdf"

// idPattern restricts invoice IDs accepted for download. IDs end up inside a
// Content-Disposition header, so quotes, separators and control characters
// are rejected.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// Document is a binary invoice rendition ready to stream to a caller.
type Document struct {
	InvoiceID   string
	Filename    string
	ContentType string
	Content     []byte
}

// FilenameFor returns the download filename for an invoice ID.
func FilenameFor(invoiceID string) string {
	return fmt.Sprintf("invoice-%s.pdf", invoiceID)
}

// ValidateInvoiceID reports whether id is acceptable as a download key.
// Returns a *domain.ValidationError when it is not.
func ValidateInvoiceID(id string) error {
	if !idPattern.MatchString(id) {
		return &domain.ValidationError{
			Fields: map[string]string{"id": "must be 1-128 characters of letters, digits, '.', '_' or '-'"},
		}
	}
	return nil
}
