// Package billing implements the Anti-Corruption Layer translators for the
// downstream billing API's invoice resources.
package billing

// MoneyDTO matches the downstream Money schema. Amount is a decimal string
// to avoid float rounding on the wire.
type MoneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// CustomerDTO matches the downstream Customer reference embedded in invoices.
// Customers are our tenants.
type CustomerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InvoiceDTO matches the downstream Invoice schema.
type InvoiceDTO struct {
	ID       string      `json:"id"`
	Number   string      `json:"number"`
	IssuedOn string      `json:"issued_on"`
	DueOn    string      `json:"due_on"`
	Total    MoneyDTO    `json:"total"`
	State    string      `json:"state"`
	Customer CustomerDTO `json:"customer"`
}

// InvoiceListResponseDTO matches the downstream InvoiceList schema.
type InvoiceListResponseDTO struct {
	Items []InvoiceDTO `json:"items"`
	Count int64        `json:"count"`
}
