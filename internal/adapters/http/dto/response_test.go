package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
)

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validInvoice() invoice.Invoice {
	return invoice.Invoice{
		ID:          "inv-001",
		Number:      "2024-001",
		InvoiceDate: invoice.Date(2024, time.January, 15),
		DueDate:     invoice.Date(2024, time.February, 15),
		TotalAmount: amount("1250.50"),
		Currency:    "USD",
		Status:      invoice.StatusPaid,
		TenantID:    "tenant-1",
		TenantName:  "Contoso Ltd",
	}
}

func TestToInvoiceResponse(t *testing.T) {
	t.Parallel()

	inv := validInvoice()
	got := dto.ToInvoiceResponse(&inv)

	if got.ID != "inv-001" || got.InvoiceNumber != "2024-001" {
		t.Errorf("ids = (%q, %q), want (inv-001, 2024-001)", got.ID, got.InvoiceNumber)
	}
	if got.InvoiceDate != "2024-01-15" {
		t.Errorf("InvoiceDate = %q, want %q", got.InvoiceDate, "2024-01-15")
	}
	if got.DueDate != "2024-02-15" {
		t.Errorf("DueDate = %q, want %q", got.DueDate, "2024-02-15")
	}
	if got.TotalAmount != 1250.5 {
		t.Errorf("TotalAmount = %v, want 1250.5", got.TotalAmount)
	}
	if got.Status != "paid" {
		t.Errorf("Status = %q, want %q", got.Status, "paid")
	}
	if got.TenantID != "tenant-1" || got.TenantName != "Contoso Ltd" {
		t.Errorf("tenant = (%q, %q), want (tenant-1, Contoso Ltd)", got.TenantID, got.TenantName)
	}
}

func TestInvoiceResponse_JSONShape(t *testing.T) {
	t.Parallel()

	inv := validInvoice()
	b, err := json.Marshal(dto.ToInvoiceList([]invoice.Invoice{inv}))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	body := string(b)
	if !strings.HasPrefix(body, "[") {
		t.Errorf("body = %s, want bare JSON array", body)
	}
	for _, want := range []string{
		`"invoiceNumber":"2024-001"`,
		`"invoiceDate":"2024-01-15"`,
		`"totalAmount":1250.5`,
		`"tenantId":"tenant-1"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body = %s, missing %s", body, want)
		}
	}
}

func TestToInvoiceList_EmptyIsArray(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToInvoiceList(nil))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("body = %s, want []", b)
	}
}

func TestFromInvoiceResponse(t *testing.T) {
	t.Parallel()

	inv := validInvoice()
	got := dto.FromInvoiceResponse(dto.ToInvoiceResponse(&inv))

	if !got.InvoiceDate.Equal(inv.InvoiceDate) || !got.DueDate.Equal(inv.DueDate) {
		t.Errorf("dates = (%v, %v), want (%v, %v)", got.InvoiceDate, got.DueDate, inv.InvoiceDate, inv.DueDate)
	}
	if !got.TotalAmount.Equal(inv.TotalAmount) {
		t.Errorf("TotalAmount = %s, want %s", got.TotalAmount, inv.TotalAmount)
	}
	if got.Status != invoice.StatusPaid {
		t.Errorf("Status = %q, want %q", got.Status, invoice.StatusPaid)
	}
}

func TestToTenantList(t *testing.T) {
	t.Parallel()

	got := dto.ToTenantList([]tenant.Tenant{
		{ID: "t1", DisplayName: "Contoso Ltd", Domain: "contoso.onmicrosoft.com"},
	})

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	want := `[{"id":"t1","displayName":"Contoso Ltd","domain":"contoso.onmicrosoft.com"}]`
	if string(b) != want {
		t.Errorf("body = %s, want %s", b, want)
	}

	if back := dto.FromTenantResponse(got[0]); back.DisplayName != "Contoso Ltd" {
		t.Errorf("FromTenantResponse().DisplayName = %q, want %q", back.DisplayName, "Contoso Ltd")
	}
}

func TestNewHealthResponse(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 12, 15, 4, 5, 0, time.FixedZone("EST", -5*3600))
	got := dto.NewHealthResponse(now)

	if got.Status != "OK" {
		t.Errorf("Status = %q, want %q", got.Status, "OK")
	}
	if got.Timestamp != "2026-02-12T20:04:05Z" {
		t.Errorf("Timestamp = %q, want %q", got.Timestamp, "2026-02-12T20:04:05Z")
	}
}
