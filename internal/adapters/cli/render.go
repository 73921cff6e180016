package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/invoice"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
	"github.com/jsamuelsen11/invoice-viewer/internal/viewer"
)

var (
	accent  = lipgloss.Color("#2563EB") // blue
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	okStyle     = lipgloss.NewStyle().Foreground(success)
	errStyle    = lipgloss.NewStyle().Foreground(danger).Bold(true)

	statusStyles = map[invoice.Status]lipgloss.Style{
		invoice.StatusPaid:    cellStyle.Foreground(success),
		invoice.StatusPending: cellStyle.Foreground(warning),
		invoice.StatusOverdue: cellStyle.Foreground(danger),
	}
)

// invoice table columns.
const (
	colNumber = iota
	colDate
	colDue
	colAmount
	colStatus
	colTenant
	colID
)

// RenderTenants draws tenants as a table.
func RenderTenants(tenants []tenant.Tenant) string {
	if len(tenants) == 0 {
		return dimStyle.Render("No tenants.")
	}

	rows := make([][]string, len(tenants))
	for i, t := range tenants {
		rows[i] = []string{t.ID, t.DisplayName, t.Domain}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("ID", "NAME", "DOMAIN").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

// RenderInvoices draws invoices as a table in the given order.
func RenderInvoices(invoices []invoice.Invoice) string {
	if len(invoices) == 0 {
		return dimStyle.Render("No invoices match the current filters.")
	}

	rows := make([][]string, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		rows[i] = []string{
			inv.Number,
			formatDate(inv),
			dueDate(inv),
			inv.TotalAmount.StringFixed(2) + " " + inv.Currency,
			inv.Status.String(),
			inv.TenantName,
			inv.ID,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("NUMBER", "DATE", "DUE", "TOTAL", "STATUS", "TENANT", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == colAmount:
				return amountStyle
			case col == colStatus:
				if st, ok := statusStyles[invoices[row].Status]; ok {
					return st
				}
			case col == colID:
				return cellStyle.Foreground(dim)
			}
			return cellStyle
		}).
		Render()
}

// RenderState draws a full controller snapshot for the interactive session.
func RenderState(s viewer.State) string {
	var b strings.Builder

	scope := s.SelectedTenant
	for _, t := range s.Tenants {
		if t.ID == s.SelectedTenant {
			scope = t.DisplayName
		}
	}
	b.WriteString(headerStyle.UnsetPadding().Render("Tenant: " + scope))
	if desc := describeFilters(s.Filters); desc != "" {
		b.WriteString(dimStyle.Render("  filters: " + desc))
	}
	b.WriteString("\n")

	switch {
	case s.Err != "":
		b.WriteString(errStyle.Render(s.Err))
		b.WriteString(dimStyle.Render("  (type 'refresh' to retry)"))
	case s.Loading:
		b.WriteString(dimStyle.Render("Loading invoices..."))
	default:
		b.WriteString(RenderInvoices(s.Invoices))
	}
	return b.String()
}

func describeFilters(f invoice.Filter) string {
	var parts []string
	if f.DateFrom != nil {
		parts = append(parts, "from="+f.DateFrom.Format(invoice.DateLayout))
	}
	if f.DateTo != nil {
		parts = append(parts, "to="+f.DateTo.Format(invoice.DateLayout))
	}
	if f.MinAmount != nil {
		parts = append(parts, "min="+f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		parts = append(parts, "max="+f.MaxAmount.String())
	}
	if f.InvoiceNumber != "" {
		parts = append(parts, "number="+f.InvoiceNumber)
	}
	return strings.Join(parts, " ")
}

func formatDate(inv *invoice.Invoice) string {
	return inv.InvoiceDate.Format(invoice.DateLayout)
}

func dueDate(inv *invoice.Invoice) string {
	if inv.DueDate.IsZero() {
		return "-"
	}
	return inv.DueDate.Format(invoice.DateLayout)
}
