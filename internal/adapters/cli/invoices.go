package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-viewer/internal/viewer"
)

func newInvoicesCmd(g *globals) *cobra.Command {
	var raw dto.RawFilter

	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Search invoices",
		Long: "Search invoices by tenant, date range, amount range and invoice number. " +
			"Unparseable dates and amounts are ignored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := g.session(cmd)
			ctx := cmd.Context()

			c := viewer.New(s.api, viewer.WithLogger(s.logger))

			// Selections made before Mount are picked up by its single fetch.
			filter := dto.ParseFilter(raw)
			if err := c.SelectTenant(ctx, filter.TenantID); err != nil {
				return err
			}
			if err := c.SetFilters(ctx, filter); err != nil {
				return err
			}
			if err := c.Mount(ctx); err != nil {
				return fmt.Errorf("%s: %w", c.State().Err, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), RenderInvoices(c.State().Invoices))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&raw.Tenant, "tenant", "all", "tenant ID, or all")
	flags.StringVar(&raw.DateFrom, "from", "", "earliest invoice date (YYYY-MM-DD)")
	flags.StringVar(&raw.DateTo, "to", "", "latest invoice date (YYYY-MM-DD)")
	flags.StringVar(&raw.MinAmount, "min", "", "minimum total amount")
	flags.StringVar(&raw.MaxAmount, "max", "", "maximum total amount")
	flags.StringVar(&raw.InvoiceNumber, "number", "", "invoice number substring")
	return cmd
}
