package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTenantsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tenants",
		Short: "List tenants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := g.session(cmd)

			tenants, err := s.api.ListTenants(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing tenants: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), RenderTenants(tenants))
			return nil
		},
	}
}
