package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/invoice-viewer/internal/viewer"
)

func newDownloadCmd(g *globals) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download <invoice-id>",
		Short: "Save an invoice PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := g.session(cmd)

			c := viewer.New(s.api, viewer.WithLogger(s.logger))
			path, err := c.Download(cmd.Context(), args[0], dir)
			if err != nil {
				return fmt.Errorf("%s: %w", viewer.MsgDownloadInvoice, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("saved "+path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "destination directory")
	return cmd
}
