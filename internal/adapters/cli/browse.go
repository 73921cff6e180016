package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-viewer/internal/viewer"
)

const browseHelp = `commands:
  tenant <id|all>          select a tenant
  filter key=value ...     set filters (from, to, min, max, number)
  clear                    remove all filters
  refresh                  fetch invoices again
  download <id> [dir]      save an invoice PDF
  tenants                  list tenants
  help                     show this help
  quit                     leave`

func newBrowseCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse invoices interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := g.session(cmd)
			b := &browser{out: cmd.OutOrStdout()}
			b.ctrl = viewer.New(s.api,
				viewer.WithLogger(s.logger),
				viewer.WithSubscriber(b.render),
			)
			return b.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// browser is a line-oriented session over a viewer.Controller.
type browser struct {
	ctrl *viewer.Controller
	out  io.Writer
}

// render prints settled states. Loading transitions are skipped so each
// command produces one table.
func (b *browser) render(s viewer.State) {
	if s.Loading && s.Err == "" {
		return
	}
	fmt.Fprintln(b.out, RenderState(s))
}

func (b *browser) run(ctx context.Context, in io.Reader) error {
	// Mount failures are already rendered; the session stays usable.
	_ = b.ctrl.Mount(ctx)
	fmt.Fprintln(b.out, dimStyle.Render("type 'help' for commands"))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(b.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(b.out)
			return scanner.Err()
		}

		quit, err := b.exec(ctx, strings.Fields(scanner.Text()))
		if quit {
			return nil
		}
		if err != nil && !errors.Is(err, viewer.ErrStale) {
			fmt.Fprintln(b.out, errStyle.Render(err.Error()))
		}
	}
}

// exec runs one command line. It reports whether the session should end.
func (b *browser) exec(ctx context.Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(b.out, browseHelp)
	case "tenants":
		fmt.Fprintln(b.out, RenderTenants(b.ctrl.State().Tenants))
	case "tenant":
		if len(args) != 2 {
			return false, errors.New("usage: tenant <id|all>")
		}
		return false, b.selectTenant(ctx, args[1])
	case "filter":
		raw, err := parseFilterArgs(args[1:])
		if err != nil {
			return false, err
		}
		return false, b.ctrl.SetFilters(ctx, dto.ParseFilter(raw))
	case "clear":
		return false, b.ctrl.SetFilters(ctx, dto.ParseFilter(dto.RawFilter{}))
	case "refresh":
		return false, b.ctrl.Refresh(ctx)
	case "download":
		if len(args) < 2 || len(args) > 3 {
			return false, errors.New("usage: download <id> [dir]")
		}
		dir := "."
		if len(args) == 3 {
			dir = args[2]
		}
		path, err := b.ctrl.Download(ctx, args[1], dir)
		if err != nil {
			return false, fmt.Errorf("%s (%w)", viewer.MsgDownloadInvoice, err)
		}
		fmt.Fprintln(b.out, okStyle.Render("saved "+path))
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", args[0])
	}
	return false, nil
}

func (b *browser) selectTenant(ctx context.Context, id string) error {
	if id != "all" {
		known := false
		for _, t := range b.ctrl.State().Tenants {
			if t.ID == id {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown tenant %q", id)
		}
	}
	return b.ctrl.SelectTenant(ctx, dto.ParseFilter(dto.RawFilter{Tenant: id}).TenantID)
}

// parseFilterArgs reads key=value pairs. Values are left raw so that the
// same leniency as the HTTP query applies.
func parseFilterArgs(args []string) (dto.RawFilter, error) {
	var raw dto.RawFilter
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return raw, fmt.Errorf("filter %q: want key=value", arg)
		}
		switch key {
		case "from":
			raw.DateFrom = value
		case "to":
			raw.DateTo = value
		case "min":
			raw.MinAmount = value
		case "max":
			raw.MaxAmount = value
		case "number":
			raw.InvoiceNumber = value
		default:
			return raw, fmt.Errorf("unknown filter %q", key)
		}
	}
	return raw, nil
}
