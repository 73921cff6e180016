// Package cli is the inbound terminal adapter: cobra commands that drive the
// viewer controller against a running invoice viewer server.
package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/clients/invoiceapi"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/config"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/httpclient"
	"github.com/jsamuelsen11/invoice-viewer/internal/platform/logging"
	"github.com/jsamuelsen11/invoice-viewer/internal/viewer"
)

// Environment variables read by the CLI.
const (
	EnvServer = "INVOICECTL_SERVER"
	EnvToken  = "INVOICECTL_TOKEN"
)

const defaultServer = "http://localhost:3001"

var version = "dev"

// globals holds the persistent flags shared by every command.
type globals struct {
	server    string
	tokenFile string
	logLevel  string
	noPrompt  bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:           "invoicectl",
		Short:         "Browse and download tenant invoices",
		Long:          "invoicectl talks to an invoice viewer server to list tenants, search invoices and save invoice PDFs.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv(EnvServer)
	if server == "" {
		server = defaultServer
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.server, "server", server, "invoice viewer base URL (env "+EnvServer+")")
	flags.StringVar(&g.tokenFile, "token-file", defaultTokenFile(), "file caching the access token")
	flags.StringVar(&g.logLevel, "log-level", "warn", "log level for diagnostics on stderr")
	flags.BoolVar(&g.noPrompt, "no-prompt", false, "never prompt for a token")

	cmd.AddCommand(newTenantsCmd(g))
	cmd.AddCommand(newInvoicesCmd(g))
	cmd.AddCommand(newDownloadCmd(g))
	cmd.AddCommand(newBrowseCmd(g))
	return cmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// session bundles what a command needs to talk to the server.
type session struct {
	api    *invoiceapi.Client
	logger *slog.Logger
}

func (g *globals) session(cmd *cobra.Command) *session {
	logger := logging.New(g.logLevel, "text", cmd.ErrOrStderr())

	tokens := &viewer.CachedToken{Source: g.tokenChain(cmd.ErrOrStderr()), Path: g.tokenFile}
	cfg := config.NewClientConfig(g.server)
	client := httpclient.New(&cfg, invoiceapi.ServiceName, nil, logger)

	return &session{
		api:    invoiceapi.New(client, tokens, logger),
		logger: logger,
	}
}

// tokenChain tries the environment and the cached token file silently, then
// falls back to an interactive prompt.
func (g *globals) tokenChain(prompt io.Writer) viewer.TokenSource {
	chain := viewer.ChainToken{
		viewer.EnvToken{Name: EnvToken},
		viewer.FileToken{Path: g.tokenFile},
	}
	if !g.noPrompt {
		chain = append(chain, viewer.PromptToken{In: os.Stdin, Out: prompt})
	}
	return chain
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "invoicectl", "token")
}
