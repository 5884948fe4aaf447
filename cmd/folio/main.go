package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/folio/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	envFiles []string
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.envFiles...)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Portfolio site server with a contact form",
		Long: `folio serves a personal portfolio site and its contact form endpoint.
Submissions to POST /api/contact are validated and forwarded by email
to the site owner through Resend or SMTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil,
		"load environment variables from these files (default: ./.env if present)")

	cmd.AddCommand(
		newServeCmd(opts),
		newPreviewCmd(opts),
	)
	return cmd
}
