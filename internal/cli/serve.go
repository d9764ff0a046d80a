package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitconv/internal/format"
	"github.com/mesh-intelligence/unitconv/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter page and JSON API",
		Long: `Serve the converter page and a JSON API over HTTP.

Endpoints:
  GET /                                  converter page
  GET /api/categories                    category names
  GET /api/categories/{category}/units   unit names of a category
  GET /api/convert?category=&from=&to=&value=
  GET /healthz

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default: config listen)")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, listen string) error {
	if listen == "" {
		listen = a.cfg.Listen
	}
	formatter, err := format.New(a.cfg.Style, a.cfg.Precision)
	if err != nil {
		return userError(err)
	}

	srv, err := server.New(a.catalog, server.Options{
		DefaultCategory: a.cfg.DefaultCategory,
		Formatter:       formatter,
		Logger:          a.log,
	})
	if err != nil {
		return userError(err)
	}

	ctx, stop := signal.NotifyContext(serveContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, listen); err != nil {
		return sysError(err)
	}
	return nil
}

func serveContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
