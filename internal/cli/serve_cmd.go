package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hoikuplan/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var maxBody int64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog, forms, export and suggestions over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := loggerFromContext(ctx).WithPrefix("http")
			srv := httpapi.NewServer(app.Catalog, app.Forms, app.Exports, app.Suggestions,
				httpapi.WithLogger(logger),
				httpapi.WithMaxBodyBytes(maxBody),
			)
			logger.Debug("suggestion model", "available", app.Suggestions != nil && app.Suggestions.Available(ctx))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", 1<<20, "maximum request body in bytes")

	return cmd
}
