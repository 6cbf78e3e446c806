package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/erca/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := app.logger()
			handler := api.NewRouter(app.Plans, app.Catalogs, logger)
			return api.Serve(ctx, addr, handler, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.HTTPAddr, "Listen address (default from ERCA_HTTP_ADDR)")
	return cmd
}
