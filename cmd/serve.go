package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/dashviz/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve render plans and page rendering over HTTP.",
	Long: `Start an HTTP server with these routes:
  POST /api/plan     plan inline attribute data (JSON)
  POST /api/render   rewrite an HTML page
  GET  /api/labels   derive radar labels for ?key=...
  GET  /healthz      liveness
  GET  /metrics      Prometheus metrics

Examples:
  dashviz serve --addr :9090 --cors-origins https://dashboard.example.com`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(cfg, logger).Run(ctx)
	},
}
