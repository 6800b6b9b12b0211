package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sched-sim/api"
	"github.com/inference-sim/sched-sim/sim/telemetry"
)

var serveAddr string // Listen address for the HTTP server

// serveCmd exposes the scheduling engine over HTTP with Prometheus metrics
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scheduling runs over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)
		if cmd.Flags().Changed("addr") {
			cfg.Serve.Addr = serveAddr
		}

		collector := telemetry.NewCollector()
		app := api.NewApp(api.NewSchedulerHandlerImpl(collector, cfg.Workload), collector)

		logrus.Infof("Listening on %s", cfg.Serve.Addr)
		if err := app.Listen(cfg.Serve.Addr); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", DefaultConfig().Serve.Addr, "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}
