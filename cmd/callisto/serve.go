package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/server"
	"mercator-hq/callisto/pkg/store"
	"mercator-hq/callisto/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Callisto HTTP API server",
	Long: `Start the Callisto HTTP API server with the specified configuration.

The server accepts feature model uploads, analyzes them, and validates
feature selections against uploaded models. Analysis runs are recorded in
the history database when the store is enabled.

Examples:
  # Start with default config
  callisto serve

  # Start with custom config
  callisto serve --config /etc/callisto/config.yaml

  # Override listen address
  callisto serve --listen 0.0.0.0:8080

  # Validate config without starting server
  callisto serve --dry-run`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply flag overrides
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	if serveFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	logger.Info("starting callisto",
		"version", Version,
		"listen_address", cfg.Server.ListenAddress,
		"max_products", cfg.Analysis.MaxProducts)

	collector := metrics.NewCollector(cfg.Telemetry.Metrics, prometheus.NewRegistry())

	ctx := cli.SetupSignalHandler()

	var st *store.Store
	if cfg.Store.Enabled {
		st, err = store.Open(cfg.Store)
		if err != nil {
			return cli.NewCommandError("serve", err)
		}
		defer st.Close()

		scheduler := store.NewScheduler(st, cfg.Store)
		if err := scheduler.Start(ctx); err != nil {
			return cli.NewCommandError("serve", err)
		}
		defer scheduler.Stop()
	}

	srv := server.New(cfg, collector, st, logger)
	if err := srv.Run(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}

	logger.Info("callisto stopped")
	return nil
}
