package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/paybridge/internal/config"
	"github.com/agentstation/paybridge/internal/directory/mssql"
	"github.com/agentstation/paybridge/internal/server"
	"github.com/agentstation/paybridge/pkg/logging"
	"github.com/agentstation/paybridge/pkg/pipeline"
)

var serveAddr string

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the paybridge HTTP API",
	Long: `Serve starts the HTTP API that accepts payroll file uploads, runs them
through the configured integration pipeline, and validates the results
against the employee directory.`,
	Example: `  paybridge serve
  paybridge serve --addr :9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cobraCmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	stages, err := pipeline.LoadConfig(cfg.StageConfigPath)
	if err != nil {
		return fmt.Errorf("loading stage config: %w", err)
	}

	client, err := mssql.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening directory database: %w", err)
	}
	defer func() { _ = client.Close() }()

	logger := logging.Default()
	serverCfg := server.DefaultConfig()
	serverCfg.Addr = cfg.ListenAddr

	logger.Info().
		Str("addr", serverCfg.Addr).
		Str("stage_config", cfg.StageConfigPath).
		Str("directory", cfg.Database.Masked()).
		Msg("Starting paybridge API")

	srv := server.New(stages, client, logger, serverCfg)
	return srv.ListenAndServe(cobraCmd.Context())
}
