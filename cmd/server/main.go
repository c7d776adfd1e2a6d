package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openmined/skeleton-api/internal/server"
	"github.com/openmined/skeleton-api/internal/version"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "skeleton-api",
		Short:        "Skeleton API server",
		Version:      version.Detailed(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(os.Stdout, cfg.LogLevel)
			if err != nil {
				return err
			}

			srv, err := server.New(cfg.Server, logger)
			if err != nil {
				return err
			}

			defer logger.Info("Bye!")
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().String("host", "", "Interface to bind, empty for all")
	cmd.Flags().IntP("port", "p", server.DefaultPort, "Port to listen on")
	cmd.Flags().String("cors-origin", server.DefaultCORSOrigin, "Allowed CORS origin, '*' for any")
	cmd.Flags().String("static-dir", server.DefaultStaticDir, "Directory served at /")
	cmd.Flags().String("log-level", defaultLogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringP("config", "c", "", "Config file (json, yaml or toml)")
	cmd.PersistentFlags().String("env-file", defaultEnvFile, "Dotenv file loaded before reading the environment")

	cmd.AddCommand(newHealthcheckCmd())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
