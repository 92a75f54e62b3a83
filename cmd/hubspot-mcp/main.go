// Command hubspot-mcp serves HubSpot CRM tools over the Model Context
// Protocol, either as an HTTP server or on stdio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/johnwards/hubspot-mcp/internal/config"
	"github.com/johnwards/hubspot-mcp/internal/server"
)

// version is overridden at build time with -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hubspot-mcp",
		Short:         "HubSpot CRM tools over the Model Context Protocol",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), stdioCmd(), versionCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over HTTP with per-request credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()
			return server.New(cfg, log, version).ListenAndServe(ctx)
		},
	}
}

func stdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP on stdin/stdout using credentials from the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()
			return server.New(cfg, log, version).RunStdio(ctx)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	// Logs go to stderr so the stdio transport keeps stdout to itself.
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	return cfg, log, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
