// Command biospeak-server serves BioSpeak sessions over HTTP.
//
// Usage:
//
//	biospeak-server serve [--addr :8080] [--config biospeak.yaml]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aria-lang/biospeak-go/api"
	"github.com/aria-lang/biospeak-go/api/handlers"
	"github.com/aria-lang/biospeak-go/internal/config"
	"github.com/aria-lang/biospeak-go/internal/logging"
	"github.com/aria-lang/biospeak-go/internal/metrics"
	"github.com/aria-lang/biospeak-go/pkg/biospeak"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "biospeak-server",
		Short:         "HTTP sessions for BioSpeak",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			logger, err := logging.New(cfg.Log, verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.Default().Server.Addr, "address to listen on")
	cmd.Flags().StringVar(&configPath, "config", "", "config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	m := metrics.New()
	sessions := handlers.NewSessions(func() *biospeak.Engine {
		return biospeak.NewEngine(biospeak.Options{
			Config:   cfg,
			Logger:   logger.Named("engine"),
			Observer: m,
		})
	},
		handlers.WithMaxSessions(cfg.Server.MaxSessions),
		handlers.WithHooks(m),
		handlers.WithLogger(logger.Named("sessions")),
	)

	router := api.NewRouter(api.RouterConfig{
		Sessions:       sessions,
		Metrics:        m.Handler(),
		Logger:         logger.Named("http"),
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	return api.NewServer(cfg.Server, router, logger).Run(ctx)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
