package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"hostadmin/internal/api"
	"hostadmin/internal/api/handler/v1handler"
	"hostadmin/internal/config"
	"hostadmin/internal/registry"
	"hostadmin/internal/worker"
	"hostadmin/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// serveCommand constructs the 'serve' subcommand that starts the API server
// and the background worker pool, and blocks until interrupted.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reg := registry.New(strg, registry.NewOptions(cfg))

			// otel metrics bridged into the prometheus registry served at MetricsPath
			exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
			if err != nil {
				logger.Fatal(ctx, "could not create otel exporter", zap.Error(err))
			}
			meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

			server, err := api.NewServer(api.Deps{
				Deps: v1handler.Deps{Registry: reg},
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			go func() {
				logger.Info(ctx, "starting webserver...")
				if err := server.ListenAndServe(); err != nil {
					if !errors.Is(err, http.ErrServerClosed) {
						logger.Error(ctx, "could not start webserver", zap.Error(err))
					}
				}
			}()

			riverClient, err := worker.Start(ctx, strg.Pool, reg,
				meterProvider.Meter("hostadmin/worker"), worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping webserver...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop webserver", zap.Error(err))
			}

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
