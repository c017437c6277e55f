// Package worker runs the background job pool: a River client with the
// periodic expiry sweep registered on it.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hostadmin/internal/config"
	"hostadmin/internal/registry"
	"hostadmin/pkg/logger"
	"hostadmin/pkg/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap/exp/zapslog"
)

const defaultMaxWorkers = 10

// Options configure the worker pool and the periodic sweep schedule.
type Options struct {
	// WindowDays is the lookahead window each sweep reports over.
	WindowDays int
	// SweepInterval is how often the sweep is scheduled.
	SweepInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		WindowDays:    cfg.Expiry.WindowDays,
		SweepInterval: cfg.Expiry.SweepInterval,
	}
}

// Start creates and starts the River client with the sweep worker registered
// and the periodic sweep scheduled. The returned client must be stopped by
// the caller on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	reg registry.Registry,
	meter metric.Meter,
	options Options) (*river.Client[pgx.Tx], error) {
	gauges, err := metrics.NewExpiryGauges(meter)
	if err != nil {
		return nil, fmt.Errorf("could not create expiry gauges: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewSweepWorker(reg, gauges))

	periodic := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.SweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return registry.SweepJobArgs{WindowDays: options.WindowDays}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: defaultMaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
