package worker

import (
	"context"
	"fmt"
	"time"

	"hostadmin/internal/registry"
	"hostadmin/pkg/logger"
	"hostadmin/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SweepWorker is a River worker that recomputes the expiry report on a
// schedule and publishes the aggregates as gauges. The report itself is not
// persisted; it is cheap to rebuild and the gauges are what dashboards and
// alerts consume.
type SweepWorker struct {
	river.WorkerDefaults[registry.SweepJobArgs]

	registry registry.Registry
	gauges   *metrics.ExpiryGauges
}

// NewSweepWorker constructs a SweepWorker publishing to the given gauges.
func NewSweepWorker(reg registry.Registry, gauges *metrics.ExpiryGauges) *SweepWorker {
	return &SweepWorker{
		registry: reg,
		gauges:   gauges,
	}
}

// Work executes one sweep: build the report over a fresh snapshot, record the
// gauges and log the headline numbers.
func (w *SweepWorker) Work(ctx context.Context, job *river.Job[registry.SweepJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("windowDays", job.Args.WindowDays))

	report, err := w.registry.ExpiryReport(ctx, time.Now(), job.Args.WindowDays)
	if err != nil {
		logger.Error(ctx, "error building expiry report", zap.Error(err))

		return fmt.Errorf("could not build expiry report: %w", err)
	}

	w.gauges.DomainsExpiring.Record(ctx, int64(report.DomainExpiringCount))
	w.gauges.EmailAccountsExpiring.Record(ctx, int64(report.EmailExpiringCount))
	w.gauges.RenewalCostTotal.Record(ctx, report.TotalRenewalCost)

	logger.Info(ctx, "expiry sweep completed",
		zap.Int("domainsExpiring", report.DomainExpiringCount),
		zap.Int("emailAccountsExpiring", report.EmailExpiringCount),
		zap.Float64("totalRenewalCost", report.TotalRenewalCost))

	return nil
}
