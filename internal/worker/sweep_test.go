package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"

	"hostadmin/internal/expiry"
	"hostadmin/internal/registry"
	mockregistry "hostadmin/internal/registry/mock"
	"hostadmin/internal/worker"
	"hostadmin/pkg/logger"
	"hostadmin/pkg/metrics"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, windowDays int) *river.Job[registry.SweepJobArgs] {
	return &river.Job[registry.SweepJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   registry.SweepJobArgs{WindowDays: windowDays},
	}
}

func newTestSweepWorker(t *testing.T) (*mockregistry.MockRegistry, *worker.SweepWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reg := mockregistry.NewMockRegistry(ctrl)

	gauges, err := metrics.NewExpiryGauges(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	return reg, worker.NewSweepWorker(reg, gauges)
}

func TestSweepWorker_Work_Success(t *testing.T) {
	reg, w := newTestSweepWorker(t)

	report := &expiry.Report{
		WindowDays:          30,
		DomainExpiringCount: 2,
		EmailExpiringCount:  1,
		TotalRenewalCost:    150,
	}
	reg.EXPECT().ExpiryReport(gomock.Any(), gomock.Any(), 30).
		DoAndReturn(func(_ context.Context, today time.Time, _ int) (*expiry.Report, error) {
			require.WithinDuration(t, time.Now(), today, time.Minute)

			return report, nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(1, 30)))
}

func TestSweepWorker_Work_ReportError(t *testing.T) {
	reg, w := newTestSweepWorker(t)

	reg.EXPECT().ExpiryReport(gomock.Any(), gomock.Any(), 30).Return(nil, errors.New("boom"))

	err := w.Work(context.Background(), makeJob(2, 30))
	require.Error(t, err)
}

func TestSweepJobArgs_Kind(t *testing.T) {
	require.Equal(t, "ExpirySweepJob", registry.SweepJobArgs{}.Kind())
}

func TestSweepJobArgs_UniqueByArgs(t *testing.T) {
	opts := registry.SweepJobArgs{WindowDays: 30}.InsertOpts()
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Contains(t, opts.UniqueOpts.ByState, rivertype.JobStateRunning)
}
