package registry

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// SweepJobArgs contains the arguments for an expiry sweep job submitted to
// River. The struct doubles as the unique key so at most one sweep exists per
// period.
type SweepJobArgs struct {
	// WindowDays is the lookahead window the sweep reports over.
	WindowDays int `json:"windowDays" river:"unique"`

	// uniquePeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the listed states.
	uniquePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the sweep worker.
func (args SweepJobArgs) Kind() string { return "ExpirySweepJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the uniqueness constraint preventing duplicate sweeps.
func (args SweepJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		// only one sweep per window per period, in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
