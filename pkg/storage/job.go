package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs
// (the expiry sweep). The args parameter carries the job payload and opts can
// customize insertion behavior (queue name, delay, priority). The boolean
// result reports whether a job was actually inserted; false means a unique
// job for the same arguments already exists.
//
// Implementations should be atomic with respect to any surrounding
// transaction when the backend supports it.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
