package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/editsession"
)

// EditSessionJobs sweeps edit sessions whose screens went away without
// calling Close. A session untouched for the TTL is considered abandoned.
type EditSessionJobs struct {
	store editsession.Store
	ttl   time.Duration
}

func NewEditSessionJobs(store editsession.Store, ttl time.Duration) *EditSessionJobs {
	return &EditSessionJobs{store: store, ttl: ttl}
}

// RegisterJobs registers the sweep on the scheduler.
func (j *EditSessionJobs) RegisterJobs(scheduler *Scheduler, sweepInterval time.Duration) {
	scheduler.AddJob("sweep_stale_edit_sessions", sweepInterval, j.SweepStale)
}

// SweepStale drops sessions untouched for longer than the TTL.
func (j *EditSessionJobs) SweepStale(ctx context.Context) error {
	dropped, err := j.store.DeleteStale(ctx, time.Now().Add(-j.ttl))
	if err != nil {
		return err
	}
	if dropped > 0 {
		slog.Info("Swept stale edit sessions", "count", dropped)
	}
	return nil
}
