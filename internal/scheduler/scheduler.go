package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// misfireGrace is how late a tick may fire and still count as today's run.
// Anything later waits for the next scheduled time.
const misfireGrace = 5 * time.Minute

// Job is the work the scheduler fires once per day.
type Job func(ctx context.Context)

// Scheduler fires a job daily at a fixed UTC hour and minute. Only one run
// is ever in flight; a tick arriving while the previous run is still going
// is skipped.
type Scheduler struct {
	hour     int
	minute   int
	job      Job
	inFlight atomic.Bool
	now      func() time.Time
}

func New(hour, minute int, job Job) *Scheduler {
	return &Scheduler{
		hour:   hour,
		minute: minute,
		job:    job,
		now:    time.Now,
	}
}

// NextRun returns the next scheduled fire time strictly after now, in UTC.
// A scheduled time within the misfire grace window counts as still pending,
// so a process restarted moments after the boundary does not lose the day.
func NextRun(now time.Time, hour, minute int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)

	if now.Before(next) {
		return next
	}
	if now.Sub(next) <= misfireGrace {
		return next
	}
	return next.Add(24 * time.Hour)
}

// Run blocks, firing the job at each scheduled time until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	next := NextRun(s.now(), s.hour, s.minute)

	for {
		wait := next.Sub(s.now())
		if wait < 0 {
			wait = 0
		}

		slog.Info("next ingestion run scheduled", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("scheduler stopped")
			return
		case <-timer.C:
			go s.fire(ctx)
			next = next.Add(24 * time.Hour)
		}
	}
}

// fire runs the job unless a previous run is still in flight. Runs that
// outlast a full day cost the overlapping tick, not a queued second run.
func (s *Scheduler) fire(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		slog.Warn("previous ingestion run still in flight, skipping tick")
		return
	}
	defer s.inFlight.Store(false)

	start := s.now()
	s.job(ctx)
	slog.Info("ingestion run finished", "duration", s.now().Sub(start).String())
}
