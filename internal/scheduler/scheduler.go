package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/deusflow/fieldbrief/internal/logger"
)

// Job is one scheduled unit of work.
type Job func(ctx context.Context) error

// Scheduler runs jobs on cron schedules. A job that is still running when
// its next tick fires is skipped for that tick.
type Scheduler struct {
	base     context.Context
	cron     *cron.Cron
	jobs     map[string]cron.EntryID
	timeout  time.Duration
	timezone *time.Location
}

// New creates a scheduler in the given timezone. Every job run derives its
// context from base and is cancelled after timeout.
func New(base context.Context, timezone string, timeout time.Duration) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", timezone, err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Scheduler{
		base:     base,
		cron:     c,
		jobs:     make(map[string]cron.EntryID),
		timeout:  timeout,
		timezone: loc,
	}, nil
}

// AddJob adds a job with a standard five-field cron schedule, e.g. "0 7 * * *".
func (s *Scheduler) AddJob(name, schedule string, job Job) error {
	entryID, err := s.cron.AddFunc(schedule, func() {
		if err := s.run(name, job); err != nil {
			logger.Error("Scheduled job failed", "job", name, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.jobs[name] = entryID
	logger.Info("Scheduled job", "job", name, "schedule", schedule, "timezone", s.timezone.String())
	return nil
}

// RunNow executes job immediately with the same timeout as scheduled runs.
func (s *Scheduler) RunNow(name string, job Job) error {
	return s.run(name, job)
}

func (s *Scheduler) run(name string, job Job) error {
	ctx, cancel := context.WithTimeout(s.base, s.timeout)
	defer cancel()

	logger.Info("Starting job", "job", name)
	start := time.Now()
	if err := job(ctx); err != nil {
		return err
	}
	logger.Info("Job completed", "job", name, "duration", time.Since(start))
	return nil
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// NextRun reports when the named job fires next.
func (s *Scheduler) NextRun(name string) (time.Time, bool) {
	id, ok := s.jobs[name]
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}
