package scheduler

import (
	"context"
	"fmt"
	"time"

	"video-library/shared/logging"
	"video-library/shared/monitoring"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Metrics defines the common interface for job results
type Metrics interface {
	// GetSummary returns a human-readable summary of the run
	GetSummary() string
}

// Job is a unit of periodic background work.
type Job interface {
	Name() string
	RunOnce(ctx context.Context) (Metrics, error)
}

// Scheduler runs a single job on a cron schedule and reports each run to a
// Monitor.
type Scheduler struct {
	schedule string
	monitor  *monitoring.Monitor
	job      Job
	cron     *cron.Cron
	log      zerolog.Logger
}

func New(schedule string, monitor *monitoring.Monitor, job Job) *Scheduler {
	return &Scheduler{
		schedule: schedule,
		monitor:  monitor,
		job:      job,
		// Prevent overlapping runs
		cron: cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		log:  logging.WithComponent("scheduler"),
	}
}

// Start registers the job and blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunOnce(ctx); err != nil {
			s.log.Error().Err(err).Str("job", s.job.Name()).Msg("scheduled run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.log.Info().Str("job", s.job.Name()).Str("schedule", s.schedule).Msg("scheduler started")
	s.cron.Start()

	<-ctx.Done()
	s.log.Info().Str("job", s.job.Name()).Msg("scheduler stopped")
	<-s.cron.Stop().Done()
	return ctx.Err()
}

func (s *Scheduler) RunOnce(ctx context.Context) error {
	startTime := time.Now()
	name := s.job.Name()

	s.log.Debug().Str("job", name).Msg("starting run")

	metrics, err := s.job.RunOnce(ctx)
	duration := time.Since(startTime)
	if err != nil {
		s.monitor.RecordCriticalFailure(fmt.Errorf("%s failed: %w", name, err), duration)
		return fmt.Errorf("%s run failed: %w", name, err)
	}

	s.monitor.RecordSuccess(metrics.GetSummary(), duration)
	return nil
}
