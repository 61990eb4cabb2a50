package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/toolvault/catalog-api/internal/api/metrics"
	"github.com/toolvault/catalog-api/internal/core/ports"
)

const jobTimeout = 5 * time.Minute

// Job names as they appear in logs, metrics, and lock keys.
const (
	jobPurgeExpired  = "purge_expired"
	jobRemindPending = "remind_pending"
)

// Locker coordinates a job run across replicas. Acquire returns true when
// this process should run the job.
type Locker interface {
	Acquire(ctx context.Context, job string, now time.Time) (bool, error)
}

// Scheduler drives the time-based proposal lifecycle: nightly purge of
// expired proposals and morning reminders for pending ones.
type Scheduler struct {
	cron      *cron.Cron
	proposals ports.ProposalService
	lock      Locker
	log       zerolog.Logger
}

func New(proposals ports.ProposalService, lock Locker, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		proposals: proposals,
		lock:      lock,
		log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers both jobs and launches the cron loop. Specs use the
// standard 5-field cron format.
func (s *Scheduler) Start(purgeSpec, remindSpec string) error {
	if _, err := s.cron.AddFunc(purgeSpec, func() {
		s.runJob(jobPurgeExpired, s.proposals.PurgeExpired)
	}); err != nil {
		return fmt.Errorf("schedule %s: %w", jobPurgeExpired, err)
	}

	if _, err := s.cron.AddFunc(remindSpec, func() {
		s.runJob(jobRemindPending, s.proposals.RemindPending)
	}); err != nil {
		return fmt.Errorf("schedule %s: %w", jobRemindPending, err)
	}

	s.cron.Start()
	s.log.Info().Str("purge", purgeSpec).Str("remind", remindSpec).Msg("scheduler started")
	return nil
}

// Stop halts the cron loop and returns a context that completes once any
// in-flight job finishes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// runJob wraps one job execution with the cross-replica lock, metrics, and
// panic containment. A lock acquisition failure is logged but does not stop
// the run: a missed purge is worse than a doubled one, since both jobs are
// idempotent.
func (s *Scheduler) runJob(name string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("job", name).Msg("job panicked")
			metrics.SchedulerRunsTotal.WithLabelValues(name, "error").Inc()
		}
	}()

	if s.lock != nil {
		ok, err := s.lock.Acquire(ctx, name, time.Now())
		if err != nil {
			s.log.Warn().Err(err).Str("job", name).Msg("job lock unavailable, running anyway")
		} else if !ok {
			s.log.Debug().Str("job", name).Msg("job claimed by another replica")
			metrics.SchedulerRunsTotal.WithLabelValues(name, "skipped").Inc()
			return
		}
	}

	timer := prometheus.NewTimer(metrics.SchedulerRunDuration.WithLabelValues(name))
	defer timer.ObserveDuration()

	if err := fn(ctx); err != nil {
		s.log.Error().Err(err).Str("job", name).Msg("job failed")
		metrics.SchedulerRunsTotal.WithLabelValues(name, "error").Inc()
		return
	}

	s.log.Info().Str("job", name).Msg("job completed")
	metrics.SchedulerRunsTotal.WithLabelValues(name, "ok").Inc()
}
