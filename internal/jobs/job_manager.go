package jobs

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Config selects which jobs run. An empty schedule disables its job.
type Config struct {
	RatingReconcileSchedule string
	RatingReconcileTimeout  time.Duration
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
	logger  zerolog.Logger
}

type namedJob struct {
	name string
	job  job
}

// NewJobManager creates a job manager with the jobs enabled in cfg.
func NewJobManager(cfg Config, reconciler RatingReconciler, logger zerolog.Logger) *JobManager {
	jm := &JobManager{logger: logger}
	if cfg.RatingReconcileSchedule != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "rating reconciliation",
			job:  NewRatingReconciliationJob(reconciler, cfg.RatingReconcileSchedule, cfg.RatingReconcileTimeout, logger),
		})
	}
	return jm
}

// Enabled reports how many jobs are configured.
func (jm *JobManager) Enabled() int {
	return len(jm.jobs)
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		jm.started = append(jm.started, nj)
	}

	if len(jm.jobs) == 0 {
		jm.logger.Info().Msg("no background jobs configured")
	}
	return nil
}

// StopAll stops all started jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}
