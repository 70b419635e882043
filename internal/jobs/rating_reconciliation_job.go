package jobs

import (
	"context"
	"time"

	"relocation/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// RatingReconciler is the use case the job drives.
type RatingReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileProviderRatingsCommand) (int, error)
}

// RatingReconciliationJob periodically recomputes every provider's rating
// from its reviews and rewrites the profiles that drifted.
type RatingReconciliationJob struct {
	handler  RatingReconciler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   zerolog.Logger
}

// NewRatingReconciliationJob creates the job. schedule is a standard cron
// expression or a descriptor such as "@every 1h".
func NewRatingReconciliationJob(
	handler RatingReconciler,
	schedule string,
	timeout time.Duration,
	logger zerolog.Logger,
) *RatingReconciliationJob {
	return &RatingReconciliationJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With().Str("component", "rating_reconciliation_job").Logger(),
	}
}

// Start registers the schedule and starts the scheduler.
func (j *RatingReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("rating reconciliation job started")
	return nil
}

// Stop stops the scheduler and waits for a running reconciliation to finish.
func (j *RatingReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("rating reconciliation job stopped")
}

func (j *RatingReconciliationJob) run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	started := time.Now()
	updated, err := j.handler.Handle(ctx, commands.NewReconcileProviderRatingsCommand())
	if err != nil {
		j.logger.Error().Err(err).Msg("rating reconciliation failed")
		return
	}

	j.logger.Info().
		Int("updated", updated).
		Dur("took", time.Since(started)).
		Msg("rating reconciliation finished")
}
