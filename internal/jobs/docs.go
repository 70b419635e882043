// Package jobs provides scheduled background tasks for the relocation
// marketplace.
//
// Jobs are built on github.com/robfig/cron/v3. The only job today is
// RatingReconciliationJob, which recomputes provider ratings from the stored
// reviews and rewrites the profiles whose aggregate drifted. It is a repair
// path: ratings are already maintained synchronously whenever a review is
// created or revised.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Config{
//		RatingReconcileSchedule: "@every 6h",
//		RatingReconcileTimeout:  time.Minute,
//	}, reconcileHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule leaves the job out, and the process runs no background
// worker at all.
package jobs
