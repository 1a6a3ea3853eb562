// Package jobs provides scheduled background tasks for the order services.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds)
// and are started and stopped together through JobManager:
//
//	jobManager := jobs.NewJobManager(backlogHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// OrderBacklogJob logs how many orders of each channel are not yet completed.
// It only reads; a failed run is logged and the next tick tries again.
package jobs
