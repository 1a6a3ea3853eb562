package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderBacklogJob *OrderBacklogJob
}

func NewJobManager(backlogHandler BacklogReader, backlogSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderBacklogJob: NewOrderBacklogJob(backlogHandler, backlogSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
}
