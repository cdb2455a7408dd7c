package jobs

import (
	"fmt"
	"log/slog"

	"courierhub/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoAssignmentJob *AutoAssignmentJob
	autoConfirmJob    *AutoConfirmJob
}

// JobSchedules carries the cron specs for the background jobs. Empty fields
// fall back to the per-job defaults.
type JobSchedules struct {
	AutoAssignment string
	AutoConfirm    string
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	autoAssignHandler commands.AutoAssignCourierCommandHandler,
	autoConfirmHandler commands.AutoConfirmOrdersCommandHandler,
	schedules JobSchedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoAssignmentJob: NewAutoAssignmentJob(autoAssignHandler, schedules.AutoAssignment, logger),
		autoConfirmJob:    NewAutoConfirmJob(autoConfirmHandler, schedules.AutoConfirm, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto assignment job: %w", err)
	}

	if err := jm.autoConfirmJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.autoAssignmentJob.Stop()
		return fmt.Errorf("failed to start auto confirm job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoConfirmJob.Stop()
	jm.autoAssignmentJob.Stop()
}
