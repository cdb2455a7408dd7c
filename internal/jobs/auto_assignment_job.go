package jobs

import (
	"context"
	"errors"
	"log/slog"

	"courierhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// defaultAutoAssignmentSpec runs the assignment pass every 15 seconds so a
// special order does not sit unassigned for long.
const defaultAutoAssignmentSpec = "*/15 * * * * *"

// AutoAssignmentJob periodically hands the oldest unassigned special order to
// the least loaded available courier.
type AutoAssignmentJob struct {
	handler commands.AutoAssignCourierCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewAutoAssignmentJob creates the assignment job. An empty spec falls back
// to the default 15 second schedule.
func NewAutoAssignmentJob(
	handler commands.AutoAssignCourierCommandHandler,
	spec string,
	logger *slog.Logger,
) *AutoAssignmentJob {
	if spec == "" {
		spec = defaultAutoAssignmentSpec
	}

	return &AutoAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With("component", "auto_assignment_job"),
	}
}

// Start schedules the assignment pass.
func (j *AutoAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignCourierCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue and a fully loaded fleet are normal outcomes.
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Auto assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto assignment job started", "spec", j.spec)
	return nil
}

// Stop stops the assignment job.
func (j *AutoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto assignment job stopped")
}
