package jobs

import (
	"context"
	"log/slog"

	"courierhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// defaultAutoConfirmSpec sweeps every five minutes. The confirmation window
// is measured in hours, so a finer schedule buys nothing.
const defaultAutoConfirmSpec = "0 */5 * * * *"

// AutoConfirmJob periodically completes delivered orders whose confirmation
// window has lapsed without a manual confirmation or a dispute.
type AutoConfirmJob struct {
	handler commands.AutoConfirmOrdersCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewAutoConfirmJob creates the sweep job. An empty spec falls back to the
// default five minute schedule.
func NewAutoConfirmJob(
	handler commands.AutoConfirmOrdersCommandHandler,
	spec string,
	logger *slog.Logger,
) *AutoConfirmJob {
	if spec == "" {
		spec = defaultAutoConfirmSpec
	}

	return &AutoConfirmJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With("component", "auto_confirm_job"),
	}
}

// Start schedules the sweep.
func (j *AutoConfirmJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewAutoConfirmOrdersCommand()

		confirmed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto confirm sweep failed", "error", err)
			return
		}

		if confirmed > 0 {
			j.logger.InfoContext(ctx, "Auto confirmed expired orders", "count", confirmed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto confirm job started", "spec", j.spec)
	return nil
}

// Stop stops the sweep job.
func (j *AutoConfirmJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto confirm job stopped")
}
