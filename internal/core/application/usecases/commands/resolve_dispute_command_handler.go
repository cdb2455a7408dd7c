package commands

import (
	"context"
	"time"
)

// ResolveDisputeCommandHandler handles the admin's dispute workflow.
type ResolveDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(uowFactory DisputeUoWFactory) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispute resolution command.
// The aggregate enforces the workflow order and the mandatory resolution
// text on the resolved step.
func (h ResolveDisputeCommandHandler) Handle(ctx context.Context, command ResolveDisputeCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	disputeRepo := uow.DisputeRepository()

	trackedDispute, err := disputeRepo.Get(ctx, command.DisputeID())
	if err != nil {
		return err
	}

	if err = trackedDispute.Advance(command.NextStatus(), command.Resolution(), time.Now().UTC()); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, trackedDispute); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
