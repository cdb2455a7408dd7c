package commands

import (
	"context"
)

// RateCourierCommandHandler handles courier rating.
// Validates the rating against the aggregate's rules and writes it with a
// conditional update so the rating can be set at most once.
type RateCourierCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRateCourierCommandHandler creates a handler for courier rating.
func NewRateCourierCommandHandler(uowFactory OrderUoWFactory) RateCourierCommandHandler {
	return RateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
// The aggregate enforces that only a completed or disputed order can be
// rated and that a rating exists at most once; the repository repeats both
// guards in the UPDATE's WHERE clause, so of two concurrent raters exactly
// one wins.
func (h RateCourierCommandHandler) Handle(ctx context.Context, command RateCourierCommand) error {
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

	orderRepo := uow.OrderRepository()

	ratedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = ratedOrder.RateCourier(command.Rating(), command.Feedback()); err != nil {
		return err
	}

	if err = orderRepo.SetRating(ctx, ratedOrder.ID(), command.Rating(), command.Feedback()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
