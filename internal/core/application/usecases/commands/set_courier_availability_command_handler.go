package commands

import (
	"context"
)

// SetCourierAvailabilityCommandHandler handles shift toggling.
type SetCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierAvailabilityCommandHandler creates a handler for shift toggling.
func NewSetCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) SetCourierAvailabilityCommandHandler {
	return SetCourierAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability command. The profile update does not
// touch the load counter, so a toggle racing an assignment cannot corrupt
// the courier's slot count.
func (h SetCourierAvailabilityCommandHandler) Handle(ctx context.Context, command SetCourierAvailabilityCommand) error {
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

	courierRepo := uow.CourierRepository()

	trackedCourier, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	if command.Active() {
		trackedCourier.Activate()
	} else {
		trackedCourier.Deactivate()
	}

	if err = courierRepo.Update(ctx, trackedCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
