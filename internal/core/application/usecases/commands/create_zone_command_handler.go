package commands

import (
	"context"

	"courierhub/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler handles zone administration.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone administration.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone creation command.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, command CreateZoneCommand) error {
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

	newZone, err := zone.NewZone(command.ZoneID(), command.Name(), command.RadiusKm(), command.BasePrice())
	if err != nil {
		return err
	}

	if err = uow.ZoneRepository().Add(ctx, newZone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
