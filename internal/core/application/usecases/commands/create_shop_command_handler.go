package commands

import (
	"context"

	"courierhub/internal/core/domain/model/shop"
)

// CreateShopCommandHandler handles shop registration.
type CreateShopCommandHandler struct {
	uowFactory ShopUoWFactory
}

// NewCreateShopCommandHandler creates a handler for shop registration.
func NewCreateShopCommandHandler(uowFactory ShopUoWFactory) CreateShopCommandHandler {
	return CreateShopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shop registration command.
func (h CreateShopCommandHandler) Handle(ctx context.Context, command CreateShopCommand) error {
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

	newShop, err := shop.NewShop(command.ShopID(), command.Name(), command.TelegramChatID())
	if err != nil {
		return err
	}

	if err = uow.ShopRepository().Add(ctx, newShop); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
