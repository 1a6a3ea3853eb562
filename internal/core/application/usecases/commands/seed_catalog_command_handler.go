package commands

import (
	"context"
)

// SeedCatalogCommandHandler stores every menu and table of the command in one unit
// of work; a duplicate id fails the whole seed.
type SeedCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSeedCatalogCommandHandler(uowFactory CatalogUoWFactory) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{uowFactory: uowFactory}
}

func (h SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	for _, m := range cmd.Menus() {
		if err := menuRepo.Add(ctx, m); err != nil {
			return err
		}
	}

	tableRepo := uow.TableRepository()
	for _, t := range cmd.Tables() {
		if err := tableRepo.Add(ctx, t); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
