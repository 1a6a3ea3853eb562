// Package commands contains the operations that change order state.
// Every handler follows the same shape: validate the command, begin a unit of work,
// load and change aggregates, persist, commit. A failure anywhere rolls the unit back.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces, narrowed to what each channel's handlers touch.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	EatInOrderRepoFactory interface {
		EatInOrderRepository() ports.EatInOrderRepository
	}

	TakeoutOrderRepoFactory interface {
		TakeoutOrderRepository() ports.TakeoutOrderRepository
	}

	DeliveryOrderRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// EatInOrderUoW spans eat-in orders, the menus they reference and the tables
	// they are placed against.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.EatInOrderRepository().Get(ctx, id)
	//   t, err := uow.TableRepository().Get(ctx, o.TableID())
	//   // ... change and persist both
	//
	//   err = uow.Commit(ctx)
	EatInOrderUoW interface {
		TxManager
		MenuRepoFactory
		TableRepoFactory
		EatInOrderRepoFactory
	}

	EatInOrderUoWFactory interface {
		Create() EatInOrderUoW
	}

	TakeoutOrderUoW interface {
		TxManager
		MenuRepoFactory
		TakeoutOrderRepoFactory
	}

	TakeoutOrderUoWFactory interface {
		Create() TakeoutOrderUoW
	}

	DeliveryOrderUoW interface {
		TxManager
		MenuRepoFactory
		DeliveryOrderRepoFactory
	}

	DeliveryOrderUoWFactory interface {
		Create() DeliveryOrderUoW
	}

	// CatalogUoW is used by the seeder to store menus and tables.
	CatalogUoW interface {
		TxManager
		MenuRepoFactory
		TableRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
