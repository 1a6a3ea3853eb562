package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// read and write inside that transaction; nothing is visible to others until Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards pending changes. Calling it after Commit returns an error
	// that callers deferring it are expected to ignore.
	Rollback(ctx context.Context) error

	MenuRepository() MenuRepository
	TableRepository() TableRepository
	EatInOrderRepository() EatInOrderRepository
	TakeoutOrderRepository() TakeoutOrderRepository
	DeliveryOrderRepository() DeliveryOrderRepository
}
