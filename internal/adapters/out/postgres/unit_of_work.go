// Package postgres provides the GORM-based Unit of Work.
//
// A unit of work wraps one database transaction. Repositories handed out after
// Begin run inside it; before Begin they use the plain connection and each
// statement commits on its own, which is what the read-only queries rely on.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.EatInOrderRepository().Get(ctx, id) // SELECT ... FOR UPDATE
//	...
//	return uow.Commit(ctx)
//
// Repositories that lock rows (orders, tables) hold those locks until Commit or
// Rollback, so concurrent commands touching the same order or table serialize.
package postgres

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/tablerepo"
	"kitchenpos/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work. Instances must not be shared between goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. A second call on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn())
}

func (uow *GormUnitOfWork) TableRepository() ports.TableRepository {
	return tablerepo.NewGormTableRepository(uow.conn())
}

func (uow *GormUnitOfWork) EatInOrderRepository() ports.EatInOrderRepository {
	return orderrepo.NewGormEatInOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) TakeoutOrderRepository() ports.TakeoutOrderRepository {
	return orderrepo.NewGormTakeoutOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return orderrepo.NewGormDeliveryOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	models := []any{&menurepo.MenuDTO{}, &tablerepo.RestaurantTableDTO{}}
	models = append(models, orderrepo.Models()...)
	return db.AutoMigrate(models...)
}
