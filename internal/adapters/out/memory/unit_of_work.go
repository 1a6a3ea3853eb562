// Package memory keeps menus, tables and orders in process memory. It backs the
// STORAGE_DRIVER=memory mode and the application tests.
//
// A unit of work holds the store's lock from Begin until Commit or Rollback, so units
// of work run one at a time. Writes are staged and only reach the store on Commit.
// Repositories used outside a unit of work read and write the store directly.
package memory

import (
	"context"
	"errors"
	"sync"

	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/takeoutorder"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

type state struct {
	menus    map[kernel.UUID]*menu.Menu
	tables   map[kernel.UUID]*table.RestaurantTable
	eatIn    map[kernel.UUID]eatinorder.EatInOrder
	takeout  map[kernel.UUID]takeoutorder.TakeoutOrder
	delivery map[kernel.UUID]deliveryorder.DeliveryOrder
}

func newState() *state {
	return &state{
		menus:    make(map[kernel.UUID]*menu.Menu),
		tables:   make(map[kernel.UUID]*table.RestaurantTable),
		eatIn:    make(map[kernel.UUID]eatinorder.EatInOrder),
		takeout:  make(map[kernel.UUID]takeoutorder.TakeoutOrder),
		delivery: make(map[kernel.UUID]deliveryorder.DeliveryOrder),
	}
}

func (s *state) merge(staged *state) {
	mergeInto(s.menus, staged.menus)
	mergeInto(s.tables, staged.tables)
	mergeInto(s.eatIn, staged.eatIn)
	mergeInto(s.takeout, staged.takeout)
	mergeInto(s.delivery, staged.delivery)
}

func mergeInto[V any](dst, src map[kernel.UUID]V) {
	for id, v := range src {
		dst[id] = v
	}
}

// lookup reads staged first, then committed.
func lookup[V any](staged, committed map[kernel.UUID]V, id kernel.UUID) (V, bool) {
	if v, ok := staged[id]; ok {
		return v, true
	}
	v, ok := committed[id]
	return v, ok
}

func all[V any](staged, committed map[kernel.UUID]V) []V {
	out := make([]V, 0, len(committed)+len(staged))
	for id, v := range committed {
		if _, ok := staged[id]; !ok {
			out = append(out, v)
		}
	}
	for _, v := range staged {
		out = append(out, v)
	}
	return out
}

// Store is the committed state shared by every unit of work created from it.
type Store struct {
	mu        sync.Mutex
	committed *state
}

func NewStore() *Store {
	return &Store{committed: newState()}
}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is not safe for use by more than one goroutine.
type UnitOfWork struct {
	store  *Store
	staged *state
}

// Begin blocks until every other unit of work on the store has finished.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.staged != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	uow.store.mu.Lock()
	uow.staged = newState()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}
	uow.store.committed.merge(uow.staged)
	uow.staged = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}
	uow.staged = nil
	uow.store.mu.Unlock()
	return nil
}

// view runs fn against the staged writes of the active transaction, or directly
// against the committed state when none is active.
func (uow *UnitOfWork) view(fn func(staged, committed *state) error) error {
	if uow.staged != nil {
		return fn(uow.staged, uow.store.committed)
	}
	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()
	return fn(uow.store.committed, uow.store.committed)
}

func (uow *UnitOfWork) MenuRepository() ports.MenuRepository {
	return &MenuRepository{uow: uow}
}

func (uow *UnitOfWork) TableRepository() ports.TableRepository {
	return &TableRepository{uow: uow}
}

func (uow *UnitOfWork) EatInOrderRepository() ports.EatInOrderRepository {
	return &EatInOrderRepository{uow: uow}
}

func (uow *UnitOfWork) TakeoutOrderRepository() ports.TakeoutOrderRepository {
	return &TakeoutOrderRepository{uow: uow}
}

func (uow *UnitOfWork) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return &DeliveryOrderRepository{uow: uow}
}
