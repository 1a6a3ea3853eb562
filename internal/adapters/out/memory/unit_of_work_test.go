package memory_test

import (
	"sync"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/memory"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEatInOrder(t *testing.T, tableID kernel.UUID) eatinorder.EatInOrder {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.MustNewPriceFromInt(19000), 3)
	require.NoError(t, err)
	o, err := eatinorder.NewEatInOrder(kernel.NewUUID(), order.EatIn, tableID, []order.LineItem{item}, time.Now())
	require.NoError(t, err)
	return o
}

func TestUnitOfWork_CommitPublishesStagedWrites(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	o := newEatInOrder(t, kernel.NewUUID())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.EatInOrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))

	got, err := factory.Create().EatInOrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), got.ID())
}

func TestUnitOfWork_RollbackDiscardsStagedWrites(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	o := newEatInOrder(t, kernel.NewUUID())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.EatInOrderRepository().Add(ctx, o))

	_, err := uow.EatInOrderRepository().Get(ctx, o.ID())
	require.NoError(t, err, "staged writes are visible inside the unit of work")

	require.NoError(t, uow.Rollback(ctx))

	_, err = factory.Create().EatInOrderRepository().Get(ctx, o.ID())
	assert.True(t, errs.IsNotFound(err))
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()

	require.ErrorIs(t, uow.Commit(t.Context()), memory.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(t.Context()), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_SerializesUnitsOfWork(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	o := newEatInOrder(t, kernel.NewUUID())

	seed := factory.Create()
	require.NoError(t, seed.Begin(ctx))
	require.NoError(t, seed.EatInOrderRepository().Add(ctx, o))
	require.NoError(t, seed.Commit(ctx))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			repo := uow.EatInOrderRepository()
			current, err := repo.Get(ctx, o.ID())
			if err != nil {
				return
			}
			accepted, err := current.Accept()
			if err != nil {
				return
			}
			if err = repo.Update(ctx, accepted); err != nil {
				return
			}
			if uow.Commit(ctx) == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestEatInOrderRepository_ExistsByTableAndStatusNot(t *testing.T) {
	ctx := t.Context()
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	repo := uow.EatInOrderRepository()
	tableID := kernel.NewUUID()

	exists, err := repo.ExistsByTableAndStatusNot(ctx, tableID, eatinorder.Completed)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Add(ctx, newEatInOrder(t, tableID)))
	require.NoError(t, repo.Add(ctx, newEatInOrder(t, kernel.NewUUID())))

	exists, err = repo.ExistsByTableAndStatusNot(ctx, tableID, eatinorder.Completed)
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := repo.CountByStatusNot(ctx, eatinorder.Completed)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMenuRepository_GetAllByIDsSkipsMissingAndDuplicates(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().MenuRepository()
	m, err := menu.NewMenu(kernel.NewUUID(), "Fried chicken", kernel.MustNewPriceFromInt(19000), true)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, m))

	menus, err := repo.GetAllByIDs(ctx, []kernel.UUID{m.ID(), m.ID(), kernel.NewUUID()})

	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, m.ID(), menus[0].ID())
}

func TestTableRepository_ReturnsCopies(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().TableRepository()
	tbl, err := table.NewRestaurantTable(kernel.NewUUID(), "T1", true, 4)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, tbl))

	loaded, err := repo.Get(ctx, tbl.ID())
	require.NoError(t, err)
	loaded.Clear()

	again, err := repo.Get(ctx, tbl.ID())
	require.NoError(t, err)
	assert.True(t, again.IsOccupied())
	assert.Equal(t, 4, again.NumberOfGuests())
}

func TestMenuRepository_ReturnsCopies(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().MenuRepository()
	m, err := menu.NewMenu(kernel.NewUUID(), "Fried chicken", kernel.MustNewPriceFromInt(16000), true)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, m))

	loaded, err := repo.Get(ctx, m.ID())
	require.NoError(t, err)
	assert.NotSame(t, m, loaded)
	assert.Equal(t, m.ID(), loaded.ID())
	assert.Equal(t, m.Name(), loaded.Name())
	assert.True(t, m.Price().IsEqual(loaded.Price()))
	assert.True(t, loaded.IsDisplayed())

	menus, err := repo.GetAllByIDs(ctx, []kernel.UUID{m.ID()})
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.NotSame(t, m, menus[0])
	assert.NotSame(t, loaded, menus[0])
}
