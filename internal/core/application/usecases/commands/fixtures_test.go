package commands_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/memory"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const menuPrice = 19000

type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.EatInOrderUoW {
	return f.factory.Create()
}

type memoryTakeoutUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryTakeoutUoWFactory) Create() commands.TakeoutOrderUoW {
	return f.factory.Create()
}

type memoryDeliveryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryDeliveryUoWFactory) Create() commands.DeliveryOrderUoW {
	return f.factory.Create()
}

type memoryCatalogUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryCatalogUoWFactory) Create() commands.CatalogUoW {
	return f.factory.Create()
}

// fixture is a store seeded with a displayed menu, a hidden menu, an occupied table
// seating four guests and an empty table.
type fixture struct {
	factory     *memory.UnitOfWorkFactory
	menu        *menu.Menu
	hiddenMenu  *menu.Menu
	table       *table.RestaurantTable
	emptyTable  *table.RestaurantTable
	eatIn       memoryUoWFactory
	takeout     memoryTakeoutUoWFactory
	delivery    memoryDeliveryUoWFactory
	catalogSeed memoryCatalogUoWFactory
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	displayed, err := menu.NewMenu(kernel.NewUUID(), "Fried chicken", kernel.MustNewPriceFromInt(menuPrice), true)
	require.NoError(t, err)
	hidden, err := menu.NewMenu(kernel.NewUUID(), "Seasonal special", kernel.MustNewPriceFromInt(menuPrice), false)
	require.NoError(t, err)
	occupied, err := table.NewRestaurantTable(kernel.NewUUID(), "Table 1", true, 4)
	require.NoError(t, err)
	empty, err := table.NewRestaurantTable(kernel.NewUUID(), "Table 2", false, 0)
	require.NoError(t, err)

	f := fixture{
		factory:     factory,
		menu:        displayed,
		hiddenMenu:  hidden,
		table:       occupied,
		emptyTable:  empty,
		eatIn:       memoryUoWFactory{factory: factory},
		takeout:     memoryTakeoutUoWFactory{factory: factory},
		delivery:    memoryDeliveryUoWFactory{factory: factory},
		catalogSeed: memoryCatalogUoWFactory{factory: factory},
	}

	cmd, err := commands.NewSeedCatalogCommand(
		[]*menu.Menu{displayed, hidden},
		[]*table.RestaurantTable{occupied, empty},
	)
	require.NoError(t, err)
	require.NoError(t, commands.NewSeedCatalogCommandHandler(f.catalogSeed).Handle(t.Context(), cmd))

	return f
}

func (f fixture) loadTable(t *testing.T, id kernel.UUID) *table.RestaurantTable {
	t.Helper()
	loaded, err := f.factory.Create().TableRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return loaded
}

func lineItems(m *menu.Menu, price, quantity int64) []order.LineItemRequest {
	return []order.LineItemRequest{{
		MenuID:   m.ID(),
		Price:    kernel.MustNewPriceFromInt(price),
		Quantity: quantity,
	}}
}

func statusCommand(t *testing.T, id kernel.UUID) commands.ChangeOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewChangeOrderStatusCommand(id)
	require.NoError(t, err)
	return cmd
}

type MockDeliveryDispatcher struct{ mock.Mock }

func (m *MockDeliveryDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	total decimal.Decimal,
	address string,
) error {
	args := m.Called(ctx, orderID, total, address)
	return args.Error(0)
}

func timeOf(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
}
