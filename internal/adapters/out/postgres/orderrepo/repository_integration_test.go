package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/takeoutorder"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	eatIn     *orderrepo.GormEatInOrderRepository
	takeout   *orderrepo.GormTakeoutOrderRepository
	delivery  *orderrepo.GormDeliveryOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(orderrepo.Models()...))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(`TRUNCATE TABLE
		eat_in_order_line_items, eat_in_orders,
		takeout_order_line_items, takeout_orders,
		delivery_order_line_items, delivery_orders`).Error)

	suite.eatIn = orderrepo.NewGormEatInOrderRepository(suite.db)
	suite.takeout = orderrepo.NewGormTakeoutOrderRepository(suite.db)
	suite.delivery = orderrepo.NewGormDeliveryOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEatIn_AddAndGet_RoundTripsLineItemsInOrder() {
	ctx := context.Background()
	first := suite.lineItem(19000, 3)
	second := suite.lineItem(16000, -2)
	tableID := kernel.NewUUID()

	o, err := eatinorder.NewEatInOrder(kernel.NewUUID(), order.EatIn, tableID, []order.LineItem{first, second}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.eatIn.Add(ctx, o))

	got, err := suite.eatIn.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(o.ID().IsEqual(got.ID()))
	suite.Equal(order.EatIn, got.Type())
	suite.Equal(eatinorder.Waiting, got.Status())
	suite.True(tableID.IsEqual(got.TableID()))
	suite.WithinDuration(o.OrderDateTime(), got.OrderDateTime(), time.Millisecond)

	items := got.LineItems()
	suite.Require().Len(items, 2)
	suite.True(first.MenuID().IsEqual(items[0].MenuID()))
	suite.True(first.Price().IsEqual(items[0].Price()))
	suite.Equal(int64(3), items[0].Quantity())
	suite.True(second.MenuID().IsEqual(items[1].MenuID()))
	suite.Equal(int64(-2), items[1].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEatIn_Update_PersistsStatus() {
	ctx := context.Background()
	o := suite.eatInOrder(kernel.NewUUID())
	suite.Require().NoError(suite.eatIn.Add(ctx, o))

	accepted, err := o.Accept()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.eatIn.Update(ctx, accepted))

	got, err := suite.eatIn.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(eatinorder.Accepted, got.Status())
	suite.Len(got.LineItems(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEatIn_UpdateUnknownOrder_ReturnsNotFound() {
	o := suite.eatInOrder(kernel.NewUUID())

	err := suite.eatIn.Update(context.Background(), o)

	suite.Require().Error(err)
	suite.True(errs.IsNotFound(err))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEatIn_GetUnknownOrder_ReturnsNotFound() {
	_, err := suite.eatIn.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.True(errs.IsNotFound(err))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEatIn_ExistsByTableAndStatusNot() {
	ctx := context.Background()
	tableID := kernel.NewUUID()
	o := suite.eatInOrder(tableID)
	suite.Require().NoError(suite.eatIn.Add(ctx, o))

	exists, err := suite.eatIn.ExistsByTableAndStatusNot(ctx, tableID, eatinorder.Completed)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.eatIn.ExistsByTableAndStatusNot(ctx, kernel.NewUUID(), eatinorder.Completed)
	suite.Require().NoError(err)
	suite.False(exists, "other tables have no orders")

	completed := o
	for _, step := range []func(eatinorder.EatInOrder) (eatinorder.EatInOrder, error){
		eatinorder.EatInOrder.Accept,
		eatinorder.EatInOrder.Serve,
		eatinorder.EatInOrder.Complete,
	} {
		completed, err = step(completed)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.eatIn.Update(ctx, completed))

	exists, err = suite.eatIn.ExistsByTableAndStatusNot(ctx, tableID, eatinorder.Completed)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEatIn_GetAllAndCount() {
	ctx := context.Background()
	older, err := eatinorder.NewEatInOrder(kernel.NewUUID(), order.EatIn, kernel.NewUUID(),
		[]order.LineItem{suite.lineItem(1000, 1)}, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	newer := suite.eatInOrder(kernel.NewUUID())
	suite.Require().NoError(suite.eatIn.Add(ctx, newer))
	suite.Require().NoError(suite.eatIn.Add(ctx, older))

	all, err := suite.eatIn.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(older.ID().IsEqual(all[0].ID()))
	suite.True(newer.ID().IsEqual(all[1].ID()))

	n, err := suite.eatIn.CountByStatusNot(ctx, eatinorder.Completed)
	suite.Require().NoError(err)
	suite.Equal(int64(2), n)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestTakeout_Lifecycle() {
	ctx := context.Background()
	o, err := takeoutorder.NewTakeoutOrder(kernel.NewUUID(), order.Takeout,
		[]order.LineItem{suite.lineItem(19000, 2)}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.takeout.Add(ctx, o))

	accepted, err := o.Accept()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.takeout.Update(ctx, accepted))

	got, err := suite.takeout.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(takeoutorder.Accepted, got.Status())
	suite.Equal(order.Takeout, got.Type())

	all, err := suite.takeout.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)

	n, err := suite.takeout.CountByStatusNot(ctx, takeoutorder.Completed)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelivery_RoundTripsAddress() {
	ctx := context.Background()
	o, err := deliveryorder.NewDeliveryOrder(kernel.NewUUID(), order.Delivery, "서울시 송파구 위례성대로 2",
		[]order.LineItem{suite.lineItem(19000, 3)}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.delivery.Add(ctx, o))

	got, err := suite.delivery.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("서울시 송파구 위례성대로 2", got.DeliveryAddress())
	suite.Equal(deliveryorder.Waiting, got.Status())

	accepted, err := got.Accept()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.delivery.Update(ctx, accepted))

	n, err := suite.delivery.CountByStatusNot(ctx, deliveryorder.Completed)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelivery_NonDeliveryTypeHasNoAddress() {
	ctx := context.Background()
	o, err := deliveryorder.NewDeliveryOrder(kernel.NewUUID(), order.Takeout, "",
		[]order.LineItem{suite.lineItem(19000, 1)}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.delivery.Add(ctx, o))

	got, err := suite.delivery.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Takeout, got.Type())
	suite.Empty(got.DeliveryAddress())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_LocksRowUntilTransactionEnds() {
	ctx := context.Background()
	o := suite.eatInOrder(kernel.NewUUID())
	suite.Require().NoError(suite.eatIn.Add(ctx, o))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	_, err := orderrepo.NewGormEatInOrderRepository(tx).Get(ctx, o.ID())
	suite.Require().NoError(err)

	// A second locking read must wait for the first transaction.
	other := suite.db.Begin()
	suite.Require().NoError(other.Error)
	defer other.Rollback()
	suite.Require().NoError(other.Exec("SET LOCAL lock_timeout = '200ms'").Error)

	_, err = orderrepo.NewGormEatInOrderRepository(other).Get(ctx, o.ID())
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) eatInOrder(tableID kernel.UUID) eatinorder.EatInOrder {
	o, err := eatinorder.NewEatInOrder(kernel.NewUUID(), order.EatIn, tableID,
		[]order.LineItem{suite.lineItem(19000, 3)}, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) lineItem(price int64, quantity int64) order.LineItem {
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.MustNewPriceFromInt(price), quantity)
	suite.Require().NoError(err)
	return item
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
