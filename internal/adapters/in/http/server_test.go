package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"kitchenpos/cmd"
	"kitchenpos/internal/adapters/out/memory"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockDeliveryDispatcher struct {
	mock.Mock
}

func (m *MockDeliveryDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	total decimal.Decimal,
	address string,
) error {
	args := m.Called(ctx, orderID, total, address)
	return args.Error(0)
}

type order struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	OrderTableID    string `json:"orderTableId"`
	DeliveryAddress string `json:"deliveryAddress"`
	OrderLineItems  []struct {
		MenuID   string          `json:"menuId"`
		Price    decimal.Decimal `json:"price"`
		Quantity int64           `json:"quantity"`
	} `json:"orderLineItems"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ServerTestSuite struct {
	suite.Suite
	e          *echo.Echo
	factory    *memory.UnitOfWorkFactory
	dispatcher *MockDeliveryDispatcher
	menu       *menu.Menu
	hiddenMenu *menu.Menu
	table      *table.RestaurantTable
	emptyTable *table.RestaurantTable
}

func (s *ServerTestSuite) SetupTest() {
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
	s.dispatcher = new(MockDeliveryDispatcher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := cmd.NewCompositionRoot(cmd.Config{}.WithDefaults(), s.factory, s.dispatcher, logger)

	var err error
	s.menu, err = menu.NewMenu(kernel.NewUUID(), "Fried chicken", kernel.MustNewPriceFromInt(19000), true)
	s.Require().NoError(err)
	s.hiddenMenu, err = menu.NewMenu(kernel.NewUUID(), "Seasonal special", kernel.MustNewPriceFromInt(19000), false)
	s.Require().NoError(err)
	s.table, err = table.NewRestaurantTable(kernel.NewUUID(), "Table 1", true, 4)
	s.Require().NoError(err)
	s.emptyTable, err = table.NewRestaurantTable(kernel.NewUUID(), "Table 2", false, 0)
	s.Require().NoError(err)

	seed, err := commands.NewSeedCatalogCommand(
		[]*menu.Menu{s.menu, s.hiddenMenu},
		[]*table.RestaurantTable{s.table, s.emptyTable},
	)
	s.Require().NoError(err)
	s.Require().NoError(app.CreateSeedCatalogCommandHandler().Handle(context.Background(), seed))

	s.e = echo.New()
	app.CreateHTTPServer().RegisterRoutes(s.e)
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *ServerTestSuite) lineItems(m *menu.Menu, price string, quantity int) string {
	return `[{"menuId":"` + m.ID().String() + `","price":` + price + `,"quantity":` + strconv.Itoa(quantity) + `}]`
}

func (s *ServerTestSuite) createEatIn(tableID string) order {
	rec := s.do(http.MethodPost, "/api/v1/eat-in-orders",
		`{"type":"EAT_IN","orderTableId":"`+tableID+`","orderLineItems":`+s.lineItems(s.menu, "19000", 3)+`}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var o order
	s.decode(rec, &o)
	return o
}

func (s *ServerTestSuite) put(channel, id, op string) *httptest.ResponseRecorder {
	return s.do(http.MethodPut, "/api/v1/"+channel+"/"+id+"/"+op, "")
}

func (s *ServerTestSuite) TestEatIn_CreateReturnsWaitingOrder() {
	o := s.createEatIn(s.table.ID().String())

	s.Equal("EAT_IN", o.Type)
	s.Equal("WAITING", o.Status)
	s.Equal(s.table.ID().String(), o.OrderTableID)
	s.Require().Len(o.OrderLineItems, 1)
	s.Equal(s.menu.ID().String(), o.OrderLineItems[0].MenuID)
	s.True(decimal.NewFromInt(19000).Equal(o.OrderLineItems[0].Price))
	s.Equal(int64(3), o.OrderLineItems[0].Quantity)
}

func (s *ServerTestSuite) TestEatIn_CompletingLastOrderReleasesTable() {
	first := s.createEatIn(s.table.ID().String())
	second := s.createEatIn(s.table.ID().String())

	for _, id := range []string{first.ID, second.ID} {
		s.Require().Equal(http.StatusOK, s.put("eat-in-orders", id, "accept").Code)
		s.Require().Equal(http.StatusOK, s.put("eat-in-orders", id, "serve").Code)
	}

	rec := s.put("eat-in-orders", second.ID, "complete")
	s.Require().Equal(http.StatusOK, rec.Code)
	var completed order
	s.decode(rec, &completed)
	s.Equal("COMPLETED", completed.Status)

	t := s.loadTable()
	s.True(t.IsOccupied())
	s.Equal(4, t.NumberOfGuests())

	s.Require().Equal(http.StatusOK, s.put("eat-in-orders", first.ID, "complete").Code)
	t = s.loadTable()
	s.False(t.IsOccupied())
	s.Equal(0, t.NumberOfGuests())
}

func (s *ServerTestSuite) TestEatIn_CreateErrors() {
	tests := []struct {
		name string
		body string
		code int
	}{
		{
			name: "missing type",
			body: `{"orderTableId":"` + s.table.ID().String() + `","orderLineItems":` + s.lineItems(s.menu, "19000", 1) + `}`,
			code: http.StatusBadRequest,
		},
		{
			name: "no line items",
			body: `{"type":"EAT_IN","orderTableId":"` + s.table.ID().String() + `","orderLineItems":[]}`,
			code: http.StatusBadRequest,
		},
		{
			name: "price differs from menu",
			body: `{"type":"EAT_IN","orderTableId":"` + s.table.ID().String() + `","orderLineItems":` + s.lineItems(s.menu, "18000", 1) + `}`,
			code: http.StatusBadRequest,
		},
		{
			name: "missing price",
			body: `{"type":"EAT_IN","orderTableId":"` + s.table.ID().String() + `","orderLineItems":[{"menuId":"` + s.menu.ID().String() + `","quantity":1}]}`,
			code: http.StatusBadRequest,
		},
		{
			name: "hidden menu",
			body: `{"type":"EAT_IN","orderTableId":"` + s.table.ID().String() + `","orderLineItems":` + s.lineItems(s.hiddenMenu, "19000", 1) + `}`,
			code: http.StatusConflict,
		},
		{
			name: "unknown table",
			body: `{"type":"EAT_IN","orderTableId":"` + kernel.NewUUID().String() + `","orderLineItems":` + s.lineItems(s.menu, "19000", 1) + `}`,
			code: http.StatusNotFound,
		},
		{
			name: "unoccupied table",
			body: `{"type":"EAT_IN","orderTableId":"` + s.emptyTable.ID().String() + `","orderLineItems":` + s.lineItems(s.menu, "19000", 1) + `}`,
			code: http.StatusConflict,
		},
		{
			name: "malformed body",
			body: `{"type":`,
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(http.MethodPost, "/api/v1/eat-in-orders", tt.body)

			s.Equal(tt.code, rec.Code, rec.Body.String())
			var body apiError
			s.decode(rec, &body)
			s.Equal(tt.code, body.Code)
			s.NotEmpty(body.Message)
		})
	}

	rec := s.do(http.MethodGet, "/api/v1/eat-in-orders", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var all []order
	s.decode(rec, &all)
	s.Empty(all, "failed requests store nothing")
}

func (s *ServerTestSuite) TestEatIn_NegativeQuantityAllowed() {
	rec := s.do(http.MethodPost, "/api/v1/eat-in-orders",
		`{"type":"EAT_IN","orderTableId":"`+s.table.ID().String()+`","orderLineItems":`+s.lineItems(s.menu, "19000", -1)+`}`)

	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *ServerTestSuite) TestTransitionErrors() {
	s.Equal(http.StatusBadRequest, s.put("eat-in-orders", "not-a-uuid", "accept").Code)
	s.Equal(http.StatusNotFound, s.put("takeout-orders", kernel.NewUUID().String(), "accept").Code)

	o := s.createEatIn(s.table.ID().String())
	s.Equal(http.StatusConflict, s.put("eat-in-orders", o.ID, "serve").Code)
	s.Equal(http.StatusNotFound, s.put("takeout-orders", o.ID, "accept").Code, "channels do not share orders")
}

func (s *ServerTestSuite) TestTakeout_Lifecycle() {
	rec := s.do(http.MethodPost, "/api/v1/takeout-orders",
		`{"type":"TAKEOUT","orderLineItems":`+s.lineItems(s.menu, "19000", 2)+`}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var o order
	s.decode(rec, &o)

	for _, step := range []struct{ op, status string }{
		{"accept", "ACCEPTED"}, {"serve", "SERVED"}, {"complete", "COMPLETED"},
	} {
		rec = s.put("takeout-orders", o.ID, step.op)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.decode(rec, &o)
		s.Equal(step.status, o.Status)
	}

	rec = s.do(http.MethodPost, "/api/v1/takeout-orders",
		`{"type":"TAKEOUT","orderLineItems":`+s.lineItems(s.menu, "19000", -1)+`}`)
	s.Equal(http.StatusBadRequest, rec.Code, "takeout rejects negative quantities")
}

func (s *ServerTestSuite) TestDelivery_LifecycleDispatchesOnAccept() {
	rec := s.do(http.MethodPost, "/api/v1/delivery-orders",
		`{"type":"DELIVERY","deliveryAddress":"12 Baker Street","orderLineItems":`+s.lineItems(s.menu, "19000", 3)+`}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var o order
	s.decode(rec, &o)
	s.Equal("12 Baker Street", o.DeliveryAddress)

	s.dispatcher.On("RequestDelivery", mock.Anything, mock.Anything,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(57000)) }),
		"12 Baker Street",
	).Return(nil).Once()

	for _, step := range []struct{ op, status string }{
		{"accept", "ACCEPTED"},
		{"serve", "PICKED_UP"},
		{"start-delivery", "DELIVERING"},
		{"complete-delivery", "DELIVERED"},
		{"complete", "COMPLETED"},
	} {
		rec = s.put("delivery-orders", o.ID, step.op)
		s.Require().Equal(http.StatusOK, rec.Code, step.op)
		s.decode(rec, &o)
		s.Equal(step.status, o.Status)
	}
	s.dispatcher.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestDelivery_MissingAddress() {
	rec := s.do(http.MethodPost, "/api/v1/delivery-orders",
		`{"type":"DELIVERY","deliveryAddress":"  ","orderLineItems":`+s.lineItems(s.menu, "19000", 1)+`}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestDelivery_DispatchFailureKeepsOrderWaiting() {
	rec := s.do(http.MethodPost, "/api/v1/delivery-orders",
		`{"type":"DELIVERY","deliveryAddress":"12 Baker Street","orderLineItems":`+s.lineItems(s.menu, "19000", 1)+`}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var o order
	s.decode(rec, &o)

	s.dispatcher.On("RequestDelivery", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	rec = s.put("delivery-orders", o.ID, "accept")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "broker unavailable")

	rec = s.do(http.MethodGet, "/api/v1/delivery-orders", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var all []order
	s.decode(rec, &all)
	s.Require().Len(all, 1)
	s.Equal("WAITING", all[0].Status)
}

func (s *ServerTestSuite) TestBacklog_CountsUncompletedOrders() {
	s.createEatIn(s.table.ID().String())
	s.createEatIn(s.table.ID().String())
	rec := s.do(http.MethodPost, "/api/v1/takeout-orders",
		`{"type":"TAKEOUT","orderLineItems":`+s.lineItems(s.menu, "19000", 1)+`}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/orders/backlog", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var backlog struct {
		EatIn    int64 `json:"eatIn"`
		Takeout  int64 `json:"takeout"`
		Delivery int64 `json:"delivery"`
		Total    int64 `json:"total"`
	}
	s.decode(rec, &backlog)
	s.Equal(int64(2), backlog.EatIn)
	s.Equal(int64(1), backlog.Takeout)
	s.Equal(int64(0), backlog.Delivery)
	s.Equal(int64(3), backlog.Total)
}

func (s *ServerTestSuite) loadTable() *table.RestaurantTable {
	t, err := s.factory.Create().TableRepository().Get(context.Background(), s.table.ID())
	s.Require().NoError(err)
	return t
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
