package http

import (
	"errors"
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateEatInOrder handles POST /api/v1/eat-in-orders.
func (s *Server) CreateEatInOrder(c echo.Context) error {
	var req CreateEatInOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	orderType, typeErr := order.ParseType(req.Type)
	tableID, tableErr := parseTableID(req.OrderTableID)
	items, itemsErr := parseLineItems(req.OrderLineItems)
	if err := errors.Join(typeErr, tableErr, itemsErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateEatInOrderCommand(orderType, tableID, items)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateEatInOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newEatInOrderResponse(created))
}

// GetEatInOrders handles GET /api/v1/eat-in-orders.
func (s *Server) GetEatInOrders(c echo.Context) error {
	found, err := s.h.GetAllEatInOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(found, newEatInOrderResponse))
}

// CreateTakeoutOrder handles POST /api/v1/takeout-orders.
func (s *Server) CreateTakeoutOrder(c echo.Context) error {
	var req CreateTakeoutOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	orderType, typeErr := order.ParseType(req.Type)
	items, itemsErr := parseLineItems(req.OrderLineItems)
	if err := errors.Join(typeErr, itemsErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateTakeoutOrderCommand(orderType, items)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateTakeoutOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newTakeoutOrderResponse(created))
}

// GetTakeoutOrders handles GET /api/v1/takeout-orders.
func (s *Server) GetTakeoutOrders(c echo.Context) error {
	found, err := s.h.GetAllTakeoutOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(found, newTakeoutOrderResponse))
}

// CreateDeliveryOrder handles POST /api/v1/delivery-orders.
func (s *Server) CreateDeliveryOrder(c echo.Context) error {
	var req CreateDeliveryOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	orderType, typeErr := order.ParseType(req.Type)
	items, itemsErr := parseLineItems(req.OrderLineItems)
	if err := errors.Join(typeErr, itemsErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateDeliveryOrderCommand(orderType, req.DeliveryAddress, items)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateDeliveryOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newDeliveryOrderResponse(created))
}

// GetDeliveryOrders handles GET /api/v1/delivery-orders.
func (s *Server) GetDeliveryOrders(c echo.Context) error {
	found, err := s.h.GetAllDeliveryOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(found, newDeliveryOrderResponse))
}

// GetOrderBacklog handles GET /api/v1/orders/backlog.
func (s *Server) GetOrderBacklog(c echo.Context) error {
	backlog, err := s.h.GetOrderBacklog.Handle(c.Request().Context(), queries.NewGetOrderBacklogQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newOrderBacklogResponse(backlog))
}

// changeStatus builds the PUT handler for one transition of one channel.
func changeStatus[O, R any](
	s *Server,
	h Handler[commands.ChangeOrderStatusCommand, O],
	present func(O) R,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := kernel.UUIDFromString(c.Param("orderId"))
		if err != nil {
			return s.fail(c, err)
		}

		cmd, err := commands.NewChangeOrderStatusCommand(orderID)
		if err != nil {
			return s.fail(c, err)
		}

		changed, err := h.Handle(c.Request().Context(), cmd)
		if err != nil {
			return s.fail(c, err)
		}

		return c.JSON(http.StatusOK, present(changed))
	}
}
