// Package http exposes the order services over a JSON API.
//
//	POST /api/v1/eat-in-orders                          create
//	GET  /api/v1/eat-in-orders                          list
//	PUT  /api/v1/eat-in-orders/:orderId/{accept,serve,complete}
//	POST /api/v1/takeout-orders                         create
//	GET  /api/v1/takeout-orders                         list
//	PUT  /api/v1/takeout-orders/:orderId/{accept,serve,complete}
//	POST /api/v1/delivery-orders                        create
//	GET  /api/v1/delivery-orders                        list
//	PUT  /api/v1/delivery-orders/:orderId/{accept,serve,start-delivery,complete-delivery,complete}
//	GET  /api/v1/orders/backlog                         uncompleted orders per channel
package http

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/takeoutorder"

	"github.com/labstack/echo/v4"
)

// Handler is satisfied by every command and query handler of the application layer.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, in C) (R, error)
}

type (
	eatInTransition    = Handler[commands.ChangeOrderStatusCommand, eatinorder.EatInOrder]
	takeoutTransition  = Handler[commands.ChangeOrderStatusCommand, takeoutorder.TakeoutOrder]
	deliveryTransition = Handler[commands.ChangeOrderStatusCommand, deliveryorder.DeliveryOrder]
)

// Handlers lists the use cases the server routes to.
type Handlers struct {
	CreateEatInOrder   Handler[commands.CreateEatInOrderCommand, eatinorder.EatInOrder]
	AcceptEatInOrder   eatInTransition
	ServeEatInOrder    eatInTransition
	CompleteEatInOrder eatInTransition
	GetAllEatInOrders  Handler[queries.GetAllOrdersQuery, []eatinorder.EatInOrder]

	CreateTakeoutOrder   Handler[commands.CreateTakeoutOrderCommand, takeoutorder.TakeoutOrder]
	AcceptTakeoutOrder   takeoutTransition
	ServeTakeoutOrder    takeoutTransition
	CompleteTakeoutOrder takeoutTransition
	GetAllTakeoutOrders  Handler[queries.GetAllOrdersQuery, []takeoutorder.TakeoutOrder]

	CreateDeliveryOrder   Handler[commands.CreateDeliveryOrderCommand, deliveryorder.DeliveryOrder]
	AcceptDeliveryOrder   deliveryTransition
	ServeDeliveryOrder    deliveryTransition
	StartDelivery         deliveryTransition
	CompleteDelivery      deliveryTransition
	CompleteDeliveryOrder deliveryTransition
	GetAllDeliveryOrders  Handler[queries.GetAllOrdersQuery, []deliveryorder.DeliveryOrder]

	GetOrderBacklog Handler[queries.GetOrderBacklogQuery, queries.GetOrderBacklogQueryResponse]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	eatIn := api.Group("/eat-in-orders")
	eatIn.POST("", s.CreateEatInOrder)
	eatIn.GET("", s.GetEatInOrders)
	eatIn.PUT("/:orderId/accept", changeStatus(s, s.h.AcceptEatInOrder, newEatInOrderResponse))
	eatIn.PUT("/:orderId/serve", changeStatus(s, s.h.ServeEatInOrder, newEatInOrderResponse))
	eatIn.PUT("/:orderId/complete", changeStatus(s, s.h.CompleteEatInOrder, newEatInOrderResponse))

	takeout := api.Group("/takeout-orders")
	takeout.POST("", s.CreateTakeoutOrder)
	takeout.GET("", s.GetTakeoutOrders)
	takeout.PUT("/:orderId/accept", changeStatus(s, s.h.AcceptTakeoutOrder, newTakeoutOrderResponse))
	takeout.PUT("/:orderId/serve", changeStatus(s, s.h.ServeTakeoutOrder, newTakeoutOrderResponse))
	takeout.PUT("/:orderId/complete", changeStatus(s, s.h.CompleteTakeoutOrder, newTakeoutOrderResponse))

	delivery := api.Group("/delivery-orders")
	delivery.POST("", s.CreateDeliveryOrder)
	delivery.GET("", s.GetDeliveryOrders)
	delivery.PUT("/:orderId/accept", changeStatus(s, s.h.AcceptDeliveryOrder, newDeliveryOrderResponse))
	delivery.PUT("/:orderId/serve", changeStatus(s, s.h.ServeDeliveryOrder, newDeliveryOrderResponse))
	delivery.PUT("/:orderId/start-delivery", changeStatus(s, s.h.StartDelivery, newDeliveryOrderResponse))
	delivery.PUT("/:orderId/complete-delivery", changeStatus(s, s.h.CompleteDelivery, newDeliveryOrderResponse))
	delivery.PUT("/:orderId/complete", changeStatus(s, s.h.CompleteDeliveryOrder, newDeliveryOrderResponse))

	api.GET("/orders/backlog", s.GetOrderBacklog)
}
