package cmd

import (
	"log/slog"

	httpin "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"
)

// CompositionRoot wires handlers to the chosen storage and dispatch adapters.
// Opening those adapters is left to the caller so tests can pass in-memory ones.
type CompositionRoot struct {
	cfg        Config
	uowFactory ports.UnitOfWorkFactory
	dispatcher ports.DeliveryDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	uowFactory ports.UnitOfWorkFactory,
	dispatcher ports.DeliveryDispatcher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (c *CompositionRoot) eatInUoWFactory() commands.EatInOrderUoWFactory {
	return FuncEatInOrderUoWFactory(func() commands.EatInOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) takeoutUoWFactory() commands.TakeoutOrderUoWFactory {
	return FuncTakeoutOrderUoWFactory(func() commands.TakeoutOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryOrderUoWFactory {
	return FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReaders() queries.OrderReadersFactory {
	return FuncOrderReadersFactory(func() queries.OrderReaders {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSeedCatalogCommandHandler() commands.SeedCatalogCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedCatalogCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.orderReaders())
}

// CreateHTTPHandlers returns every use case the HTTP adapter routes to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	eatIn := c.eatInUoWFactory()
	takeout := c.takeoutUoWFactory()
	delivery := c.deliveryUoWFactory()
	readers := c.orderReaders()

	return httpin.Handlers{
		CreateEatInOrder:   commands.NewCreateEatInOrderCommandHandler(eatIn),
		AcceptEatInOrder:   commands.NewAcceptEatInOrderCommandHandler(eatIn),
		ServeEatInOrder:    commands.NewServeEatInOrderCommandHandler(eatIn),
		CompleteEatInOrder: commands.NewCompleteEatInOrderCommandHandler(eatIn),
		GetAllEatInOrders:  queries.NewGetAllEatInOrdersQueryHandler(readers),

		CreateTakeoutOrder:   commands.NewCreateTakeoutOrderCommandHandler(takeout),
		AcceptTakeoutOrder:   commands.NewAcceptTakeoutOrderCommandHandler(takeout),
		ServeTakeoutOrder:    commands.NewServeTakeoutOrderCommandHandler(takeout),
		CompleteTakeoutOrder: commands.NewCompleteTakeoutOrderCommandHandler(takeout),
		GetAllTakeoutOrders:  queries.NewGetAllTakeoutOrdersQueryHandler(readers),

		CreateDeliveryOrder:   commands.NewCreateDeliveryOrderCommandHandler(delivery),
		AcceptDeliveryOrder:   commands.NewAcceptDeliveryOrderCommandHandler(delivery, c.dispatcher),
		ServeDeliveryOrder:    commands.NewServeDeliveryOrderCommandHandler(delivery),
		StartDelivery:         commands.NewStartDeliveryCommandHandler(delivery),
		CompleteDelivery:      commands.NewCompleteDeliveryCommandHandler(delivery),
		CompleteDeliveryOrder: commands.NewCompleteDeliveryOrderCommandHandler(delivery),
		GetAllDeliveryOrders:  queries.NewGetAllDeliveryOrdersQueryHandler(readers),

		GetOrderBacklog: c.CreateGetOrderBacklogQueryHandler(),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderBacklogQueryHandler(), c.cfg.BacklogJobSchedule, c.logger)
}

type FuncEatInOrderUoWFactory func() commands.EatInOrderUoW

func (f FuncEatInOrderUoWFactory) Create() commands.EatInOrderUoW {
	return f()
}

type FuncTakeoutOrderUoWFactory func() commands.TakeoutOrderUoW

func (f FuncTakeoutOrderUoWFactory) Create() commands.TakeoutOrderUoW {
	return f()
}

type FuncDeliveryOrderUoWFactory func() commands.DeliveryOrderUoW

func (f FuncDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderReadersFactory func() queries.OrderReaders

func (f FuncOrderReadersFactory) Create() queries.OrderReaders {
	return f()
}
