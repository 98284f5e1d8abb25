package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/dispatching"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the use cases.
type CompositionRoot struct {
	gormDB     *gorm.DB
	bounds     kernel.Bounds
	schedules  jobs.Schedules
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB) (CompositionRoot, error) {
	bounds, err := cfg.Bounds()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		bounds:     bounds,
		schedules:  cfg.Schedules(),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, bounds),
	}, nil
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() *commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateCourierCommandHandler(f, c.bounds)
	return &h
}

func (c *CompositionRoot) CreateStartWorkCommandHandler() *commands.StartWorkCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewStartWorkCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateStopWorkCommandHandler() *commands.StopWorkCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewStopWorkCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.bounds)
	return &h
}

func (c *CompositionRoot) CreateMoveCouriersCommandHandler() *commands.MoveCouriersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewMoveCouriersCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrdersCommandHandler(f, dispatching.NewDispatcher())
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB, c.bounds)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB, c.bounds)
}

// CreateHTTPServer returns the API implementation served by the router.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateCourier:        c.CreateCreateCourierCommandHandler(),
		StartWork:            c.CreateStartWorkCommandHandler(),
		StopWork:             c.CreateStopWorkCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		GetAllCouriers:       c.CreateGetAllCouriersQueryHandler(),
		GetUncompletedOrders: c.CreateGetUncompletedOrdersQueryHandler(),
	})
}

// CreateJobManager returns the assignment and movement jobs on the configured schedules.
func (c *CompositionRoot) CreateJobManager(m *metrics.Jobs, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.schedules,
		c.CreateMoveCouriersCommandHandler(),
		c.CreateAssignOrdersCommandHandler(),
		m,
		logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
