package cmd

import (
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() commands.TransitionShipmentCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignWarehouseCommandHandler() commands.AssignWarehouseCommandHandler {
	var f commands.ShipmentWarehouseUoWFactory = FuncShipmentWarehouseUoWFactory(func() commands.ShipmentWarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteWarehouseCommandHandler() commands.DeleteWarehouseCommandHandler {
	var f commands.ShipmentWarehouseUoWFactory = FuncShipmentWarehouseUoWFactory(func() commands.ShipmentWarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f, c.config.DefaultCommissionRate)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	var f commands.DriverShipmentUoWFactory = FuncDriverShipmentUoWFactory(func() commands.DriverShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateRecalculateWarehouseLoadsCommandHandler() commands.RecalculateWarehouseLoadsCommandHandler {
	var f commands.ShipmentWarehouseUoWFactory = FuncShipmentWarehouseUoWFactory(func() commands.ShipmentWarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecalculateWarehouseLoadsCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveShipmentsQueryHandler() queries.GetActiveShipmentsQueryHandler {
	return queries.NewGetActiveShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverPerformanceQueryHandler() queries.GetDriverPerformanceQueryHandler {
	return queries.NewGetDriverPerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehouseUtilizationQueryHandler() queries.GetWarehouseUtilizationQueryHandler {
	return queries.NewGetWarehouseUtilizationQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncDriverShipmentUoWFactory func() commands.DriverShipmentUoW

func (f FuncDriverShipmentUoWFactory) Create() commands.DriverShipmentUoW {
	return f()
}

type FuncShipmentWarehouseUoWFactory func() commands.ShipmentWarehouseUoW

func (f FuncShipmentWarehouseUoWFactory) Create() commands.ShipmentWarehouseUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}
