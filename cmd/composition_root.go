package cmd

import (
	"log/slog"
	"time"

	"courierhub/internal/adapters/in/http"
	"courierhub/internal/adapters/out/postgres"
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/ports"
	"courierhub/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	notifier    ports.Notifier
	codeStore   ports.CodeStore
	gracePeriod time.Duration
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	notifier ports.Notifier,
	codeStore ports.CodeStore,
	gracePeriod time.Duration,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:    notifier,
		codeStore:   codeStore,
		gracePeriod: gracePeriod,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAutoAssignCourierCommandHandler() commands.AutoAssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignCourierCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAutoConfirmOrdersCommandHandler() commands.AutoConfirmOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoConfirmOrdersCommandHandler(f, c.notifier, c.gracePeriod)
}

func (c *CompositionRoot) CreateRateCourierCommandHandler() commands.RateCourierCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenDisputeCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveDisputeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShopCommandHandler() commands.CreateShopCommandHandler {
	var f commands.ShopUoWFactory = FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShopCommandHandler(f)
}

func (c *CompositionRoot) CreateIssueRegistrationCodeCommandHandler() commands.IssueRegistrationCodeCommandHandler {
	return commands.NewIssueRegistrationCodeCommandHandler(c.codeStore)
}

func (c *CompositionRoot) CreateRedeemRegistrationCodeCommandHandler() commands.RedeemRegistrationCodeCommandHandler {
	return commands.NewRedeemRegistrationCodeCommandHandler(c.codeStore)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopOrdersQueryHandler() queries.GetShopOrdersQueryHandler {
	return queries.NewGetShopOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server over all use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.ServerHandlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		AssignCourier:          c.CreateAssignCourierCommandHandler(),
		AutoAssignCourier:      c.CreateAutoAssignCourierCommandHandler(),
		UpdateOrderStatus:      c.CreateUpdateOrderStatusCommandHandler(),
		ConfirmOrder:           c.CreateConfirmOrderCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		RateCourier:            c.CreateRateCourierCommandHandler(),
		OpenDispute:            c.CreateOpenDisputeCommandHandler(),
		ResolveDispute:         c.CreateResolveDisputeCommandHandler(),
		CreateCourier:          c.CreateCreateCourierCommandHandler(),
		SetCourierAvailability: c.CreateSetCourierAvailabilityCommandHandler(),
		CreateZone:             c.CreateCreateZoneCommandHandler(),
		CreateShop:             c.CreateCreateShopCommandHandler(),
		IssueRegistrationCode:  c.CreateIssueRegistrationCodeCommandHandler(),
		RedeemRegistrationCode: c.CreateRedeemRegistrationCodeCommandHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		GetShopOrders:          c.CreateGetShopOrdersQueryHandler(),
		GetCouriers:            c.CreateGetCouriersQueryHandler(),
	})
}

// CreateJobManager builds the background jobs over the scheduled handlers.
func (c *CompositionRoot) CreateJobManager(schedules jobs.JobSchedules, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAutoAssignCourierCommandHandler(),
		c.CreateAutoConfirmOrdersCommandHandler(),
		schedules,
		logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}
