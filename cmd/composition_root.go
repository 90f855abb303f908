package cmd

import (
	"retailops/internal/adapters/in/http"
	"retailops/internal/adapters/out/bcrypt"
	"retailops/internal/core/application/usecases/commands"
	"retailops/internal/core/application/usecases/queries"
	"retailops/internal/core/ports"
	"retailops/internal/jobs"

	"github.com/rs/zerolog"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory ports.UnitOfWorkFactory
	cache      ports.StockCache
	hasher     ports.PasswordHasher
	logger     zerolog.Logger
}

// NewCompositionRoot wires handlers over uowFactory. cache may be nil.
func NewCompositionRoot(cfg Config, uowFactory ports.UnitOfWorkFactory, cache ports.StockCache, logger zerolog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		uowFactory: uowFactory,
		cache:      cache,
		hasher:     bcrypt.NewHasher(cfg.BcryptCost),
		logger:     logger,
	}
}

func (c *CompositionRoot) purchaseUoWFactory() commands.PurchaseUoWFactory {
	return FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	return commands.NewAuthenticateCommandHandler(c.userUoWFactory(), c.hasher, c.logger)
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	return commands.NewCreatePurchaseOrderCommandHandler(c.purchaseUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateTransitionPurchaseOrderCommandHandler() commands.TransitionPurchaseOrderCommandHandler {
	return commands.NewTransitionPurchaseOrderCommandHandler(c.purchaseUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSetDeliveryStatusCommandHandler() commands.SetDeliveryStatusCommandHandler {
	return commands.NewSetDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.stockUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.hasher, c.logger)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSeedCommandHandler() commands.SeedCommandHandler {
	var f commands.SeedUoWFactory = FuncSeedUoWFactory(func() commands.SeedUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedCommandHandler(f, c.hasher, c.logger)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.uowFactory, c.cache, c.logger)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateAuthenticateCommandHandler(),
		c.CreateCreatePurchaseOrderCommandHandler(),
		c.CreateTransitionPurchaseOrderCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateSetDeliveryStatusCommandHandler(),
		c.CreateAdjustStockCommandHandler(),
		c.CreateCreateUserCommandHandler(),
		c.CreateDeleteUserCommandHandler(),
		queries.NewGetPurchaseOrdersQueryHandler(c.uowFactory),
		queries.NewGetDeliveriesQueryHandler(c.uowFactory),
		c.CreateGetStockQueryHandler(),
		queries.NewGetAuditLogQueryHandler(c.uowFactory),
		queries.NewGetDashboardQueryHandler(c.uowFactory),
		queries.NewGetUsersQueryHandler(c.uowFactory),
	)
}

// CreateJobManager schedules the low stock scan, plus cache warming when a
// cache is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	stock := c.CreateGetStockQueryHandler()
	scheduled := []jobs.Job{
		jobs.NewLowStockJob(stock, c.cfg.LowStockThreshold, c.cfg.LowStockSchedule, c.logger),
	}
	if c.cache != nil {
		scheduled = append(scheduled, jobs.NewStockCacheWarmJob(stock, c.cache, c.cfg.CacheWarmSchedule, c.logger))
	}
	return jobs.NewJobManager(scheduled...)
}

type FuncPurchaseUoWFactory func() commands.PurchaseUoW

func (f FuncPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncSeedUoWFactory func() commands.SeedUoW

func (f FuncSeedUoWFactory) Create() commands.SeedUoW {
	return f()
}
