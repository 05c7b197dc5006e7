package cmd

import (
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/adapters/out/redis/sessionstore"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sessions   *sessionstore.RedisSessionStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   sessionstore.NewRedisSessionStore(redisClient),
	}
}

func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessions
}

func (c *CompositionRoot) CreateCreateDraftOrderCommandHandler() commands.CreateDraftOrderCommandHandler {
	return commands.NewCreateDraftOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddProductToDraftCommandHandler() commands.AddProductToDraftCommandHandler {
	return commands.NewAddProductToDraftCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRemoveProductFromDraftCommandHandler() commands.RemoveProductFromDraftCommandHandler {
	return commands.NewRemoveProductFromDraftCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFormOrderCommandHandler() commands.FormOrderCommandHandler {
	return commands.NewFormOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateIncrementPreparedCommandHandler() commands.IncrementPreparedCommandHandler {
	return commands.NewIncrementPreparedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateRemoveStaleDraftsCommandHandler() commands.RemoveStaleDraftsCommandHandler {
	return commands.NewRemoveStaleDraftsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCookTasksQueryHandler() queries.GetCookTasksQueryHandler {
	return queries.NewGetCookTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
