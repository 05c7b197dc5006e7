package queries_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/productrepo"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCookTasksQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetCookTasksQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	productRepo *productrepo.GormProductRepository
}

func (suite *GetCookTasksQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCookTasksQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.productRepo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (suite *GetCookTasksQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCookTasksQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, products").Error
	suite.Require().NoError(err)
}

func (suite *GetCookTasksQueryHandlerTestSuite) seedProduct(name string, cookID *kernel.UUID) *product.Product {
	dish, err := product.NewProduct(kernel.NewUUID(), name, decimal.NewFromInt(10), "")
	suite.Require().NoError(err)
	if cookID != nil {
		suite.Require().NoError(dish.AssignCook(*cookID))
	}
	suite.Require().NoError(suite.productRepo.Add(context.Background(), dish))
	return dish
}

func (suite *GetCookTasksQueryHandlerTestSuite) seedFormedOrder(
	dish *product.Product, quantity, prepared int,
) *order.Order {
	ctx := context.Background()

	draft, err := order.NewDraftOrder(kernel.NewUUID(), kernel.NewUUID(), "Alice", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, draft))

	line, err := order.RestoreLine(kernel.NewUUID(), draft.ID(), dish.ID(), quantity, prepared)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.AddLine(ctx, line))

	aggregate, err := suite.orderRepo.Get(ctx, draft.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Form(time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, aggregate))
	return aggregate
}

func (suite *GetCookTasksQueryHandlerTestSuite) newCook(id kernel.UUID) auth.Actor {
	actor, err := auth.NewActor(id, "Cook Carl", auth.RoleCook)
	suite.Require().NoError(err)
	return actor
}

func (suite *GetCookTasksQueryHandlerTestSuite) TestHandle_EmptyBacklog_ReturnsEmptySlice() {
	query, err := queries.NewGetCookTasksQuery(suite.newCook(kernel.NewUUID()))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCookTasksQueryHandlerTestSuite) TestHandle_Cook_SeesOnlyAssignedPendingLines() {
	cookID := kernel.NewUUID()
	mine := suite.seedProduct("Margherita", &cookID)
	someoneElses := suite.seedProduct("Carbonara", nil)

	formed := suite.seedFormedOrder(mine, 3, 1)
	suite.seedFormedOrder(someoneElses, 2, 0)

	query, err := queries.NewGetCookTasksQuery(suite.newCook(cookID))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].OrderID.IsEqual(formed.ID()))
	suite.Equal("Margherita", result[0].ProductName)
	suite.Equal(3, result[0].Quantity)
	suite.Equal(1, result[0].Prepared)
	suite.Equal(2, result[0].Remaining)
}

func (suite *GetCookTasksQueryHandlerTestSuite) TestHandle_Admin_SeesWholeBacklog() {
	cookID := kernel.NewUUID()
	suite.seedFormedOrder(suite.seedProduct("Margherita", &cookID), 3, 0)
	suite.seedFormedOrder(suite.seedProduct("Carbonara", nil), 2, 0)

	admin, err := auth.NewActor(kernel.NewUUID(), "Admin Ann", auth.RoleAdmin)
	suite.Require().NoError(err)
	query, err := queries.NewGetCookTasksQuery(admin)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetCookTasksQueryHandlerTestSuite) TestHandle_CompleteLines_Excluded() {
	cookID := kernel.NewUUID()
	dish := suite.seedProduct("Margherita", &cookID)
	suite.seedFormedOrder(dish, 2, 2)

	query, err := queries.NewGetCookTasksQuery(suite.newCook(cookID))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetCookTasksQueryHandlerTestSuite) TestHandle_DraftOrders_Excluded() {
	ctx := context.Background()
	cookID := kernel.NewUUID()
	dish := suite.seedProduct("Margherita", &cookID)

	draft, err := order.NewDraftOrder(kernel.NewUUID(), kernel.NewUUID(), "Alice", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, draft))
	line, err := order.NewLine(kernel.NewUUID(), draft.ID(), dish.ID(), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.AddLine(ctx, line))

	query, err := queries.NewGetCookTasksQuery(suite.newCook(cookID))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetCookTasksQueryHandlerTestSuite) TestHandle_OrderedByFormationTime() {
	cookID := kernel.NewUUID()
	first := suite.seedFormedOrder(suite.seedProduct("Margherita", &cookID), 2, 0)
	second := suite.seedFormedOrder(suite.seedProduct("Carbonara", &cookID), 1, 0)

	// Push the second order's formation time into the past.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET formed_at = ? WHERE id = ?",
		time.Now().UTC().Add(-time.Hour), second.ID().Bytes(),
	).Error)

	query, err := queries.NewGetCookTasksQuery(suite.newCook(cookID))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].OrderID.IsEqual(second.ID()))
	suite.True(result[1].OrderID.IsEqual(first.ID()))
}

func (suite *GetCookTasksQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCookTasksQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetCookTasksQueryIsNotConstructed)
}

func TestGetCookTasksQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCookTasksQueryHandlerTestSuite))
}
