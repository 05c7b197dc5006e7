package commands_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/product"
	"kitchen/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDraftByClient(
	ctx context.Context, clientID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) AddLine(ctx context.Context, line *order.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockOrderRepository) IncrementLineQuantity(
	ctx context.Context, orderID, productID kernel.UUID, delta int,
) error {
	args := m.Called(ctx, orderID, productID, delta)
	return args.Error(0)
}

func (m *MockOrderRepository) GetLineForUpdate(
	ctx context.Context, orderID, productID kernel.UUID,
) (*order.Line, error) {
	args := m.Called(ctx, orderID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Line), args.Error(1)
}

func (m *MockOrderRepository) UpdateLine(ctx context.Context, line *order.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteLine(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) CountLines(ctx context.Context, orderID kernel.UUID) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) MarkStaleDraftsDeleted(
	ctx context.Context, cutoff time.Time,
) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductUoW struct{ mock.Mock }

func (m *MockProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newActorWithRole(t *testing.T, role auth.Role) auth.Actor {
	t.Helper()
	actor, err := auth.NewActor(kernel.NewUUID(), "test-actor", role)
	require.NoError(t, err)
	return actor
}

func newDraftFor(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()
	draft, err := order.NewDraftOrder(kernel.NewUUID(), clientID, "alice", time.Now().UTC())
	require.NoError(t, err)
	return draft
}

func newDraftWithLine(t *testing.T, clientID kernel.UUID, quantity int) (*order.Order, *order.Line) {
	t.Helper()
	orderID := kernel.NewUUID()
	line, err := order.NewLine(kernel.NewUUID(), orderID, kernel.NewUUID(), quantity)
	require.NoError(t, err)
	draft, err := order.RestoreOrder(
		orderID, clientID, "alice",
		nil, "",
		order.StatusDraft,
		time.Now().UTC(), nil, nil,
		[]*order.Line{line},
	)
	require.NoError(t, err)
	return draft, line
}

func newCatalogProduct(t *testing.T) *product.Product {
	t.Helper()
	aggregate, err := product.NewProduct(
		kernel.NewUUID(), "Margherita", decimal.NewFromInt(12), "classic")
	require.NoError(t, err)
	return aggregate
}
