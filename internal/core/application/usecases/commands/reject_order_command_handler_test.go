package commands_test

import (
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOrderCommandHandler_Handle_RejectsFormedOrder(t *testing.T) {
	ctx := t.Context()
	manager := newActorWithRole(t, auth.RoleManager)
	aggregate, _ := newDraftWithLine(t, manager.ID(), 2)
	require.NoError(t, aggregate.Form(time.Now().UTC()))
	cmd, _ := commands.NewRejectOrderCommand(manager, aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusRejected, aggregate.Status())
	require.NotNil(t, aggregate.Manager())
	assert.True(t, aggregate.Manager().IsEqual(manager.ID()))
	assert.NotNil(t, aggregate.CompletedAt())
	repo.AssertExpectations(t)
}

func TestRejectOrderCommandHandler_Handle_RejectsCompletedOrder(t *testing.T) {
	ctx := t.Context()
	manager := newActorWithRole(t, auth.RoleManager)
	aggregate, _ := newDraftWithLine(t, manager.ID(), 2)
	require.NoError(t, aggregate.Form(time.Now().UTC()))
	require.NoError(t, aggregate.Complete(manager.ID(), manager.Name(), time.Now().UTC()))
	cmd, _ := commands.NewRejectOrderCommand(manager, aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.StatusCompleted, aggregate.Status())
}

func TestRejectOrderCommandHandler_Handle_ForbiddenForCook(t *testing.T) {
	ctx := t.Context()
	cook := newActorWithRole(t, auth.RoleCook)
	aggregate, _ := newDraftWithLine(t, cook.ID(), 2)
	cmd, _ := commands.NewRejectOrderCommand(cook, aggregate.ID())

	factory := new(MockOrderUoWFactory)
	h := commands.NewRejectOrderCommandHandler(factory)

	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
