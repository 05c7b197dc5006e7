package commands_test

import (
	"errors"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDraftOrderCommand(t *testing.T) {
	t.Run("should create command for valid actor", func(t *testing.T) {
		cmd, err := commands.NewCreateDraftOrderCommand(newActorWithRole(t, auth.RoleClient))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject not constructed actor", func(t *testing.T) {
		_, err := commands.NewCreateDraftOrderCommand(auth.Actor{})
		require.Error(t, err)
	})

	t.Run("should reject not constructed command", func(t *testing.T) {
		var cmd commands.CreateDraftOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDraftOrderCommandIsNotConstructed)
	})
}

func TestCreateDraftOrderCommandHandler_Handle_ReturnsExistingDraft(t *testing.T) {
	ctx := t.Context()
	client := newActorWithRole(t, auth.RoleClient)
	cmd, _ := commands.NewCreateDraftOrderCommand(client)
	existing := newDraftFor(t, client.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetDraftByClient", mock.Anything, client.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDraftOrderCommandHandler(factory)
	orderID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, orderID.IsEqual(existing.ID()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDraftOrderCommandHandler_Handle_CreatesNewDraft(t *testing.T) {
	ctx := t.Context()
	client := newActorWithRole(t, auth.RoleClient)
	cmd, _ := commands.NewCreateDraftOrderCommand(client)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetDraftByClient", mock.Anything, client.ID()).
			Return(nil, errs.NewObjectNotFoundError("clientId", client.ID().String())).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDraftOrderCommandHandler(factory)
	orderID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, orderID.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDraftOrderCommandHandler_Handle_LostCreationRace(t *testing.T) {
	ctx := t.Context()
	client := newActorWithRole(t, auth.RoleClient)
	cmd, _ := commands.NewCreateDraftOrderCommand(client)
	winner := newDraftFor(t, client.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	retryUow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetDraftByClient", mock.Anything, client.ID()).
			Return(nil, errs.NewObjectNotFoundError("clientId", client.ID().String())).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errs.NewConflictError("clientId")).Once(),
		retryUow.On("Begin", ctx).Return(nil).Once(),
		retryUow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetDraftByClient", mock.Anything, client.ID()).Return(winner, nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil)
	retryUow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(retryUow).Once()

	h := commands.NewCreateDraftOrderCommandHandler(factory)
	orderID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, orderID.IsEqual(winner.ID()))
	repo.AssertExpectations(t)
}

func TestCreateDraftOrderCommandHandler_Handle_ForbiddenForCook(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateDraftOrderCommand(newActorWithRole(t, auth.RoleCook))

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateDraftOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDraftOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateDraftOrderCommand(newActorWithRole(t, auth.RoleClient))

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDraftOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateDraftOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateDraftOrderCommand

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateDraftOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
