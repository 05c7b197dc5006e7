package commands

import (
	"context"
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"
)

// CreateDraftOrderCommandHandler handles get-or-create of a client's cart.
//
// Two requests racing to create the first cart for the same client are
// resolved by the one-draft-per-client uniqueness constraint: the loser
// receives a ConflictError from Add and re-reads the winner's cart.
type CreateDraftOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCreateDraftOrderCommandHandler creates a handler for cart creation.
func NewCreateDraftOrderCommandHandler(uowFactory OrderUoWFactory) CreateDraftOrderCommandHandler {
	return CreateDraftOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle returns the identifier of the actor's active cart, creating a new
// Draft order when none exists.
func (h *CreateDraftOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateDraftOrderCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := h.policy.CanAssembleDraft(cmd.Actor()); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.GetDraftByClient(ctx, cmd.Actor().ID())
	if err == nil {
		return existing.ID(), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	draft, err := order.NewDraftOrder(
		kernel.NewUUID(), cmd.Actor().ID(), cmd.Actor().Name(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Add(ctx, draft); err != nil {
		// Lost a creation race: another request inserted the cart first.
		// The transaction is aborted at this point, so re-read in a new one.
		if errors.Is(err, errs.ErrConflict) {
			_ = uow.Rollback(ctx)
			return h.getExistingDraft(ctx, cmd)
		}
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return draft.ID(), nil
}

func (h *CreateDraftOrderCommandHandler) getExistingDraft(
	ctx context.Context, cmd CreateDraftOrderCommand,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	winner, err := uow.OrderRepository().GetDraftByClient(ctx, cmd.Actor().ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	return winner.ID(), nil
}
