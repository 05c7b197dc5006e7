package commands

import (
	"context"
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// maxAddAttempts bounds retries of the whole add-to-cart transaction when
// concurrent requests race on cart or line creation.
const maxAddAttempts = 3

// AddProductToDraftCommandHandler handles cart assembly.
//
// The whole operation runs in one transaction per attempt:
//  1. resolve the product (must exist and not be deleted)
//  2. get or create the actor's Draft order
//  3. raise the quantity of the (order, product) line, creating it on first
//     addition
//
// Uniqueness constraints resolve creation races: the losing request's
// transaction fails with a ConflictError and the handler retries from
// scratch, up to maxAddAttempts times. On retry the winner's row exists and
// the atomic quantity increment path is taken.
type AddProductToDraftCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewAddProductToDraftCommandHandler creates a handler for cart additions.
func NewAddProductToDraftCommandHandler(uowFactory UoWFactory) AddProductToDraftCommandHandler {
	return AddProductToDraftCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle adds the requested quantity to the actor's cart and returns the
// cart's order identifier.
func (h *AddProductToDraftCommandHandler) Handle(
	ctx context.Context, cmd AddProductToDraftCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := h.policy.CanAssembleDraft(cmd.Actor()); err != nil {
		return kernel.UUID{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxAddAttempts; attempt++ {
		orderID, err := h.handleOnce(ctx, cmd)
		if err == nil {
			return orderID, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return kernel.UUID{}, err
		}
		lastErr = err
	}

	return kernel.UUID{}, lastErr
}

func (h *AddProductToDraftCommandHandler) handleOnce(
	ctx context.Context, cmd AddProductToDraftCommand,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productAggregate, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if productAggregate.IsDeleted() {
		return kernel.UUID{}, errs.NewObjectNotFoundError("productId", cmd.ProductID().String())
	}

	orderRepo := uow.OrderRepository()

	draft, err := h.getOrCreateDraft(ctx, orderRepo, cmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.addToLine(ctx, orderRepo, draft.ID(), cmd); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return draft.ID(), nil
}

func (h *AddProductToDraftCommandHandler) getOrCreateDraft(
	ctx context.Context, repo ports.OrderRepository, cmd AddProductToDraftCommand,
) (*order.Order, error) {
	draft, err := repo.GetDraftByClient(ctx, cmd.Actor().ID())
	if err == nil {
		return draft, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	draft, err = order.NewDraftOrder(
		kernel.NewUUID(), cmd.Actor().ID(), cmd.Actor().Name(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (h *AddProductToDraftCommandHandler) addToLine(
	ctx context.Context, repo ports.OrderRepository, orderID kernel.UUID,
	cmd AddProductToDraftCommand,
) error {
	err := repo.IncrementLineQuantity(ctx, orderID, cmd.ProductID(), cmd.Quantity())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	// First addition of this product: create the line.
	line, err := order.NewLine(kernel.NewUUID(), orderID, cmd.ProductID(), cmd.Quantity())
	if err != nil {
		return err
	}
	return repo.AddLine(ctx, line)
}
