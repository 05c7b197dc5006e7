package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// RemoveProductResult reports how a removal resolved.
type RemoveProductResult int

const (
	// ProductRemoved means one unit was taken off the line: the quantity was
	// decremented, or the whole line deleted when only one unit remained.
	ProductRemoved RemoveProductResult = iota + 1

	// OrderRemoved means the removed line was the cart's last one, so the
	// emptied cart was deleted outright. A later lookup of the order fails
	// with an ObjectNotFoundError.
	OrderRemoved
)

// RemoveProductFromDraftCommandHandler handles taking product units out of
// a cart.
//
// Removal semantics:
//   - quantity > 1: decrement the quantity by one
//   - quantity == 1: delete the line
//   - last line deleted: delete the emptied cart's row too, lines cascading
//
// The line row is locked for the read-check-write, so a removal racing a
// quantity increment on the same line serializes instead of losing updates.
type RemoveProductFromDraftCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewRemoveProductFromDraftCommandHandler creates a handler for cart removals.
func NewRemoveProductFromDraftCommandHandler(
	uowFactory OrderUoWFactory,
) RemoveProductFromDraftCommandHandler {
	return RemoveProductFromDraftCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle removes one unit of the product from the cart and reports whether
// the cart itself was removed.
func (h *RemoveProductFromDraftCommandHandler) Handle(
	ctx context.Context, cmd RemoveProductFromDraftCommand,
) (RemoveProductResult, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	draft, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if err = h.policy.CanModifyDraft(cmd.Actor(), draft); err != nil {
		return 0, err
	}

	if draft.Status() != order.StatusDraft {
		return 0, errs.NewInvalidTransitionError(
			"remove product", draft.Status().String(), order.StatusDraft.String())
	}

	line, err := orderRepo.GetLineForUpdate(ctx, cmd.OrderID(), cmd.ProductID())
	if err != nil {
		return 0, err
	}

	result := ProductRemoved
	if line.Quantity() > 1 {
		if err = line.DecreaseQuantity(); err != nil {
			return 0, err
		}
		err = orderRepo.UpdateLine(ctx, line)
	} else {
		result, err = h.deleteLine(ctx, orderRepo, draft, line)
	}
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return result, nil
}

func (h *RemoveProductFromDraftCommandHandler) deleteLine(
	ctx context.Context, orderRepo ports.OrderRepository, draft *order.Order, line *order.Line,
) (RemoveProductResult, error) {
	if err := orderRepo.DeleteLine(ctx, line.ID()); err != nil {
		return 0, err
	}

	remaining, err := orderRepo.CountLines(ctx, draft.ID())
	if err != nil {
		return 0, err
	}
	if remaining > 0 {
		return ProductRemoved, nil
	}

	// Emptied cart: nothing left to order, drop the row itself so the
	// client can open a fresh cart without a DELETED remnant.
	if err = orderRepo.Delete(ctx, draft.ID()); err != nil {
		return 0, err
	}
	return OrderRemoved, nil
}
