package commands

import (
	"context"
	"fmt"
	"time"

	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"
)

// FormOrderCommandHandler handles cart submission: Draft -> Formed.
// Once formed, the order's lines appear in the kitchen's task list and the
// cart can no longer be modified.
type FormOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewFormOrderCommandHandler creates a handler for forming orders.
func NewFormOrderCommandHandler(uowFactory OrderUoWFactory) FormOrderCommandHandler {
	return FormOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle forms the order, recording the formation timestamp. An empty cart
// cannot be formed.
func (h *FormOrderCommandHandler) Handle(ctx context.Context, cmd FormOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanFormOrder(cmd.Actor(), aggregate); err != nil {
		return err
	}

	if len(aggregate.Lines()) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s has no items", aggregate.ID()))
	}

	if err = aggregate.Form(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
