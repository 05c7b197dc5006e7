package commands

import (
	"context"

	"kitchen/internal/core/domain/services"
)

// IncrementPreparedResult is the line's state after recording a unit.
type IncrementPreparedResult struct {
	Prepared  int
	Quantity  int
	Remaining int
	Complete  bool
}

// IncrementPreparedCommandHandler handles recording prepared units.
//
// The line row is locked for the whole read-check-write, so concurrent
// cooks reporting the same line serialize: each increment lands exactly
// once and the prepared count never exceeds the ordered quantity. An
// increment against an already complete line fails with an
// AlreadyCompleteError and changes nothing; callers treat it as benign.
type IncrementPreparedCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewIncrementPreparedCommandHandler creates a handler for recording
// prepared units.
func NewIncrementPreparedCommandHandler(uowFactory OrderUoWFactory) IncrementPreparedCommandHandler {
	return IncrementPreparedCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle records one prepared unit and returns the line's resulting counts.
func (h *IncrementPreparedCommandHandler) Handle(
	ctx context.Context, cmd IncrementPreparedCommand,
) (IncrementPreparedResult, error) {
	if err := cmd.Validate(); err != nil {
		return IncrementPreparedResult{}, err
	}

	if err := h.policy.CanIncrementPrepared(cmd.Actor()); err != nil {
		return IncrementPreparedResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return IncrementPreparedResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	line, err := orderRepo.GetLineForUpdate(ctx, cmd.OrderID(), cmd.ProductID())
	if err != nil {
		return IncrementPreparedResult{}, err
	}

	if err = line.IncrementPrepared(); err != nil {
		return IncrementPreparedResult{}, err
	}

	if err = orderRepo.UpdateLine(ctx, line); err != nil {
		return IncrementPreparedResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return IncrementPreparedResult{}, err
	}

	return IncrementPreparedResult{
		Prepared:  line.Prepared(),
		Quantity:  line.Quantity(),
		Remaining: line.Remaining(),
		Complete:  line.IsComplete(),
	}, nil
}
