package commands

import (
	"context"
	"time"
)

// RemoveStaleDraftsCommandHandler handles scheduled cleanup of abandoned
// carts. Carts are soft-deleted so clients simply start a fresh one on
// their next visit.
type RemoveStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveStaleDraftsCommandHandler creates a handler for cart cleanup.
func NewRemoveStaleDraftsCommandHandler(uowFactory OrderUoWFactory) RemoveStaleDraftsCommandHandler {
	return RemoveStaleDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes stale carts and returns how many were affected.
func (h *RemoveStaleDraftsCommandHandler) Handle(
	ctx context.Context, cmd RemoveStaleDraftsCommand,
) (int, error) {
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

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	affected, err := uow.OrderRepository().MarkStaleDraftsDeleted(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}
