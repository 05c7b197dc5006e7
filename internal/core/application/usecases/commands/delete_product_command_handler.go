package commands

import (
	"context"

	"kitchen/internal/core/domain/services"
)

// DeleteProductCommandHandler handles soft deletion of catalog products.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteProductCommandHandler creates a handler for catalog deletions.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle soft-deletes the product. Deleting twice is a no-op.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageCatalog(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	aggregate.MarkDeleted()

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
