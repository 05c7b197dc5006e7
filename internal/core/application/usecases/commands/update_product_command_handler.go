package commands

import (
	"context"

	"kitchen/internal/core/domain/model/product"
	"kitchen/internal/core/domain/services"
)

// UpdateProductCommandHandler handles partial catalog updates.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateProductCommandHandler creates a handler for catalog updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle applies the requested changes to the product.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	if err = h.apply(aggregate, cmd); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateProductCommandHandler) apply(aggregate *product.Product, cmd UpdateProductCommand) error {
	if cmd.Name() != nil {
		if err := aggregate.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Price() != nil {
		if err := aggregate.ChangePrice(*cmd.Price()); err != nil {
			return err
		}
	}
	if cmd.Description() != nil {
		aggregate.ChangeDescription(*cmd.Description())
	}
	if cmd.ClearCook() {
		aggregate.UnassignCook()
	} else if cmd.CookID() != nil {
		if err := aggregate.AssignCook(*cmd.CookID()); err != nil {
			return err
		}
	}
	if cmd.IsVegetarian() != nil {
		aggregate.SetVegetarian(*cmd.IsVegetarian())
	}
	return nil
}
