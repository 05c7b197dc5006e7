package commands

import (
	"context"

	"kitchen/internal/core/domain/model/product"
	"kitchen/internal/core/domain/services"
)

// CreateProductCommandHandler handles catalog additions.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AccessPolicy
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle creates the product in the catalog.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageCatalog(cmd.Actor()); err != nil {
		return err
	}

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return err
	}

	if cmd.CookID() != nil {
		if err = aggregate.AssignCook(*cmd.CookID()); err != nil {
			return err
		}
	}
	if cmd.IsVegetarian() != nil {
		aggregate.SetVegetarian(*cmd.IsVegetarian())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
