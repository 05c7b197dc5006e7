package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, including the soft
	// delete flag.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier. Soft-deleted
	// products are still retrievable so historical order lines resolve.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
