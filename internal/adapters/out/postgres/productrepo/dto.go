// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog
// products. Deletion is a flag rather than a row removal so historical order
// lines keep resolving to a name and price.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Description  string
	CookID       *uuid.UUID `gorm:"type:uuid;index"`
	IsVegetarian *bool
	IsDeleted    bool
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	var cookID *uuid.UUID
	if id := aggregate.Cook(); id != nil {
		raw := id.Bytes()
		cookID = &raw
	}

	return ProductDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Price:        aggregate.Price(),
		Description:  aggregate.Description(),
		CookID:       cookID,
		IsVegetarian: aggregate.IsVegetarian(),
		IsDeleted:    aggregate.IsDeleted(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var cookID *kernel.UUID
	if dto.CookID != nil {
		cID, cookErr := kernel.UUIDFromBytes((*dto.CookID)[:])
		if cookErr != nil {
			return nil, cookErr
		}

		cookID = &cID
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Price,
		dto.Description,
		cookID,
		dto.IsDeleted,
		dto.IsVegetarian,
	)
}
