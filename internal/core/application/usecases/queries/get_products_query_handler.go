package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
)

// GetProductsQueryHandler lists catalog products from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listing queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the listing, cheapest products first.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "is_deleted = FALSE"
	args := make([]interface{}, 0, 3)

	if query.Actor().Role() == auth.RoleCook {
		where += " AND cook_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	}

	filters := query.Filters()
	if filters.NameContains != nil {
		where += " AND name ILIKE ?"
		args = append(args, "%"+*filters.NameContains+"%")
	}
	if filters.IsVegetarian != nil {
		where += " AND is_vegetarian = ?"
		args = append(args, *filters.IsVegetarian)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			description,
			cook_id,
			is_vegetarian
		FROM products
		WHERE `+where+`
		ORDER BY price, name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsQueryResponse, 0)

	for rows.Next() {
		var response GetProductsQueryResponse
		var id uuid.UUID
		var cookID *uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Price,
			&response.Description,
			&cookID,
			&response.IsVegetarian,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if cookID != nil {
			cook, idErr := kernel.UUIDFromBytes(cookID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.CookID = &cook
		}

		products = append(products, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
