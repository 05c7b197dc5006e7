package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsFilters narrows the catalog listing. Nil fields are not
// applied. NameContains matches a case-insensitive substring.
type GetProductsFilters struct {
	NameContains *string
	IsVegetarian *bool
}

// GetProductsQuery retrieves catalog products visible to the actor.
// Cooks see only the items assigned to them; everyone else sees the whole
// non-deleted catalog.
type GetProductsQuery struct {
	actor   auth.Actor
	filters GetProductsFilters

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list catalog products.
func NewGetProductsQuery(actor auth.Actor, filters GetProductsFilters) (GetProductsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetProductsQuery{}, err
	}

	return GetProductsQuery{
		actor:   actor,
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Actor returns the actor the listing is scoped to.
func (q GetProductsQuery) Actor() auth.Actor {
	return q.actor
}

// Filters returns the requested narrowing filters.
func (q GetProductsQuery) Filters() GetProductsFilters {
	return q.filters
}

// GetProductsQueryResponse represents one catalog product in the read model.
type GetProductsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Price        decimal.Decimal
	Description  string
	CookID       *kernel.UUID
	IsVegetarian *bool
}
