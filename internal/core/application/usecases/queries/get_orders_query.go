// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersFilters narrows the order listing. Nil fields are not applied.
// Name filters match exactly; the timestamp range applies to the formation
// time.
type GetOrdersFilters struct {
	Status      *order.Status
	FormedFrom  *time.Time
	FormedTo    *time.Time
	ClientName  *string
	ManagerName *string
}

// GetOrdersQuery retrieves orders visible to the actor, with their lines.
//
// Visibility by role:
//   - CLIENT: own orders only
//   - COOK: formed orders only
//   - MANAGER, ADMIN: all orders
//
// Deleted orders are excluded unless explicitly requested through the
// status filter.
type GetOrdersQuery struct {
	actor   auth.Actor
	filters GetOrdersFilters

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list the actor's visible orders.
func NewGetOrdersQuery(actor auth.Actor, filters GetOrdersFilters) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if filters.Status != nil {
		if err := filters.Status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actor:   actor,
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the actor the listing is scoped to.
func (q GetOrdersQuery) Actor() auth.Actor {
	return q.actor
}

// Filters returns the requested narrowing filters.
func (q GetOrdersQuery) Filters() GetOrdersFilters {
	return q.filters
}

// OrderLineResponse represents one order line in the read model.
type OrderLineResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	Prepared    int
	Complete    bool
}

// GetOrdersQueryResponse represents one order with its lines.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	Status      string
	ClientID    kernel.UUID
	ClientName  string
	ManagerName string
	CreatedAt   time.Time
	FormedAt    *time.Time
	CompletedAt *time.Time
	Lines       []OrderLineResponse
}
