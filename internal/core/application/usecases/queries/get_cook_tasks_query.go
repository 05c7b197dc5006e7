package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/guard"
)

var ErrGetCookTasksQueryIsNotConstructed = errors.New(
	"GetCookTasksQuery must be created via NewGetCookTasksQuery constructor",
)

// GetCookTasksQuery retrieves the preparation backlog: lines of formed
// orders that still have units left to prepare. Cooks see only lines whose
// product is assigned to them; admins see the whole backlog.
type GetCookTasksQuery struct {
	actor auth.Actor

	guard guard.ConstructorGuard
}

// NewGetCookTasksQuery creates a query to list the actor's preparation
// backlog. Only cooks and admins may view it.
func NewGetCookTasksQuery(actor auth.Actor) (GetCookTasksQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCookTasksQuery{}, err
	}
	if err := services.NewAccessPolicy().CanViewCookTasks(actor); err != nil {
		return GetCookTasksQuery{}, err
	}

	return GetCookTasksQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCookTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetCookTasksQueryIsNotConstructed)
}

// Actor returns the actor the backlog is scoped to.
func (q GetCookTasksQuery) Actor() auth.Actor {
	return q.actor
}

// GetCookTasksQueryResponse represents one unit of pending work: a partially
// prepared line of a formed order.
type GetCookTasksQueryResponse struct {
	OrderID     kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	Prepared    int
	Remaining   int
	FormedAt    time.Time
}
