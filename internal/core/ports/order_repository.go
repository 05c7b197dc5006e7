// Package ports defines the persistence and session contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their lines.
//
// Concurrency contract: line mutations racing on the same (order, product)
// pair are serialized through GetLineForUpdate, which acquires a row-level
// lock held until the surrounding transaction ends. Creation races on the
// same pair surface as a ConflictError from AddLine, which callers resolve
// by retrying the whole transaction.
type OrderRepository interface {
	// Add persists a new order aggregate. A second Draft for the same client
	// violates the one-active-cart constraint and returns a ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, manager, and timestamp changes of an existing
	// order. Lines are persisted through the line methods below.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with all its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetDraftByClient retrieves the client's active cart, or an
	// ObjectNotFoundError when the client has none.
	GetDraftByClient(ctx context.Context, clientID kernel.UUID) (*order.Order, error)

	// Delete removes the order row outright, lines cascading with it. Used
	// when a cart is emptied: unlike the soft delete of formed orders, an
	// emptied cart leaves no trace and a later Get returns an
	// ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// AddLine persists a new line. A line for the same (order, product) pair
	// already existing returns a ConflictError.
	AddLine(ctx context.Context, line *order.Line) error

	// IncrementLineQuantity atomically raises the ordered quantity of the
	// line for the given (order, product) pair. Returns an
	// ObjectNotFoundError when no such line exists.
	IncrementLineQuantity(ctx context.Context, orderID, productID kernel.UUID, delta int) error

	// GetLineForUpdate retrieves the line for the given (order, product)
	// pair, acquiring a row-level lock held until the transaction ends.
	// Must be called inside an active transaction.
	GetLineForUpdate(ctx context.Context, orderID, productID kernel.UUID) (*order.Line, error)

	// UpdateLine persists quantity and prepared changes of an existing line.
	UpdateLine(ctx context.Context, line *order.Line) error

	// DeleteLine removes a line from its order.
	DeleteLine(ctx context.Context, id kernel.UUID) error

	// CountLines returns how many lines the order currently has.
	CountLines(ctx context.Context, orderID kernel.UUID) (int, error)

	// MarkStaleDraftsDeleted soft-deletes Draft orders created before the
	// cutoff and returns how many were affected.
	MarkStaleDraftsDeleted(ctx context.Context, cutoff time.Time) (int, error)
}
