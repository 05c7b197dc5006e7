package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// GetCookTasksQueryHandler lists the preparation backlog straight from the
// database.
type GetCookTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetCookTasksQueryHandler creates a handler for backlog queries.
func NewGetCookTasksQueryHandler(db *gorm.DB) GetCookTasksQueryHandler {
	return GetCookTasksQueryHandler{db: db}
}

// Handle executes the listing: oldest formed orders first, so the backlog
// reads top to bottom as a work queue.
func (h GetCookTasksQueryHandler) Handle(
	ctx context.Context,
	query GetCookTasksQuery,
) ([]GetCookTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "o.status = ? AND l.prepared < l.quantity"
	args := []interface{}{order.StatusFormed.String()}

	if query.Actor().Role() == auth.RoleCook {
		where += " AND p.cook_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			l.product_id,
			p.name,
			l.quantity,
			l.prepared,
			o.formed_at
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		JOIN products p ON p.id = l.product_id
		WHERE `+where+`
		ORDER BY o.formed_at, p.name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]GetCookTasksQueryResponse, 0)

	for rows.Next() {
		var task GetCookTasksQueryResponse
		var orderID, productID uuid.UUID

		err = rows.Scan(
			&orderID,
			&productID,
			&task.ProductName,
			&task.Quantity,
			&task.Prepared,
			&task.FormedAt,
		)
		if err != nil {
			return nil, err
		}

		if task.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if task.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		task.Remaining = task.Quantity - task.Prepared

		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
