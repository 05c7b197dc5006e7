package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// GetOrdersQueryHandler lists orders straight from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing: role scoping and filters are applied in SQL,
// lines are fetched in one follow-up query and nested into their orders.
// Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.queryOrders(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachLines(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) queryOrders(
	ctx context.Context, query GetOrdersQuery,
) ([]GetOrdersQueryResponse, map[uuid.UUID]int, error) {
	where := "1=1"
	args := make([]interface{}, 0, 6)

	switch query.Actor().Role() {
	case auth.RoleClient:
		where += " AND client_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	case auth.RoleCook:
		// A cook sees only formed orders holding at least one line whose
		// product is assigned to them.
		where += ` AND status = ? AND EXISTS (
			SELECT 1
			FROM order_lines l
			JOIN products p ON p.id = l.product_id
			WHERE l.order_id = orders.id AND p.cook_id = ?
		)`
		args = append(args, order.StatusFormed.String(), query.Actor().ID().Bytes())
	case auth.RoleManager, auth.RoleAdmin:
	}

	filters := query.Filters()
	if filters.Status != nil {
		where += " AND status = ?"
		args = append(args, filters.Status.String())
	} else {
		where += " AND status <> ?"
		args = append(args, order.StatusDeleted.String())
	}
	if filters.FormedFrom != nil {
		where += " AND formed_at >= ?"
		args = append(args, *filters.FormedFrom)
	}
	if filters.FormedTo != nil {
		where += " AND formed_at <= ?"
		args = append(args, *filters.FormedTo)
	}
	if filters.ClientName != nil {
		where += " AND client_name = ?"
		args = append(args, *filters.ClientName)
	}
	if filters.ManagerName != nil {
		where += " AND manager_name = ?"
		args = append(args, *filters.ManagerName)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			client_id,
			client_name,
			COALESCE(manager_name, ''),
			created_at,
			formed_at,
			completed_at
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var response GetOrdersQueryResponse
		var id, clientID uuid.UUID
		var formedAt, completedAt *time.Time

		err = rows.Scan(
			&id,
			&response.Status,
			&clientID,
			&response.ClientName,
			&response.ManagerName,
			&response.CreatedAt,
			&formedAt,
			&completedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}
		if response.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, nil, err
		}
		response.FormedAt = formedAt
		response.CompletedAt = completedAt
		response.Lines = make([]OrderLineResponse, 0)

		index[id] = len(orders)
		orders = append(orders, response)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetOrdersQueryHandler) attachLines(
	ctx context.Context, orders []GetOrdersQueryResponse, index map[uuid.UUID]int,
) error {
	orderIDs := make([]uuid.UUID, 0, len(index))
	for id := range index {
		orderIDs = append(orderIDs, id)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			l.product_id,
			p.name,
			l.quantity,
			l.prepared
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id IN ?
		ORDER BY p.name
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var orderID, productID uuid.UUID

		err = rows.Scan(
			&orderID,
			&productID,
			&line.ProductName,
			&line.Quantity,
			&line.Prepared,
		)
		if err != nil {
			return err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		line.Complete = line.Prepared >= line.Quantity

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Lines = append(orders[i].Lines, line)
	}
	return rows.Err()
}
