// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored by its canonical name so raw read-side queries stay
// legible. A partial unique index on client_id, created at migration time,
// enforces one Draft per client; GORM tags cannot express partial indexes.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status      string    `gorm:"type:varchar(16);index"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	ClientName  string
	ManagerID   *uuid.UUID `gorm:"type:uuid"`
	ManagerName *string
	CreatedAt   time.Time
	FormedAt    *time.Time
	CompletedAt *time.Time

	Lines []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line. The unique index over (order_id,
// product_id) turns concurrent creation of the same line into a duplicated
// key error instead of a silent double row.
type LineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_order_product"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_order_product"`
	Quantity  int
	Prepared  int
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var managerID *uuid.UUID
	if id := aggregate.Manager(); id != nil {
		raw := id.Bytes()
		managerID = &raw
	}

	var managerName *string
	if name := aggregate.ManagerName(); name != "" {
		managerName = &name
	}

	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Status:      aggregate.Status().String(),
		ClientID:    aggregate.Client().Bytes(),
		ClientName:  aggregate.ClientName(),
		ManagerID:   managerID,
		ManagerName: managerName,
		CreatedAt:   aggregate.CreatedAt(),
		FormedAt:    aggregate.FormedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}

	for _, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, lineFromDomain(line))
	}

	return dto
}

func lineFromDomain(line *order.Line) LineDTO {
	return LineDTO{
		ID:        line.ID().Bytes(),
		OrderID:   line.OrderID().Bytes(),
		ProductID: line.ProductID().Bytes(),
		Quantity:  line.Quantity(),
		Prepared:  line.Prepared(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var managerID *kernel.UUID
	if dto.ManagerID != nil {
		mID, managerErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if managerErr != nil {
			return nil, managerErr
		}

		managerID = &mID
	}

	var managerName string
	if dto.ManagerName != nil {
		managerName = *dto.ManagerName
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		clientID,
		dto.ClientName,
		managerID,
		managerName,
		status,
		dto.CreatedAt,
		dto.FormedAt,
		dto.CompletedAt,
		lines,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, orderID, productID, dto.Quantity, dto.Prepared)
}
