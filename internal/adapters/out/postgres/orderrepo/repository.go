package orderrepo

import (
	"context"
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Unique constraints do the concurrency heavy lifting: the partial index on
// orders(client_id) for Drafts and the (order_id, product_id) index on lines
// both surface as gorm.ErrDuplicatedKey, which is translated to a
// ConflictError so callers can retry.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, lines included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves status, manager, and timestamp changes of an existing order.
// Lines are persisted through the line methods.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Omit(clause.Associations).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with all its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDraftByClient retrieves the client's active cart with its lines.
func (r *GormOrderRepository) GetDraftByClient(
	ctx context.Context, clientID kernel.UUID,
) (*order.Order, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&dto, "client_id = ? AND status = ?", clientID.Bytes(), order.StatusDraft.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draft order", clientID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order row outright; the foreign key cascade takes the
// lines with it.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// AddLine saves a new order line to the database.
func (r *GormOrderRepository) AddLine(ctx context.Context, line *order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(line)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order line", err)
		}
		return err
	}

	return nil
}

// IncrementLineQuantity atomically raises the ordered quantity of the line
// for the given (order, product) pair.
func (r *GormOrderRepository) IncrementLineQuantity(
	ctx context.Context, orderID, productID kernel.UUID, delta int,
) error {
	result := r.db.WithContext(ctx).
		Model(&LineDTO{}).
		Where("order_id = ? AND product_id = ?", orderID.Bytes(), productID.Bytes()).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order line", productID.String())
	}

	return nil
}

// GetLineForUpdate retrieves the line for the given (order, product) pair,
// acquiring a row-level lock held until the surrounding transaction ends.
func (r *GormOrderRepository) GetLineForUpdate(
	ctx context.Context, orderID, productID kernel.UUID,
) (*order.Line, error) {
	var dto LineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "order_id = ? AND product_id = ?", orderID.Bytes(), productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order line", productID.String())
		}
		return nil, err
	}

	return lineToDomain(dto)
}

// UpdateLine saves quantity and prepared changes of an existing line.
// A column map is used so prepared can be written back to zero.
func (r *GormOrderRepository) UpdateLine(ctx context.Context, line *order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&LineDTO{}).
		Where("id = ?", line.ID().Bytes()).
		UpdateColumns(map[string]any{
			"quantity": line.Quantity(),
			"prepared": line.Prepared(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteLine removes a line from its order.
func (r *GormOrderRepository) DeleteLine(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LineDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order line", id.String())
	}

	return nil
}

// CountLines returns how many lines the order currently has.
func (r *GormOrderRepository) CountLines(ctx context.Context, orderID kernel.UUID) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&LineDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// MarkStaleDraftsDeleted soft-deletes Draft orders created before the cutoff.
func (r *GormOrderRepository) MarkStaleDraftsDeleted(
	ctx context.Context, cutoff time.Time,
) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND created_at < ?", order.StatusDraft.String(), cutoff).
		Update("status", order.StatusDeleted.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
