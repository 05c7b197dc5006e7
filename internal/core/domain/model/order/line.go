package order

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line associates one catalog product with one order, tracking how many
// units were ordered and how many the kitchen has prepared so far.
//
// Invariants:
//   - quantity is positive
//   - prepared is non-negative and never exceeds quantity
//   - at most one Line exists per (order, product) pair; repeated additions
//     of the same product increase quantity instead of creating a new Line
//     (the uniqueness itself is enforced by the storage layer)
//
// Concurrent mutations of the same Line are serialized by a row-level lock
// held for the duration of the read-check-write; see the repository
// contract.
type Line struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int
	prepared  int

	isConstructed bool
}

// NewLine creates a line for a newly added product with nothing prepared yet.
func NewLine(id, orderID, productID kernel.UUID, quantity int) (*Line, error) {
	line := &Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setOrderID(orderID),
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence, re-validating the
// prepared <= quantity invariant.
func RestoreLine(id, orderID, productID kernel.UUID, quantity, prepared int) (*Line, error) {
	line, err := NewLine(id, orderID, productID, quantity)
	if err != nil {
		return nil, err
	}

	if prepared < 0 || prepared > quantity {
		return nil, errs.NewValueIsOutOfRangeError("prepared", prepared, 0, quantity)
	}

	line.prepared = prepared
	return line, nil
}

// IsEqual compares two lines by identifier.
func (l *Line) IsEqual(other *Line) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// Validate ensures the Line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// OrderID returns the owning order's identifier.
func (l *Line) OrderID() kernel.UUID {
	return l.orderID
}

// ProductID returns the referenced product's identifier.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns how many units were ordered.
func (l *Line) Quantity() int {
	return l.quantity
}

// Prepared returns how many units the kitchen has prepared.
func (l *Line) Prepared() int {
	return l.prepared
}

// IsComplete reports whether the prepared count meets the ordered quantity.
func (l *Line) IsComplete() bool {
	return l.prepared >= l.quantity
}

// Remaining returns how many units are still to be prepared.
func (l *Line) Remaining() int {
	return l.quantity - l.prepared
}

// IncreaseQuantity raises the ordered quantity by delta. There is no upper
// bound: repeated additions of the same product accumulate freely.
func (l *Line) IncreaseQuantity(delta int) error {
	if delta <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", delta))
	}
	l.quantity += delta
	return nil
}

// DecreaseQuantity lowers the ordered quantity by one. A line with quantity
// 1 cannot be decreased; it must be removed from the order instead.
func (l *Line) DecreaseQuantity() error {
	if l.quantity <= 1 {
		return errs.NewValueIsOutOfRangeError("quantity", l.quantity-1, 1, l.quantity)
	}
	if l.prepared >= l.quantity {
		// Cannot take away a unit the kitchen already prepared.
		return errs.NewValueIsOutOfRangeError("quantity", l.quantity-1, l.prepared, l.quantity)
	}
	l.quantity--
	return nil
}

// IncrementPrepared records one more prepared unit. When the line is
// already complete it returns an AlreadyCompleteError and mutates nothing;
// callers treat that as a benign rejection.
func (l *Line) IncrementPrepared() error {
	if l.prepared >= l.quantity {
		return errs.NewAlreadyCompleteError(fmt.Sprintf("order line %s", l.id))
	}
	l.prepared++
	return nil
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
