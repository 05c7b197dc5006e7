package order

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewDraftOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraftOrder constructor")

	// ErrClientNameIsRequired is returned when the client display name is empty.
	ErrClientNameIsRequired = errors.New("client name is required")

	// ErrManagerNameIsRequired is returned when a finalizing manager has no name.
	ErrManagerNameIsRequired = errors.New("manager name is required")
)

// Order is the aggregate root for a customer order. It owns its Lines and
// the lifecycle state machine.
//
// Invariants:
//   - id and client reference are constructed UUIDs, set once at creation
//   - creationAt is set once, at creation
//   - formedAt is set exactly when Draft transitions to Formed
//   - completedAt and the manager reference are set together, exactly when
//     Formed transitions to Completed or Rejected
//   - status transitions follow the Status state machine; a failed
//     transition leaves the order unchanged
//
// A client has at most one Draft order at a time (the active cart); that
// uniqueness is enforced by the storage layer.
type Order struct {
	id          kernel.UUID
	status      Status
	clientID    kernel.UUID
	clientName  string
	managerID   *kernel.UUID
	managerName string
	createdAt   time.Time
	formedAt    *time.Time
	completedAt *time.Time
	lines       []*Line

	isConstructed bool
}

// NewDraftOrder creates a client's new empty cart in Draft status.
// The client's display name is recorded on the order so listings can filter
// by it without consulting the external user service.
func NewDraftOrder(id, clientID kernel.UUID, clientName string, now time.Time) (*Order, error) {
	o := &Order{
		status:        StatusDraft,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClient(clientID, clientName),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state,
// re-validating status and timestamp consistency.
func RestoreOrder(
	id, clientID kernel.UUID,
	clientName string,
	managerID *kernel.UUID,
	managerName string,
	status Status,
	createdAt time.Time,
	formedAt, completedAt *time.Time,
	lines []*Line,
) (*Order, error) {
	o, err := NewDraftOrder(id, clientID, clientName, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if managerID != nil {
		if err = managerID.Validate(); err != nil {
			return nil, err
		}
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.managerID = managerID
	o.managerName = managerName
	o.formedAt = formedAt
	o.completedAt = completedAt
	o.lines = lines
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Client returns the ordering client's identifier.
func (o *Order) Client() kernel.UUID {
	return o.clientID
}

// ClientName returns the ordering client's display name.
func (o *Order) ClientName() string {
	return o.clientName
}

// Manager returns the finalizing manager's identifier, or nil while the
// order has not been completed or rejected.
func (o *Order) Manager() *kernel.UUID {
	return o.managerID
}

// ManagerName returns the finalizing manager's display name ("" while unset).
func (o *Order) ManagerName() string {
	return o.managerName
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// FormedAt returns the formation timestamp, or nil while in Draft.
func (o *Order) FormedAt() *time.Time {
	return o.formedAt
}

// CompletedAt returns the completion/rejection timestamp, or nil until a
// manager finalizes the order.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Lines returns the order's line items.
func (o *Order) Lines() []*Line {
	return o.lines
}

// IsOwnedBy reports whether the given client created this order.
func (o *Order) IsOwnedBy(clientID kernel.UUID) bool {
	return o.clientID.IsEqual(clientID)
}

// Form submits the cart for fulfillment: Draft -> Formed, recording the
// formation timestamp. Any other current status fails with an
// InvalidTransitionError and no mutation.
func (o *Order) Form(now time.Time) error {
	newStatus, err := o.status.Form()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.formedAt = &now
	return nil
}

// Complete finalizes a formed order: Formed -> Completed. The completion
// timestamp and the acting manager are recorded atomically with the status
// change; a failed transition records neither.
func (o *Order) Complete(managerID kernel.UUID, managerName string, now time.Time) error {
	return o.finalize(managerID, managerName, now, Status.Complete)
}

// Reject declines a formed order: Formed -> Rejected, with the same side
// effects as Complete.
func (o *Order) Reject(managerID kernel.UUID, managerName string, now time.Time) error {
	return o.finalize(managerID, managerName, now, Status.Reject)
}

// MarkDeleted soft-deletes the order from any non-terminal status.
func (o *Order) MarkDeleted() error {
	newStatus, err := o.status.Delete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) finalize(
	managerID kernel.UUID,
	managerName string,
	now time.Time,
	transition func(Status) (Status, error),
) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	if managerName == "" {
		return ErrManagerNameIsRequired
	}

	newStatus, err := transition(o.status)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.managerID = &managerID
	o.managerName = managerName
	o.completedAt = &now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(clientID kernel.UUID, clientName string) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	if clientName == "" {
		return ErrClientNameIsRequired
	}
	o.clientID = clientID
	o.clientName = clientName
	return nil
}
