package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrIncrementPreparedCommandIsNotConstructed = errors.New(
	"IncrementPreparedCommand must be created via NewIncrementPreparedCommand constructor",
)

// IncrementPreparedCommand represents a cook recording one finished unit of
// a product on an order.
type IncrementPreparedCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Actor
	orderID   kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIncrementPreparedCommand creates a command to record a prepared unit.
func NewIncrementPreparedCommand(
	actor auth.Actor, orderID, productID kernel.UUID,
) (IncrementPreparedCommand, error) {
	cmd := IncrementPreparedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return IncrementPreparedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IncrementPreparedCommand) Validate() error {
	return c.guard.Validate(ErrIncrementPreparedCommandIsNotConstructed)
}

// Actor returns the cook recording the unit.
func (c IncrementPreparedCommand) Actor() auth.Actor {
	return c.actor
}

// OrderID returns the order being worked on.
func (c IncrementPreparedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product that was prepared.
func (c IncrementPreparedCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *IncrementPreparedCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *IncrementPreparedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *IncrementPreparedCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
