package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrFormOrderCommandIsNotConstructed = errors.New(
	"FormOrderCommand must be created via NewFormOrderCommand constructor",
)

// FormOrderCommand represents a request to submit a cart for fulfillment.
type FormOrderCommand struct { //nolint:recvcheck //using for validation
	actor   auth.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFormOrderCommand creates a command to form the given order.
func NewFormOrderCommand(actor auth.Actor, orderID kernel.UUID) (FormOrderCommand, error) {
	cmd := FormOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return FormOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FormOrderCommand) Validate() error {
	return c.guard.Validate(ErrFormOrderCommandIsNotConstructed)
}

// Actor returns the authenticated actor forming the order.
func (c FormOrderCommand) Actor() auth.Actor {
	return c.actor
}

// OrderID returns the order being formed.
func (c FormOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FormOrderCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *FormOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
