package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrRemoveProductFromDraftCommandIsNotConstructed = errors.New(
	"RemoveProductFromDraftCommand must be created via NewRemoveProductFromDraftCommand constructor",
)

// RemoveProductFromDraftCommand represents a request to take one unit of a
// product out of a cart.
type RemoveProductFromDraftCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Actor
	orderID   kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductFromDraftCommand creates a command to remove a product
// unit from the given cart.
func NewRemoveProductFromDraftCommand(
	actor auth.Actor, orderID, productID kernel.UUID,
) (RemoveProductFromDraftCommand, error) {
	cmd := RemoveProductFromDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveProductFromDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductFromDraftCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductFromDraftCommandIsNotConstructed)
}

// Actor returns the authenticated actor modifying the cart.
func (c RemoveProductFromDraftCommand) Actor() auth.Actor {
	return c.actor
}

// OrderID returns the cart being modified.
func (c RemoveProductFromDraftCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product being removed.
func (c RemoveProductFromDraftCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveProductFromDraftCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RemoveProductFromDraftCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveProductFromDraftCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
