package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrAddProductToDraftCommandIsNotConstructed = errors.New(
	"AddProductToDraftCommand must be created via NewAddProductToDraftCommand constructor",
)

// AddProductToDraftCommand represents a request to put quantity units of a
// product into the actor's cart. The cart is created on first use; repeated
// additions of the same product accumulate on a single line.
type AddProductToDraftCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Actor
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddProductToDraftCommand creates a command to add a product to the cart.
// Validates that the product identifier is set and quantity is positive.
func NewAddProductToDraftCommand(
	actor auth.Actor, productID kernel.UUID, quantity int,
) (AddProductToDraftCommand, error) {
	cmd := AddProductToDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddProductToDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductToDraftCommand) Validate() error {
	return c.guard.Validate(ErrAddProductToDraftCommandIsNotConstructed)
}

// Actor returns the authenticated actor assembling the cart.
func (c AddProductToDraftCommand) Actor() auth.Actor {
	return c.actor
}

// ProductID returns the catalog product being added.
func (c AddProductToDraftCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns how many units to add.
func (c AddProductToDraftCommand) Quantity() int {
	return c.quantity
}

func (c *AddProductToDraftCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddProductToDraftCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductToDraftCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
