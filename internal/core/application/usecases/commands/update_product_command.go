package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a partial update of a catalog product.
// Nil fields are left unchanged; a nil cook pointer keeps the current
// assignment while AssignCook/UnassignCook semantics are expressed through
// the clearCook flag.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	actor        auth.Actor
	productID    kernel.UUID
	name         *string
	price        *decimal.Decimal
	description  *string
	cookID       *kernel.UUID
	clearCook    bool
	isVegetarian *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	actor auth.Actor,
	productID kernel.UUID,
	name *string,
	price *decimal.Decimal,
	description *string,
	cookID *kernel.UUID,
	clearCook bool,
	isVegetarian *bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		description:  description,
		clearCook:    clearCook,
		isVegetarian: isVegetarian,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCookID(cookID),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// Actor returns the staff member maintaining the catalog.
func (c UpdateProductCommand) Actor() auth.Actor {
	return c.actor
}

// ProductID returns the product being updated.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new name, or nil to keep the current one.
func (c UpdateProductCommand) Name() *string {
	return c.name
}

// Price returns the new price, or nil to keep the current one.
func (c UpdateProductCommand) Price() *decimal.Decimal {
	return c.price
}

// Description returns the new description, or nil to keep the current one.
func (c UpdateProductCommand) Description() *string {
	return c.description
}

// CookID returns the new responsible cook, or nil to keep the current one.
func (c UpdateProductCommand) CookID() *kernel.UUID {
	return c.cookID
}

// ClearCook reports whether the current cook assignment is removed.
func (c UpdateProductCommand) ClearCook() bool {
	return c.clearCook
}

// IsVegetarian returns the new vegetarian flag, or nil to keep the current one.
func (c UpdateProductCommand) IsVegetarian() *bool {
	return c.isVegetarian
}

func (c *UpdateProductCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setCookID(cookID *kernel.UUID) error {
	if cookID != nil {
		if err := cookID.Validate(); err != nil {
			return err
		}
	}

	c.cookID = cookID
	return nil
}
