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

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
)

// CreateProductCommand represents a request to add an item to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor        auth.Actor
	productID    kernel.UUID
	name         string
	price        decimal.Decimal
	description  string
	cookID       *kernel.UUID
	isVegetarian *bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// The cook assignment and vegetarian flag are optional.
func NewCreateProductCommand(
	actor auth.Actor,
	productID kernel.UUID,
	name string,
	price decimal.Decimal,
	description string,
	cookID *kernel.UUID,
	isVegetarian *bool,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description:  description,
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
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Actor returns the staff member maintaining the catalog.
func (c CreateProductCommand) Actor() auth.Actor {
	return c.actor
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product's price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// Description returns the product's description ("" allowed).
func (c CreateProductCommand) Description() string {
	return c.description
}

// CookID returns the responsible cook, or nil when unassigned.
func (c CreateProductCommand) CookID() *kernel.UUID {
	return c.cookID
}

// IsVegetarian returns the vegetarian flag, or nil when unspecified.
func (c CreateProductCommand) IsVegetarian() *bool {
	return c.isVegetarian
}

func (c *CreateProductCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setCookID(cookID *kernel.UUID) error {
	if cookID != nil {
		if err := cookID.Validate(); err != nil {
			return err
		}
	}

	c.cookID = cookID
	return nil
}
