// Package product implements the catalog item aggregate: a sellable dish
// with a fixed-point price, an optional assigned cook, and a soft-delete
// lifecycle. Products are referenced by order lines and are therefore never
// physically removed once created; deletion only hides them from the
// catalog.
package product

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductNameIsRequired is returned when the product name is empty.
	ErrProductNameIsRequired = errors.New("product name is required")
)

// Product is the catalog item aggregate.
//
// Invariants:
//   - id is a constructed UUID
//   - name is non-empty
//   - price is non-negative
//   - a deleted product stays deleted (soft delete is one-way)
//
// The cook reference is nullable: an unassigned product appears in no cook's
// task projection. isVegetarian is tri-state (unknown / yes / no), mirroring
// the catalog's optional labeling.
type Product struct {
	id           kernel.UUID
	name         string
	price        decimal.Decimal
	description  string
	cookID       *kernel.UUID
	deleted      bool
	isVegetarian *bool

	isConstructed bool
}

// NewProduct creates a new catalog item with validation. The product starts
// not deleted, with no cook assigned and unknown vegetarian status.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal, description string) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a product from persistence, including state
// that NewProduct cannot produce (assigned cook, deleted flag, vegetarian
// labeling). All invariants are re-validated.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price decimal.Decimal,
	description string,
	cookID *kernel.UUID,
	deleted bool,
	isVegetarian *bool,
) (*Product, error) {
	p, err := NewProduct(id, name, price, description)
	if err != nil {
		return nil, err
	}

	if cookID != nil {
		if err = p.AssignCook(*cookID); err != nil {
			return nil, err
		}
	}

	p.deleted = deleted
	p.isVegetarian = isVegetarian
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Cook returns the assigned cook's ID, or nil when unassigned.
func (p *Product) Cook() *kernel.UUID {
	return p.cookID
}

// IsDeleted reports whether the product was soft-deleted.
func (p *Product) IsDeleted() bool {
	return p.deleted
}

// IsVegetarian returns the tri-state vegetarian flag; nil means unknown.
func (p *Product) IsVegetarian() *bool {
	return p.isVegetarian
}

// Rename changes the product name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangePrice changes the product price.
func (p *Product) ChangePrice(price decimal.Decimal) error {
	return p.setPrice(price)
}

// ChangeDescription replaces the product description.
func (p *Product) ChangeDescription(description string) {
	p.description = description
}

// AssignCook makes the given cook responsible for preparing this product.
func (p *Product) AssignCook(cookID kernel.UUID) error {
	if err := cookID.Validate(); err != nil {
		return err
	}
	p.cookID = &cookID
	return nil
}

// UnassignCook removes the cook assignment.
func (p *Product) UnassignCook() {
	p.cookID = nil
}

// SetVegetarian records whether the product is vegetarian.
func (p *Product) SetVegetarian(isVegetarian bool) {
	p.isVegetarian = &isVegetarian
}

// MarkDeleted soft-deletes the product. Historical order lines keep
// referencing it; it only disappears from catalog listings.
func (p *Product) MarkDeleted() {
	p.deleted = true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not a valid price", price.String()))
	}
	p.price = price
	return nil
}
