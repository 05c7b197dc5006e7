package services

import (
	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
)

// AccessPolicy is a domain service holding the role-based permission rules
// for orders and the catalog.
//
// Rules by role:
//   - CLIENT: assembles their own cart and manages their own orders
//   - COOK: reads formed orders and records prepared units
//   - MANAGER: reads everything, finalizes orders, maintains the catalog
//   - ADMIN: everything a manager can do, plus acting on any client's cart
//
// Every method returns nil when the action is allowed and a ForbiddenError
// otherwise, so handlers can surface the denial uniformly.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanViewOrder checks read access to a single order. Staff see everything,
// clients see their own orders, cooks see orders submitted for preparation.
// The order aggregate does not know which cook each line's product is
// assigned to, so the cook check stops at the status; narrowing listings to
// orders holding the cook's own items is done in the order read model, which
// can join the catalog.
func (p AccessPolicy) CanViewOrder(actor auth.Actor, o *order.Order) error {
	if err := p.validate(actor, o); err != nil {
		return err
	}

	switch actor.Role() {
	case auth.RoleManager, auth.RoleAdmin:
		return nil
	case auth.RoleClient:
		if o.IsOwnedBy(actor.ID()) {
			return nil
		}
	case auth.RoleCook:
		if o.Status() == order.StatusFormed {
			return nil
		}
	}
	return errs.NewForbiddenError("view order", actor.Role().String())
}

// CanAssembleDraft checks whether the actor may create a cart or add items
// to one.
func (p AccessPolicy) CanAssembleDraft(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() == auth.RoleClient || actor.Role() == auth.RoleAdmin {
		return nil
	}
	return errs.NewForbiddenError("assemble draft", actor.Role().String())
}

// CanModifyDraft checks whether the actor may change the contents of the
// given cart. Clients touch only their own carts.
func (p AccessPolicy) CanModifyDraft(actor auth.Actor, o *order.Order) error {
	if err := p.validate(actor, o); err != nil {
		return err
	}

	if actor.Role() == auth.RoleAdmin {
		return nil
	}
	if actor.Role() == auth.RoleClient && o.IsOwnedBy(actor.ID()) {
		return nil
	}
	return errs.NewForbiddenError("modify draft", actor.Role().String())
}

// CanFormOrder checks whether the actor may submit the cart for fulfillment.
// The owning client or any staff member may form.
func (p AccessPolicy) CanFormOrder(actor auth.Actor, o *order.Order) error {
	if err := p.validate(actor, o); err != nil {
		return err
	}

	if actor.Role().IsStaff() {
		return nil
	}
	if actor.Role() == auth.RoleClient && o.IsOwnedBy(actor.ID()) {
		return nil
	}
	return errs.NewForbiddenError("form order", actor.Role().String())
}

// CanFinalizeOrder checks whether the actor may complete or reject a formed
// order. Managers and admins only.
func (p AccessPolicy) CanFinalizeOrder(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role().IsStaff() {
		return nil
	}
	return errs.NewForbiddenError("finalize order", actor.Role().String())
}

// CanDeleteOrder checks whether the actor may soft-delete the given order.
// The owning client or any staff member may delete.
func (p AccessPolicy) CanDeleteOrder(actor auth.Actor, o *order.Order) error {
	if err := p.validate(actor, o); err != nil {
		return err
	}

	if actor.Role().IsStaff() {
		return nil
	}
	if actor.Role() == auth.RoleClient && o.IsOwnedBy(actor.ID()) {
		return nil
	}
	return errs.NewForbiddenError("delete order", actor.Role().String())
}

// CanIncrementPrepared checks whether the actor may record prepared units.
// Cooks and admins only.
func (p AccessPolicy) CanIncrementPrepared(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() == auth.RoleCook || actor.Role() == auth.RoleAdmin {
		return nil
	}
	return errs.NewForbiddenError("increment prepared", actor.Role().String())
}

// CanViewCookTasks checks access to the preparation task list.
func (p AccessPolicy) CanViewCookTasks(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() == auth.RoleCook || actor.Role() == auth.RoleAdmin {
		return nil
	}
	return errs.NewForbiddenError("view cook tasks", actor.Role().String())
}

// CanManageCatalog checks whether the actor may create, update, or delete
// catalog products. Managers and admins only.
func (p AccessPolicy) CanManageCatalog(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role().IsStaff() {
		return nil
	}
	return errs.NewForbiddenError("manage catalog", actor.Role().String())
}

func (p AccessPolicy) validate(actor auth.Actor, o *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	return o.Validate()
}
