package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/pkg/guard"
)

var ErrCreateDraftOrderCommandIsNotConstructed = errors.New(
	"CreateDraftOrderCommand must be created via NewCreateDraftOrderCommand constructor",
)

// CreateDraftOrderCommand represents a client's request for an active cart.
// The operation is idempotent: when the client already has a Draft order,
// that order is returned instead of creating a second one.
type CreateDraftOrderCommand struct { //nolint:recvcheck //using for validation
	actor auth.Actor

	guard guard.ConstructorGuard
}

// NewCreateDraftOrderCommand creates a command to open the actor's cart.
func NewCreateDraftOrderCommand(actor auth.Actor) (CreateDraftOrderCommand, error) {
	cmd := CreateDraftOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return CreateDraftOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDraftOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftOrderCommandIsNotConstructed)
}

// Actor returns the authenticated actor requesting the cart.
func (c CreateDraftOrderCommand) Actor() auth.Actor {
	return c.actor
}

func (c *CreateDraftOrderCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
