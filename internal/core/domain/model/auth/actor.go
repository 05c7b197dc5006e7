package auth

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor was not created
	// through the NewActor constructor.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

	// ErrActorNameIsRequired is returned when the actor name is empty.
	ErrActorNameIsRequired = errors.New("actor name is required")
)

// Actor is the authenticated identity performing an operation: a validated
// user id, the display name recorded on orders, and the role checked by the
// access policy. Actors are resolved from session tokens at the transport
// boundary and passed explicitly through every use case.
type Actor struct {
	id   kernel.UUID
	name string
	role Role

	guard kernel.ConstructorGuard
}

// NewActor creates a validated Actor. The id must be a constructed UUID,
// the name non-empty, and the role one of the defined values.
func NewActor(id kernel.UUID, name string, role Role) (Actor, error) {
	actor := Actor{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setName(name),
		actor.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the Actor was built through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the actor's display name.
func (a Actor) Name() string {
	return a.name
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setName(name string) error {
	if name == "" {
		return ErrActorNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
