package commands

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrRemoveStaleDraftsCommandIsNotConstructed = errors.New(
	"RemoveStaleDraftsCommand must be created via NewRemoveStaleDraftsCommand constructor",
)

// RemoveStaleDraftsCommand represents a maintenance request to soft-delete
// Draft carts abandoned longer than the given age. Issued by the scheduled
// cleanup job, not by end users.
type RemoveStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemoveStaleDraftsCommand creates a command to delete carts older than
// the given duration.
func NewRemoveStaleDraftsCommand(olderThan time.Duration) (RemoveStaleDraftsCommand, error) {
	cmd := RemoveStaleDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOlderThan(olderThan); err != nil {
		return RemoveStaleDraftsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStaleDraftsCommandIsNotConstructed)
}

// OlderThan returns the minimum age of carts to delete.
func (c RemoveStaleDraftsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *RemoveStaleDraftsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("olderThan",
			fmt.Errorf("%s is not greater than 0", olderThan))
	}

	c.olderThan = olderThan
	return nil
}
