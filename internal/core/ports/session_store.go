package ports

import (
	"context"

	"kitchen/internal/core/domain/model/auth"
)

// SessionStore resolves bearer tokens into authenticated actors. Sessions
// are issued by the external identity service; this port only reads them.
type SessionStore interface {
	// Resolve returns the actor the token belongs to, or an
	// ObjectNotFoundError for missing or expired tokens.
	Resolve(ctx context.Context, token string) (auth.Actor, error)
}
