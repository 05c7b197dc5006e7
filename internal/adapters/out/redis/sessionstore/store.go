// Package sessionstore resolves bearer tokens to authenticated actors using
// Redis as the shared session backend.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// sessionRecord is the JSON document stored per token by the identity
// service.
type sessionRecord struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// RedisSessionStore implements SessionStore over a Redis client.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a session store backed by the given client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Resolve looks up the session document for the token and reconstructs the
// actor. An unknown or expired token returns an ObjectNotFoundError.
func (s *RedisSessionStore) Resolve(ctx context.Context, token string) (auth.Actor, error) {
	if token == "" {
		return auth.Actor{}, errs.NewValueIsRequiredError("token")
	}

	payload, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Actor{}, errs.NewObjectNotFoundError("session", token)
		}
		return auth.Actor{}, fmt.Errorf("resolve session: %w", err)
	}

	var record sessionRecord
	if err = json.Unmarshal(payload, &record); err != nil {
		return auth.Actor{}, errs.NewValueIsInvalidErrorWithCause("session", err)
	}

	userID, err := kernel.UUIDFromString(record.UserID)
	if err != nil {
		return auth.Actor{}, errs.NewValueIsInvalidErrorWithCause("session", err)
	}

	role, err := auth.RoleFromString(record.Role)
	if err != nil {
		return auth.Actor{}, errs.NewValueIsInvalidErrorWithCause("session", err)
	}

	return auth.NewActor(userID, record.Name, role)
}
