package http

import (
	"errors"
	"net/http"
	"strings"

	"kitchen/internal/core/domain/model/auth"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// BearerAuth resolves the Authorization bearer token into an auth.Actor
// through the session store and attaches it to the request context.
// Requests without a valid session are rejected with 401.
func BearerAuth(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, ok := bearerToken(ctx.Request().Header.Get("Authorization"))
			if !ok {
				return unauthorized(ctx, "missing bearer token")
			}

			actor, err := sessions.Resolve(ctx.Request().Context(), token)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return unauthorized(ctx, "unknown or expired session")
				}
				return writeError(ctx, err)
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Kind:    "unauthorized",
		Message: message,
	})
}

// actorFromContext returns the actor attached by BearerAuth.
func actorFromContext(ctx echo.Context) auth.Actor {
	actor, _ := ctx.Get(actorContextKey).(auth.Actor)
	return actor
}
