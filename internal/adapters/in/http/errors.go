package http

import (
	"errors"
	"net/http"

	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError translates a domain error into the uniform error body.
// Unrecognized errors are reported as internal without leaking details.
func writeError(ctx echo.Context, err error) error {
	status, kind := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Kind:    kind,
		Message: message,
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusBadRequest, "invalid_transition"
	case errors.Is(err, errs.ErrAlreadyComplete):
		return http.StatusBadRequest, "already_complete"
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, "invalid_input"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// writeInvalidInput is used for malformed request bodies and path
// parameters, before a command can be constructed.
func writeInvalidInput(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Kind:    "invalid_input",
		Message: message,
	})
}
