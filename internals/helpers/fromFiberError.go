package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/helpers/apperror"
)

// FromAppError memetakan error service ke response JSON yang konsisten.
// Storage/persistence cause tidak pernah dikirim ke client.
func FromAppError(c *fiber.Ctx, err error) error {
	msg := apperror.MessageOf(err)

	switch {
	case errors.Is(err, apperror.ErrValidation):
		var ae *apperror.Error
		if errors.As(err, &ae) && len(ae.Fields) > 0 {
			fields := make(map[string][]string, len(ae.Fields))
			for _, f := range ae.Fields {
				fields[f] = []string{"required"}
			}
			return JsonValidationError(c, msg, fields)
		}
		return JsonError(c, fiber.StatusBadRequest, fallback(msg, "invalid input"))
	case errors.Is(err, apperror.ErrInvalidSharedSecret):
		return JsonError(c, fiber.StatusUnauthorized, "Invalid shared password")
	case errors.Is(err, apperror.ErrInvalidCredentials):
		return JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, apperror.ErrUnauthenticated):
		return JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, apperror.ErrNotFound):
		return JsonError(c, fiber.StatusNotFound, fallback(msg, "not found"))
	case errors.Is(err, apperror.ErrDuplicate):
		return JsonError(c, fiber.StatusConflict, fallback(msg, "already exists"))
	case errors.Is(err, apperror.ErrStorage):
		return JsonError(c, fiber.StatusInternalServerError, "Failed to process uploaded file")
	case errors.Is(err, apperror.ErrPersistence):
		return JsonError(c, fiber.StatusInternalServerError, "Failed to save data")
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

func fallback(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
