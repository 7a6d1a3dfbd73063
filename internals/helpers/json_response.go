// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/configs"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}

	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonValidationError: khusus error validasi (422)
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success:   false,
		Message:   "validation failed",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	})
}

// StatusForError maps a domain error kind to its HTTP status.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrDuplicateKey), errors.Is(err, ErrInvalidValue):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrValidation):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonDomainError renders domain errors with their own message; anything
// else is logged and answered with a generic 500.
func JsonDomainError(c *fiber.Ctx, err error) error {
	status := StatusForError(err)
	if status >= 500 {
		configs.Log.WithFields(map[string]interface{}{
			"request_id": c.Locals("reqid"),
			"method":     c.Method(),
			"path":       c.Path(),
		}).WithError(err).Error("unexpected error")
		return JsonError(c, status, "Internal server error")
	}

	var de *DomainError
	if errors.As(err, &de) && de.Kind == ErrValidation && de.Field != "" {
		return JsonValidationError(c, map[string][]string{de.Field: {de.Message}})
	}
	return JsonError(c, status, err.Error())
}

// FiberErrorHandler is installed as fiber.Config.ErrorHandler so router
// level errors (unknown route, wrong method, panics) share the same shape.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonDomainError(c, err)
}
