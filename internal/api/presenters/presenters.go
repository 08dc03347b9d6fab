package presenters

import (
	"errors"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			res.Errors = vErr.Violations
		} else {
			res.Errors = err.Error()
		}
	}
	return c.Status(status).JSON(res)
}

// StatusFromError maps a domain error kind to an HTTP status. Unclassified
// errors fall back to the given default.
func StatusFromError(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotAllowed):
		return fiber.StatusForbidden
	default:
		return fallback
	}
}
