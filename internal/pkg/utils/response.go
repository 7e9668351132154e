package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// DetailResponse is the DRF-style body used for domain-specific misses,
// e.g. the wheel-spin 404.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// SendError maps an AppError to its status code. ErrNoPlacesMatch keeps its
// fixed {"detail": ...} body; other AppErrors use the error envelope.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		if appErr.Code == errors.ErrNoPlacesMatch.Code {
			return c.Status(appErr.StatusCode).JSON(DetailResponse{Detail: appErr.Message})
		}
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// SendFieldErrors rejects a request with the per-field validation error map.
func SendFieldErrors(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fields)
}
