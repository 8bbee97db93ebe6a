package server

import (
	"errors"
	"strconv"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps application error codes to HTTP statuses and writes
// the standard error payload. Unknown errors become 500s.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR", "SELF_REFERENCE":
			status = fiber.StatusBadRequest
		case "CONFLICT":
			status = fiber.StatusConflict
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		}
	}

	return models.RespondWithError(c, status, err)
}

// parseID parses a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) (uint, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return 0, models.NewUnauthorizedError("Authentication required")
	}
	return userID, nil
}
