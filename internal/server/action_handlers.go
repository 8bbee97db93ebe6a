package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SetUserAction handles POST /api/actions/:username
// @Summary Hide or block a user
// @Description Record a suppression action toward the named user. A later
// @Description action toward the same user replaces the earlier one.
// @Tags actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Target username"
// @Param request body object{action=string} true "Action kind: HIDE or BLOCK"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /actions/{username} [post]
func (s *Server) SetUserAction(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Action string `json:"action"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	kind := models.ActionKind(req.Action)
	if err := s.relService.SetAction(c.Context(), userID, c.Params("username"), kind); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": req.Action + " recorded for " + c.Params("username")})
}

// RemoveUserAction handles DELETE /api/actions/:username
// @Summary Clear an action toward a user
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Param username path string true "Target username"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /actions/{username} [delete]
func (s *Server) RemoveUserAction(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.relService.RemoveAction(c.Context(), userID, c.Params("username")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Action cleared for " + c.Params("username")})
}

// ListUserActions handles GET /api/actions
// @Summary List your actions
// @Description List the suppression actions you have taken, newest first
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserAction
// @Router /actions [get]
func (s *Server) ListUserActions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	actions, err := s.relService.ListActions(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(actions)
}
