package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:username/follow
// @Summary Follow a user
// @Description Start following the named user; following twice is a no-op
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param username path string true "Target username"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username}/follow [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.relService.Follow(c.Context(), userID, c.Params("username")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Following " + c.Params("username")})
}

// UnfollowUser handles POST /api/users/:username/unfollow
// @Summary Unfollow a user
// @Description Stop following the named user; unfollowing someone not followed is a no-op
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param username path string true "Target username"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username}/unfollow [post]
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.relService.Unfollow(c.Context(), userID, c.Params("username")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed " + c.Params("username")})
}

// GetFollowers handles GET /api/users/:username/followers
// @Summary List followers
// @Tags follows
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.UserSummary
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username}/followers [get]
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	users, err := s.relService.Followers(c.Context(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

// GetFollowing handles GET /api/users/:username/following
// @Summary List followed users
// @Tags follows
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.UserSummary
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username}/following [get]
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	users, err := s.relService.Following(c.Context(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}
