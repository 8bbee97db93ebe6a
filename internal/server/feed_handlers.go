package server

import (
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
// @Summary Home feed
// @Description Posts from followed users, newest first, minus hidden and
// @Description blocked authors. Pages are 1-indexed.
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} models.FeedPage
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", service.DefaultFeedPageSize)

	feed, err := s.feedService.GetFeed(c.UserContext(), userID, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feed)
}
