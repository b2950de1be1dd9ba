package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow-related HTTP requests
type FollowHandler struct {
	followService *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.Follow)
	g.DELETE("/users/:id/follow", h.Unfollow)
	g.GET("/users/:id/follow", h.GetFollowStatus)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// Follow makes the current user follow the target user
func (h *FollowHandler) Follow(c echo.Context) error {
	user := currentUser(c)
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.followService.Follow(user.ID, targetID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Followed successfully"})
}

// Unfollow makes the current user unfollow the target user
func (h *FollowHandler) Unfollow(c echo.Context) error {
	user := currentUser(c)
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(user.ID, targetID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Unfollowed successfully"})
}

// GetFollowStatus reports whether the current user follows the target user
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	user := currentUser(c)
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	following, err := h.followService.IsFollowing(user.ID, targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"is_following": following})
}

// GetFollowers lists the followers of the target user
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	followers, err := h.followService.Followers(targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, compactAll(followers))
}

// GetFollowing lists the users the target user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	following, err := h.followService.Following(targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, compactAll(following))
}

func compactAll(users []models.User) []models.UserCompact {
	out := make([]models.UserCompact, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToCompact())
	}
	return out
}
