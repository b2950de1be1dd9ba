package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles like-related HTTP requests
type LikeHandler struct {
	interactionService *services.InteractionService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(interactionService *services.InteractionService) *LikeHandler {
	return &LikeHandler{interactionService: interactionService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/:id/likes", h.GetLikeStatus)
}

// ToggleLike flips the current user's like on a post
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	user := currentUser(c)

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.interactionService.ToggleLike(postID, user.ID); err != nil {
		return err
	}

	return h.likeStatus(c, postID, user.ID)
}

// GetLikeStatus returns the like count and whether the current user likes the post
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	user := currentUser(c)

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	return h.likeStatus(c, postID, user.ID)
}

func (h *LikeHandler) likeStatus(c echo.Context, postID, userID uint) error {
	count, err := h.interactionService.GetLikeCount(postID)
	if err != nil {
		return err
	}
	liked, err := h.interactionService.IsLikedBy(postID, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"likes_count": count,
		"is_liked":    liked,
	})
}
