package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
	enricher    *PostEnricher
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService, enricher *PostEnricher) *PostHandler {
	return &PostHandler{postService: postService, enricher: enricher}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.GET("/users/:id/posts", h.GetUserPosts)
}

// CreatePost creates a new post for the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := currentUser(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(user.ID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.enricher.enrich(*post, user.ID))
}

// GetPost returns a single post, subject to the viewer's visibility
func (h *PostHandler) GetPost(c echo.Context) error {
	user := currentUser(c)
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postService.GetPost(postID, user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.enricher.enrich(*post, user.ID))
}

// UpdatePost edits the authenticated user's own post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	user := currentUser(c)
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.UpdatePost(postID, user.ID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.enricher.enrich(*post, user.ID))
}

// DeletePost deletes a post as its owner or as an admin
func (h *PostHandler) DeletePost(c echo.Context) error {
	user := currentUser(c)
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(postID, user); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUserPosts returns one user's posts as a cursor page
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	user := currentUser(c)
	ownerID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	page, err := h.postService.ListUserPosts(ownerID, user, parseCursor(c), parsePageSize(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.enricher.enrichPage(page, user.ID))
}
