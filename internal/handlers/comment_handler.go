package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"github.com/bloghive/backend/internal/services"
	"github.com/bloghive/backend/internal/utils"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentService *services.CommentService
	store          repositories.Store
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService, store repositories.Store) *CommentHandler {
	return &CommentHandler{commentService: commentService, store: store}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.AddComment)
	g.GET("/posts/:id/comments", h.GetComments)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CommentResponse is a comment with its author and rendered content.
type CommentResponse struct {
	models.Comment
	ContentHTML string             `json:"content_html"`
	Author      models.UserCompact `json:"author"`
}

func (h *CommentHandler) enrichComment(comment models.Comment, authorCache map[uint]models.UserCompact) CommentResponse {
	resp := CommentResponse{
		Comment:     comment,
		ContentHTML: utils.RenderMarkdown(comment.Content),
	}
	if author, ok := authorCache[comment.UserID]; ok {
		resp.Author = author
	} else if user, err := h.store.Users().GetByID(comment.UserID); err == nil {
		compact := user.ToCompact()
		authorCache[comment.UserID] = compact
		resp.Author = compact
	}
	return resp
}

// AddComment adds a comment to a post
func (h *CommentHandler) AddComment(c echo.Context) error {
	user := currentUser(c)

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.AddComment(postID, user.ID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.enrichComment(*comment, map[uint]models.UserCompact{}))
}

// GetComments lists the comments on a post, oldest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentService.GetCommentsForPost(postID)
	if err != nil {
		return err
	}

	authorCache := make(map[uint]models.UserCompact)
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, h.enrichComment(comment, authorCache))
	}
	return c.JSON(http.StatusOK, out)
}

// DeleteComment deletes a comment owned by the current user
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	user := currentUser(c)

	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentService.DeleteComment(commentID, user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
