package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"github.com/bloghive/backend/internal/services"
	"github.com/bloghive/backend/internal/utils"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the global cursor-paginated feed
type FeedHandler struct {
	postService *services.PostService
	enricher    *PostEnricher
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postService *services.PostService, enricher *PostEnricher) *FeedHandler {
	return &FeedHandler{postService: postService, enricher: enricher}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the next page of posts for the current viewer. Admins
// see hidden posts; everyone else gets the visibility-filtered stream.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	user := currentUser(c)

	page, err := h.postService.ListPosts(user, parseCursor(c), parsePageSize(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.enricher.enrichPage(page, user.ID))
}

// PostResponse is a post with its author, rendered content and the
// viewer-specific like state.
type PostResponse struct {
	models.Post
	ContentHTML string             `json:"content_html"`
	Author      models.UserCompact `json:"author"`
	LikesCount  int64              `json:"likes_count"`
	IsLiked     bool               `json:"is_liked"`
}

// PostEnricher decorates posts for responses: author lookup (cached per
// call), markdown rendering and like state.
type PostEnricher struct {
	store repositories.Store
}

func NewPostEnricher(store repositories.Store) *PostEnricher {
	return &PostEnricher{store: store}
}

func (e *PostEnricher) enrich(post models.Post, viewerID uint) PostResponse {
	resp := PostResponse{
		Post:        post,
		ContentHTML: utils.RenderMarkdown(post.Content),
	}
	if author, err := e.store.Users().GetByID(post.UserID); err == nil {
		resp.Author = author.ToCompact()
	}
	if count, err := e.store.Likes().CountByPost(post.ID); err == nil {
		resp.LikesCount = count
	}
	if liked, err := e.store.Likes().Exists(post.ID, viewerID); err == nil {
		resp.IsLiked = liked
	}
	return resp
}

func (e *PostEnricher) enrichPage(page *services.CursorPage[models.Post], viewerID uint) services.CursorPage[PostResponse] {
	out := services.CursorPage[PostResponse]{
		Content:    make([]PostResponse, 0, len(page.Content)),
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}

	authorCache := make(map[uint]models.UserCompact)
	for _, post := range page.Content {
		resp := PostResponse{
			Post:        post,
			ContentHTML: utils.RenderMarkdown(post.Content),
		}
		if author, ok := authorCache[post.UserID]; ok {
			resp.Author = author
		} else if user, err := e.store.Users().GetByID(post.UserID); err == nil {
			compact := user.ToCompact()
			authorCache[post.UserID] = compact
			resp.Author = compact
		}
		if count, err := e.store.Likes().CountByPost(post.ID); err == nil {
			resp.LikesCount = count
		}
		if liked, err := e.store.Likes().Exists(post.ID, viewerID); err == nil {
			resp.IsLiked = liked
		}
		out.Content = append(out.Content, resp)
	}
	return out
}
