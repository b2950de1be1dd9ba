package services

import (
	"strings"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
)

// PostService manages post lifecycle and the visibility-aware listings.
type PostService struct {
	store repositories.Store
}

// NewPostService creates a new PostService
func NewPostService(store repositories.Store) *PostService {
	return &PostService{store: store}
}

func hasSubstance(content, mediaURL string) bool {
	return strings.TrimSpace(content) != "" || mediaURL != ""
}

// CreatePost creates a post for userID. A post needs text content or a
// media reference; an empty shell is rejected.
func (s *PostService) CreatePost(userID uint, req models.CreatePostRequest) (*models.Post, error) {
	if _, err := getUser(s.store, userID); err != nil {
		return nil, err
	}
	if !hasSubstance(req.Content, req.MediaURL) {
		return nil, &apperrors.ValidationError{Reason: "post must have either text content or media"}
	}

	post := &models.Post{
		Content:   req.Content,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		UserID:    userID,
	}
	if err := s.store.Posts().Create(post); err != nil {
		return nil, apperrors.Storage("create post", err)
	}
	return post, nil
}

// GetPost fetches a post and applies the visibility policy for the viewer.
// A hidden post is absent as far as non-admin, non-owner viewers are
// concerned.
func (s *PostService) GetPost(postID uint, viewer *models.User) (*models.Post, error) {
	post, err := getPost(s.store, postID)
	if err != nil {
		return nil, err
	}
	if !IsVisible(post, viewer.Role, viewer.ID) && post.UserID != viewer.ID {
		return nil, apperrors.NewNotFound("post", postID)
	}
	return post, nil
}

// ListPosts pages through all posts newest first. Hidden rows are
// filtered in the query for non-admin viewers so pages stay full.
func (s *PostService) ListPosts(viewer *models.User, cursor *uint, pageSize int) (*CursorPage[models.Post], error) {
	pageSize = clampPageSize(pageSize)
	visibleOnly := !viewer.IsAdmin()

	posts, err := s.store.Posts().ListCursor(cursor, pageSize+1, visibleOnly)
	if err != nil {
		return nil, apperrors.Storage("list posts", err)
	}
	page := buildCursorPage(posts, pageSize, func(p models.Post) uint { return p.ID })
	return &page, nil
}

// ListUserPosts pages through one user's posts newest first, with the
// same visibility rule as ListPosts.
func (s *PostService) ListUserPosts(ownerID uint, viewer *models.User, cursor *uint, pageSize int) (*CursorPage[models.Post], error) {
	if _, err := getUser(s.store, ownerID); err != nil {
		return nil, err
	}
	pageSize = clampPageSize(pageSize)
	visibleOnly := !viewer.IsAdmin()

	posts, err := s.store.Posts().ListByOwnerCursor(ownerID, cursor, pageSize+1, visibleOnly)
	if err != nil {
		return nil, apperrors.Storage("list user posts", err)
	}
	page := buildCursorPage(posts, pageSize, func(p models.Post) uint { return p.ID })
	return &page, nil
}

// UpdatePost edits a post. Only the owner may edit, a hidden post is
// locked against edits, and the content-or-media invariant must hold
// after the edit.
func (s *PostService) UpdatePost(postID, userID uint, req models.UpdatePostRequest) (*models.Post, error) {
	var updated *models.Post
	err := s.store.InTx(func(st repositories.Store) error {
		post, err := getPost(st, postID)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return &apperrors.ForbiddenError{Reason: "you can only edit your own posts"}
		}
		if post.Hidden {
			return &apperrors.ContentLockedError{PostID: postID}
		}

		mediaURL := post.MediaURL
		mediaType := post.MediaType
		if req.MediaURL != "" {
			mediaURL = req.MediaURL
			mediaType = req.MediaType
		}
		if !hasSubstance(req.Content, mediaURL) {
			return &apperrors.ValidationError{Reason: "post must have either text content or media"}
		}

		post.Content = req.Content
		post.MediaURL = mediaURL
		post.MediaType = mediaType
		if err := st.Posts().Update(post); err != nil {
			return apperrors.Storage("update post", err)
		}
		updated = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePost removes a post along with its comments, likes and reports.
// The owner and admins may delete; a hidden post stays deletable by its
// owner even though it is locked for everything else.
func (s *PostService) DeletePost(postID uint, actor *models.User) error {
	return s.store.InTx(func(st repositories.Store) error {
		post, err := getPost(st, postID)
		if err != nil {
			return err
		}
		if post.UserID != actor.ID && !actor.IsAdmin() {
			return &apperrors.ForbiddenError{Reason: "you can only delete your own posts"}
		}

		if err := st.Comments().DeleteByPost(postID); err != nil {
			return apperrors.Storage("delete post comments", err)
		}
		if err := st.Likes().DeleteByPost(postID); err != nil {
			return apperrors.Storage("delete post likes", err)
		}
		if err := st.Reports().DeleteByPost(postID); err != nil {
			return apperrors.Storage("delete post reports", err)
		}
		if err := st.Posts().Delete(postID); err != nil {
			return apperrors.Storage("delete post", err)
		}
		return nil
	})
}
