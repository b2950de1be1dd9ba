package services

import (
	"errors"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"gorm.io/gorm"
)

// CommentService manages post comments and their COMMENT fan-out.
type CommentService struct {
	store repositories.Store
}

// NewCommentService creates a new CommentService
func NewCommentService(store repositories.Store) *CommentService {
	return &CommentService{store: store}
}

// AddComment creates a comment on a post and notifies the post owner,
// unless the commenter is the owner. Hidden posts are locked.
func (s *CommentService) AddComment(postID, userID uint, content string) (*models.Comment, error) {
	var comment *models.Comment
	err := s.store.InTx(func(st repositories.Store) error {
		user, err := getUser(st, userID)
		if err != nil {
			return err
		}
		post, err := getPost(st, postID)
		if err != nil {
			return err
		}
		if !CanInteract(post) {
			return &apperrors.ContentLockedError{PostID: postID}
		}

		comment = &models.Comment{PostID: postID, UserID: userID, Content: content}
		if err := st.Comments().Create(comment); err != nil {
			return apperrors.Storage("create comment", err)
		}

		if post.UserID != userID {
			owner, err := getUser(st, post.UserID)
			if err != nil {
				return err
			}
			return dispatchNotification(st, owner, user, models.NotificationTypeComment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentsForPost returns a post's comments oldest first.
func (s *CommentService) GetCommentsForPost(postID uint) ([]models.Comment, error) {
	if _, err := getPost(s.store, postID); err != nil {
		return nil, err
	}
	comments, err := s.store.Comments().ListByPost(postID)
	if err != nil {
		return nil, apperrors.Storage("list comments", err)
	}
	return comments, nil
}

// DeleteComment removes a comment. Only the comment's owner may delete it.
func (s *CommentService) DeleteComment(commentID, userID uint) error {
	return s.store.InTx(func(st repositories.Store) error {
		comment, err := st.Comments().GetByID(commentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("comment", commentID)
			}
			return apperrors.Storage("get comment", err)
		}
		if comment.UserID != userID {
			return &apperrors.ForbiddenError{Reason: "you can only delete your own comments"}
		}
		if err := st.Comments().Delete(commentID); err != nil {
			return apperrors.Storage("delete comment", err)
		}
		return nil
	})
}
