package services

import (
	"errors"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"gorm.io/gorm"
)

// InteractionService is the like ledger: at most one like per
// (user, post), toggled by repeated calls.
type InteractionService struct {
	store repositories.Store
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(store repositories.Store) *InteractionService {
	return &InteractionService{store: store}
}

// ToggleLike flips the (userID, postID) like. Inserting emits a LIKE
// notification to the post owner unless the liker is the owner; removing
// emits nothing. The unique index on (post_id, user_id) is the race
// guard: when two toggles race, the insert loser sees a duplicate key,
// is reinterpreted as "already liked" and converted to the delete path
// exactly once. A conflict that survives that single retry surfaces as
// ConflictError.
func (s *InteractionService) ToggleLike(postID, userID uint) error {
	for attempt := 0; attempt < 2; attempt++ {
		retriable, err := s.toggleLikeOnce(postID, userID)
		if err == nil || !retriable {
			return err
		}
	}
	return &apperrors.ConflictError{Resource: "like"}
}

// toggleLikeOnce runs one toggle attempt. The second return reports
// whether the caller may retry (insert lost a duplicate-key race).
func (s *InteractionService) toggleLikeOnce(postID, userID uint) (bool, error) {
	var retriable bool
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

		liked, err := st.Likes().Exists(postID, userID)
		if err != nil {
			return apperrors.Storage("check like", err)
		}

		if liked {
			if _, err := st.Likes().Delete(postID, userID); err != nil {
				return apperrors.Storage("delete like", err)
			}
			return nil
		}

		if err := st.Likes().Create(&models.Like{PostID: postID, UserID: userID}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				retriable = true
			}
			return apperrors.Storage("create like", err)
		}

		if post.UserID != userID {
			owner, err := getUser(st, post.UserID)
			if err != nil {
				return err
			}
			return dispatchNotification(st, owner, user, models.NotificationTypeLike)
		}
		return nil
	})
	return retriable, err
}

// GetLikeCount returns the number of likes on a post.
func (s *InteractionService) GetLikeCount(postID uint) (int64, error) {
	if _, err := getPost(s.store, postID); err != nil {
		return 0, err
	}
	count, err := s.store.Likes().CountByPost(postID)
	if err != nil {
		return 0, apperrors.Storage("count likes", err)
	}
	return count, nil
}

// IsLikedBy reports whether the user currently likes the post.
func (s *InteractionService) IsLikedBy(postID, userID uint) (bool, error) {
	if _, err := getUser(s.store, userID); err != nil {
		return false, err
	}
	if _, err := getPost(s.store, postID); err != nil {
		return false, err
	}
	liked, err := s.store.Likes().Exists(postID, userID)
	if err != nil {
		return false, apperrors.Storage("check like", err)
	}
	return liked, nil
}
