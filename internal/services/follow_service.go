package services

import (
	"errors"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService maintains the directed follow-edge set. Following is
// idempotent; the edge insert and its FOLLOW notification commit in one
// transaction.
type FollowService struct {
	store repositories.Store
}

// NewFollowService creates a new FollowService
func NewFollowService(store repositories.Store) *FollowService {
	return &FollowService{store: store}
}

// Follow inserts the follower -> target edge. Self-follows are rejected,
// an existing edge is a successful no-op, and a concurrent duplicate
// insert resolved by the unique index is treated the same as an existing
// edge (no second notification).
func (s *FollowService) Follow(followerID, targetID uint) error {
	if followerID == targetID {
		return &apperrors.SelfFollowError{UserID: followerID}
	}

	return s.store.InTx(func(st repositories.Store) error {
		follower, err := getUser(st, followerID)
		if err != nil {
			return err
		}
		target, err := getUser(st, targetID)
		if err != nil {
			return err
		}

		exists, err := st.Follows().Exists(followerID, targetID)
		if err != nil {
			return apperrors.Storage("check follow edge", err)
		}
		if exists {
			return nil
		}

		edge := &models.Follow{FollowerID: followerID, FollowingID: targetID}
		if err := st.Follows().Create(edge); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race to an identical follow; the edge is
				// there, which is all the caller asked for.
				return nil
			}
			return apperrors.Storage("create follow edge", err)
		}

		return dispatchNotification(st, target, follower, models.NotificationTypeFollow)
	})
}

// Unfollow removes the edge if present. Absence is a no-op, not an error.
func (s *FollowService) Unfollow(followerID, targetID uint) error {
	return s.store.InTx(func(st repositories.Store) error {
		if _, err := getUser(st, followerID); err != nil {
			return err
		}
		if _, err := getUser(st, targetID); err != nil {
			return err
		}
		if _, err := st.Follows().Delete(followerID, targetID); err != nil {
			return apperrors.Storage("delete follow edge", err)
		}
		return nil
	})
}

// IsFollowing is a pure membership test on the edge set.
func (s *FollowService) IsFollowing(followerID, targetID uint) (bool, error) {
	if _, err := getUser(s.store, followerID); err != nil {
		return false, err
	}
	if _, err := getUser(s.store, targetID); err != nil {
		return false, err
	}
	following, err := s.store.Follows().Exists(followerID, targetID)
	if err != nil {
		return false, apperrors.Storage("check follow edge", err)
	}
	return following, nil
}

// Followers returns the users following userID.
func (s *FollowService) Followers(userID uint) ([]models.User, error) {
	if _, err := getUser(s.store, userID); err != nil {
		return nil, err
	}
	users, err := s.store.Follows().GetFollowers(userID)
	if err != nil {
		return nil, apperrors.Storage("list followers", err)
	}
	return users, nil
}

// Following returns the users userID follows.
func (s *FollowService) Following(userID uint) ([]models.User, error) {
	if _, err := getUser(s.store, userID); err != nil {
		return nil, err
	}
	users, err := s.store.Follows().GetFollowing(userID)
	if err != nil {
		return nil, apperrors.Storage("list following", err)
	}
	return users, nil
}
