package services

import (
	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
)

// UserService covers the profile surface: lookup, search, bio and
// picture updates.
type UserService struct {
	store repositories.Store
}

// NewUserService creates a new UserService
func NewUserService(store repositories.Store) *UserService {
	return &UserService{store: store}
}

// buildProfile assembles a profile with relationship counts. When
// visibleOnly is set, hidden posts are left out of the post count.
func buildProfile(st repositories.Store, user *models.User, visibleOnly bool) (*models.UserProfile, error) {
	followers, err := st.Follows().CountFollowers(user.ID)
	if err != nil {
		return nil, apperrors.Storage("count followers", err)
	}
	following, err := st.Follows().CountFollowing(user.ID)
	if err != nil {
		return nil, apperrors.Storage("count following", err)
	}
	posts, err := st.Posts().CountByOwner(user.ID, visibleOnly)
	if err != nil {
		return nil, apperrors.Storage("count posts", err)
	}

	return &models.UserProfile{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		Role:              user.Role,
		Enabled:           user.Enabled,
		ProfilePictureURL: user.ProfilePictureURL,
		Bio:               user.Bio,
		FollowersCount:    followers,
		FollowingCount:    following,
		PostsCount:        posts,
	}, nil
}

// GetProfile returns a user's profile. Non-admin viewers see a post
// count that excludes hidden posts.
func (s *UserService) GetProfile(userID uint, viewer *models.User) (*models.UserProfile, error) {
	user, err := getUser(s.store, userID)
	if err != nil {
		return nil, err
	}
	return buildProfile(s.store, user, !viewer.IsAdmin())
}

// SearchUsers finds users by username substring.
func (s *UserService) SearchUsers(query string) ([]models.UserCompact, error) {
	users, err := s.store.Users().Search(query)
	if err != nil {
		return nil, apperrors.Storage("search users", err)
	}
	results := make([]models.UserCompact, 0, len(users))
	for _, user := range users {
		results = append(results, user.ToCompact())
	}
	return results, nil
}

// UpdateBio replaces the user's bio.
func (s *UserService) UpdateBio(username, bio string) error {
	return s.store.InTx(func(st repositories.Store) error {
		user, err := getUserByUsername(st, username)
		if err != nil {
			return err
		}
		user.Bio = bio
		if err := st.Users().Update(user); err != nil {
			return apperrors.Storage("update user", err)
		}
		return nil
	})
}

// UpdateProfilePicture replaces the user's profile picture reference.
func (s *UserService) UpdateProfilePicture(username, pictureURL string) error {
	return s.store.InTx(func(st repositories.Store) error {
		user, err := getUserByUsername(st, username)
		if err != nil {
			return err
		}
		user.ProfilePictureURL = pictureURL
		if err := st.Users().Update(user); err != nil {
			return apperrors.Storage("update user", err)
		}
		return nil
	})
}
