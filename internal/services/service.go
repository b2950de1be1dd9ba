package services

import (
	"errors"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"gorm.io/gorm"
)

// getUser loads a user or translates the store's absence/failure into the
// engine's error kinds.
func getUser(st repositories.Store, id uint) (*models.User, error) {
	user, err := st.Users().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user", id)
		}
		return nil, apperrors.Storage("get user", err)
	}
	return user, nil
}

func getUserByUsername(st repositories.Store, username string) (*models.User, error) {
	user, err := st.Users().GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user", username)
		}
		return nil, apperrors.Storage("get user", err)
	}
	return user, nil
}

func getPost(st repositories.Store, id uint) (*models.Post, error) {
	post, err := st.Posts().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("post", id)
		}
		return nil, apperrors.Storage("get post", err)
	}
	return post, nil
}
