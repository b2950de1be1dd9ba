package repositories

import (
	"github.com/bloghive/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// Create inserts a like; the (post_id, user_id) unique index makes a
	// concurrent duplicate surface as gorm.ErrDuplicatedKey.
	Create(like *models.Like) error
	// Delete removes the (postID, userID) like and reports whether a row
	// existed. Absence is not an error.
	Delete(postID, userID uint) (bool, error)
	Exists(postID, userID uint) (bool, error)
	CountByPost(postID uint) (int64, error)
	DeleteByOwner(ownerID uint) error
	DeleteByPost(postID uint) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *PostgresLikeRepository) Delete(postID, userID uint) (bool, error) {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresLikeRepository) Exists(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresLikeRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresLikeRepository) DeleteByOwner(ownerID uint) error {
	return r.db.Where("user_id = ?", ownerID).Delete(&models.Like{}).Error
}

func (r *PostgresLikeRepository) DeleteByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Like{}).Error
}
