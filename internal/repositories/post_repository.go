package repositories

import (
	"github.com/bloghive/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
	// ListCursor returns up to limit posts with id below cursor, newest
	// first. When visibleOnly is set, hidden rows are excluded at the
	// query so pages stay full for non-admin viewers.
	ListCursor(cursor *uint, limit int, visibleOnly bool) ([]models.Post, error)
	ListByOwnerCursor(ownerID uint, cursor *uint, limit int, visibleOnly bool) ([]models.Post, error)
	CountByOwner(ownerID uint, visibleOnly bool) (int64, error)
	DeleteByOwner(ownerID uint) error
	ListIDsByOwner(ownerID uint) ([]uint, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostgresPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostgresPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *PostgresPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

func (r *PostgresPostRepository) ListCursor(cursor *uint, limit int, visibleOnly bool) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Order("id DESC").Limit(limit)
	if cursor != nil {
		q = q.Where("id < ?", *cursor)
	}
	if visibleOnly {
		q = q.Where("hidden = false")
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostgresPostRepository) ListByOwnerCursor(ownerID uint, cursor *uint, limit int, visibleOnly bool) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Where("user_id = ?", ownerID).Order("id DESC").Limit(limit)
	if cursor != nil {
		q = q.Where("id < ?", *cursor)
	}
	if visibleOnly {
		q = q.Where("hidden = false")
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostgresPostRepository) CountByOwner(ownerID uint, visibleOnly bool) (int64, error) {
	var count int64
	q := r.db.Model(&models.Post{}).Where("user_id = ?", ownerID)
	if visibleOnly {
		q = q.Where("hidden = false")
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresPostRepository) DeleteByOwner(ownerID uint) error {
	return r.db.Where("user_id = ?", ownerID).Delete(&models.Post{}).Error
}

func (r *PostgresPostRepository) ListIDsByOwner(ownerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.Post{}).Where("user_id = ?", ownerID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
