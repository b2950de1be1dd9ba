package repositories

import (
	"github.com/bloghive/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	ListByRecipient(recipientID uint) ([]models.Notification, error)
	CountUnread(recipientID uint) (int64, error)
	SetRead(id uint, read bool) (bool, error)
	MarkAllRead(recipientID uint) error
	DeleteFor(userID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new Postgres-backed NotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListByRecipient returns a user's notifications newest first.
func (r *postgresNotificationRepository) ListByRecipient(recipientID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *postgresNotificationRepository) CountUnread(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = false", recipientID).Count(&count).Error
	return count, err
}

// SetRead flips the read flag and reports whether the row existed.
func (r *postgresNotificationRepository) SetRead(id uint, read bool) (bool, error) {
	res := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", read)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *postgresNotificationRepository) MarkAllRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = false", recipientID).Update("is_read", true).Error
}

// DeleteFor removes notifications the user received or triggered.
func (r *postgresNotificationRepository) DeleteFor(userID uint) error {
	return r.db.Where("recipient_id = ? OR actor_id = ?", userID, userID).Delete(&models.Notification{}).Error
}
