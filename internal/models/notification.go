package models

import "time"

// Notification types dispatched by the engine.
const (
	NotificationTypeLike    = "LIKE"
	NotificationTypeFollow  = "FOLLOW"
	NotificationTypeComment = "COMMENT"
)

// Notification represents a user notification row. Created only by the
// dispatcher, never where recipient == actor.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:20;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
