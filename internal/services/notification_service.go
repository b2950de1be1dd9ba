package services

import (
	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
)

// NotificationService owns the notification rows: dispatch on behalf of
// the interaction services, plus the user-facing read/unread surface.
type NotificationService struct {
	store repositories.Store
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(store repositories.Store) *NotificationService {
	return &NotificationService{store: store}
}

// dispatchNotification inserts one unread notification row against st,
// which may be a transaction-scoped store so the insert commits (or
// aborts) together with the action that triggered it. Self-actions are
// suppressed: recipient == actor writes nothing. Repeated actions are not
// deduplicated; every qualifying action creates a fresh row.
func dispatchNotification(st repositories.Store, recipient, actor *models.User, notificationType string) error {
	if recipient.ID == actor.ID {
		return nil
	}

	var message string
	switch notificationType {
	case models.NotificationTypeLike:
		message = actor.Username + " liked your post."
	case models.NotificationTypeFollow:
		message = actor.Username + " started following you."
	case models.NotificationTypeComment:
		message = actor.Username + " commented on your post."
	}

	notification := &models.Notification{
		Type:        notificationType,
		ActorID:     actor.ID,
		RecipientID: recipient.ID,
		Message:     message,
	}
	if err := st.Notifications().Create(notification); err != nil {
		return apperrors.Storage("create notification", err)
	}
	return nil
}

// GetUserNotifications returns the user's notifications newest first.
func (s *NotificationService) GetUserNotifications(username string) ([]models.Notification, error) {
	user, err := getUserByUsername(s.store, username)
	if err != nil {
		return nil, err
	}
	notifications, err := s.store.Notifications().ListByRecipient(user.ID)
	if err != nil {
		return nil, apperrors.Storage("list notifications", err)
	}
	return notifications, nil
}

func (s *NotificationService) GetUnreadCount(username string) (int64, error) {
	user, err := getUserByUsername(s.store, username)
	if err != nil {
		return 0, err
	}
	count, err := s.store.Notifications().CountUnread(user.ID)
	if err != nil {
		return 0, apperrors.Storage("count unread notifications", err)
	}
	return count, nil
}

// MarkAsRead sets the read flag on a notification.
func (s *NotificationService) MarkAsRead(id uint) error {
	return s.setRead(id, true)
}

// MarkAsUnread clears the read flag on a notification.
func (s *NotificationService) MarkAsUnread(id uint) error {
	return s.setRead(id, false)
}

func (s *NotificationService) setRead(id uint, read bool) error {
	found, err := s.store.Notifications().SetRead(id, read)
	if err != nil {
		return apperrors.Storage("update notification", err)
	}
	if !found {
		return apperrors.NewNotFound("notification", id)
	}
	return nil
}

// MarkAllAsRead marks every unread notification of the user as read.
func (s *NotificationService) MarkAllAsRead(username string) error {
	user, err := getUserByUsername(s.store, username)
	if err != nil {
		return err
	}
	if err := s.store.Notifications().MarkAllRead(user.ID); err != nil {
		return apperrors.Storage("mark all notifications read", err)
	}
	return nil
}
