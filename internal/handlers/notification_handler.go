package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/:id/unread", h.MarkAsUnread)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// GetNotifications returns the current user's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	user := currentUser(c)

	notifications, err := h.notificationService.GetUserNotifications(user.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount returns how many unread notifications the current user has
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	user := currentUser(c)

	count, err := h.notificationService.GetUnreadCount(user.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread_count": count})
}

// MarkAsRead marks a single notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.notificationService.MarkAsRead(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// MarkAsUnread marks a single notification as unread
func (h *NotificationHandler) MarkAsUnread(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.notificationService.MarkAsUnread(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as unread"})
}

// MarkAllAsRead marks every notification for the current user as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	user := currentUser(c)

	if err := h.notificationService.MarkAllAsRead(user.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "All notifications marked as read"})
}
