package services

import (
	"errors"
	"testing"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
)

func TestGetUserNotifications(t *testing.T) {
	st := newTestStore(t)
	svc := NewNotificationService(st)
	followSvc := NewFollowService(st)
	likeSvc := NewInteractionService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)
	actor := seedUser(t, st, "actor", models.RoleUser)
	post := seedPost(t, st, owner, "hello")

	if err := followSvc.Follow(actor.ID, owner.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := likeSvc.ToggleLike(post.ID, actor.ID); err != nil {
		t.Fatalf("toggle like: %v", err)
	}

	notifications, err := svc.GetUserNotifications(owner.Username)
	if err != nil {
		t.Fatalf("get notifications: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("got %d notifications, want 2", len(notifications))
	}
	// Newest first: the like came after the follow.
	if notifications[0].Type != models.NotificationTypeLike {
		t.Errorf("first notification type = %q, want LIKE", notifications[0].Type)
	}
	if notifications[1].Type != models.NotificationTypeFollow {
		t.Errorf("second notification type = %q, want FOLLOW", notifications[1].Type)
	}

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.GetUserNotifications("nobody")
		var notFound *apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestReadState(t *testing.T) {
	st := newTestStore(t)
	svc := NewNotificationService(st)
	followSvc := NewFollowService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)

	for _, name := range []string{"f1", "f2", "f3"} {
		follower := seedUser(t, st, name, models.RoleUser)
		if err := followSvc.Follow(follower.ID, owner.ID); err != nil {
			t.Fatalf("follow by %s: %v", name, err)
		}
	}

	count, err := svc.GetUnreadCount(owner.Username)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 3 {
		t.Fatalf("unread count = %d, want 3", count)
	}

	notifications, err := svc.GetUserNotifications(owner.Username)
	if err != nil {
		t.Fatalf("get notifications: %v", err)
	}

	t.Run("mark one read", func(t *testing.T) {
		if err := svc.MarkAsRead(notifications[0].ID); err != nil {
			t.Fatalf("mark read: %v", err)
		}
		count, err := svc.GetUnreadCount(owner.Username)
		if err != nil {
			t.Fatalf("unread count: %v", err)
		}
		if count != 2 {
			t.Errorf("unread count = %d, want 2", count)
		}
	})

	t.Run("mark back unread", func(t *testing.T) {
		if err := svc.MarkAsUnread(notifications[0].ID); err != nil {
			t.Fatalf("mark unread: %v", err)
		}
		count, err := svc.GetUnreadCount(owner.Username)
		if err != nil {
			t.Fatalf("unread count: %v", err)
		}
		if count != 3 {
			t.Errorf("unread count = %d, want 3", count)
		}
	})

	t.Run("mark all read", func(t *testing.T) {
		if err := svc.MarkAllAsRead(owner.Username); err != nil {
			t.Fatalf("mark all read: %v", err)
		}
		count, err := svc.GetUnreadCount(owner.Username)
		if err != nil {
			t.Fatalf("unread count: %v", err)
		}
		if count != 0 {
			t.Errorf("unread count = %d, want 0", count)
		}
	})

	t.Run("missing notification id", func(t *testing.T) {
		err := svc.MarkAsRead(9999)
		var notFound *apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
