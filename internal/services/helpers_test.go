package services

import (
	"testing"

	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
)

func newTestStore(t *testing.T) repositories.Store {
	t.Helper()
	return repositories.NewMemoryStore()
}

func seedUser(t *testing.T, st repositories.Store, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
		Role:     role,
		Enabled:  true,
	}
	if err := st.Users().Create(user); err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return user
}

func seedPost(t *testing.T, st repositories.Store, owner *models.User, content string) *models.Post {
	t.Helper()
	post := &models.Post{Content: content, UserID: owner.ID}
	if err := st.Posts().Create(post); err != nil {
		t.Fatalf("seed post for %q: %v", owner.Username, err)
	}
	return post
}

func seedHiddenPost(t *testing.T, st repositories.Store, owner *models.User, content string) *models.Post {
	t.Helper()
	post := seedPost(t, st, owner, content)
	post.Hidden = true
	if err := st.Posts().Update(post); err != nil {
		t.Fatalf("hide post %d: %v", post.ID, err)
	}
	return post
}

func notificationsFor(t *testing.T, st repositories.Store, user *models.User) []models.Notification {
	t.Helper()
	notifications, err := st.Notifications().ListByRecipient(user.ID)
	if err != nil {
		t.Fatalf("list notifications for %q: %v", user.Username, err)
	}
	return notifications
}
