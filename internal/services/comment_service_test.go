package services

import (
	"errors"
	"testing"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
)

func TestAddComment(t *testing.T) {
	t.Run("creates comment and notifies post owner", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewCommentService(st)
		owner := seedUser(t, st, "owner", models.RoleUser)
		commenter := seedUser(t, st, "commenter", models.RoleUser)
		post := seedPost(t, st, owner, "hello")

		comment, err := svc.AddComment(post.ID, commenter.ID, "nice one")
		if err != nil {
			t.Fatalf("add comment: %v", err)
		}
		if comment.ID == 0 {
			t.Error("comment should have an id assigned")
		}

		notifications := notificationsFor(t, st, owner)
		if len(notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notifications))
		}
		if notifications[0].Message != "commenter commented on your post." {
			t.Errorf("notification message = %q", notifications[0].Message)
		}
	})

	t.Run("own comment produces no notification", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewCommentService(st)
		owner := seedUser(t, st, "owner", models.RoleUser)
		post := seedPost(t, st, owner, "hello")

		if _, err := svc.AddComment(post.ID, owner.ID, "first"); err != nil {
			t.Fatalf("add comment: %v", err)
		}
		if got := len(notificationsFor(t, st, owner)); got != 0 {
			t.Errorf("self-comment produced %d notifications, want 0", got)
		}
	})

	t.Run("hidden post is locked", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewCommentService(st)
		owner := seedUser(t, st, "owner", models.RoleUser)
		commenter := seedUser(t, st, "commenter", models.RoleUser)
		post := seedHiddenPost(t, st, owner, "hidden")

		_, err := svc.AddComment(post.ID, commenter.ID, "anyone here?")
		var locked *apperrors.ContentLockedError
		if !errors.As(err, &locked) {
			t.Fatalf("expected ContentLockedError, got %v", err)
		}
		comments, listErr := st.Comments().ListByPost(post.ID)
		if listErr != nil {
			t.Fatalf("list comments: %v", listErr)
		}
		if len(comments) != 0 {
			t.Errorf("locked post has %d comments, want 0", len(comments))
		}
	})
}

func TestGetCommentsForPost(t *testing.T) {
	st := newTestStore(t)
	svc := NewCommentService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)
	post := seedPost(t, st, owner, "hello")

	for _, text := range []string{"first", "second", "third"} {
		if _, err := svc.AddComment(post.ID, owner.ID, text); err != nil {
			t.Fatalf("add comment %q: %v", text, err)
		}
	}

	comments, err := svc.GetCommentsForPost(post.ID)
	if err != nil {
		t.Fatalf("get comments: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("got %d comments, want 3", len(comments))
	}
	for i, want := range []string{"first", "second", "third"} {
		if comments[i].Content != want {
			t.Errorf("comment %d = %q, want %q (oldest first)", i, comments[i].Content, want)
		}
	}
}

func TestDeleteComment(t *testing.T) {
	st := newTestStore(t)
	svc := NewCommentService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)
	other := seedUser(t, st, "other", models.RoleUser)
	post := seedPost(t, st, owner, "hello")

	comment, err := svc.AddComment(post.ID, owner.ID, "mine")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	t.Run("non-owner may not delete", func(t *testing.T) {
		err := svc.DeleteComment(comment.ID, other.ID)
		var forbidden *apperrors.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("expected ForbiddenError, got %v", err)
		}
	})

	t.Run("owner deletes", func(t *testing.T) {
		if err := svc.DeleteComment(comment.ID, owner.ID); err != nil {
			t.Fatalf("delete comment: %v", err)
		}
	})

	t.Run("deleting a missing comment is not found", func(t *testing.T) {
		err := svc.DeleteComment(comment.ID, owner.ID)
		var notFound *apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
