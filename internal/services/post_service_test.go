package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
)

func TestCreatePost(t *testing.T) {
	st := newTestStore(t)
	svc := NewPostService(st)
	author := seedUser(t, st, "author", models.RoleUser)

	t.Run("text only", func(t *testing.T) {
		post, err := svc.CreatePost(author.ID, models.CreatePostRequest{Content: "hello"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if post.ID == 0 {
			t.Error("post should have an id assigned")
		}
	})

	t.Run("media only", func(t *testing.T) {
		post, err := svc.CreatePost(author.ID, models.CreatePostRequest{
			MediaURL:  "https://cdn.example.com/a.jpg",
			MediaType: models.MediaTypeImage,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if post.MediaType != models.MediaTypeImage {
			t.Errorf("media type = %q", post.MediaType)
		}
	})

	t.Run("empty shell rejected", func(t *testing.T) {
		_, err := svc.CreatePost(author.ID, models.CreatePostRequest{Content: "   "})
		var invalid *apperrors.ValidationError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("unknown author rejected", func(t *testing.T) {
		_, err := svc.CreatePost(999, models.CreatePostRequest{Content: "ghost"})
		var notFound *apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestGetPost(t *testing.T) {
	st := newTestStore(t)
	svc := NewPostService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)
	viewer := seedUser(t, st, "viewer", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)
	hidden := seedHiddenPost(t, st, owner, "hidden")

	t.Run("hidden post reads as absent for strangers", func(t *testing.T) {
		_, err := svc.GetPost(hidden.ID, viewer)
		var notFound *apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("owner still reads their hidden post", func(t *testing.T) {
		if _, err := svc.GetPost(hidden.ID, owner); err != nil {
			t.Fatalf("owner read: %v", err)
		}
	})

	t.Run("admin reads hidden posts", func(t *testing.T) {
		if _, err := svc.GetPost(hidden.ID, admin); err != nil {
			t.Fatalf("admin read: %v", err)
		}
	})
}

func TestListPosts(t *testing.T) {
	st := newTestStore(t)
	svc := NewPostService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)
	viewer := seedUser(t, st, "viewer", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)

	// 25 posts, every 5th hidden.
	for i := 1; i <= 25; i++ {
		post := seedPost(t, st, owner, fmt.Sprintf("post %d", i))
		if i%5 == 0 {
			post.Hidden = true
			if err := st.Posts().Update(post); err != nil {
				t.Fatalf("hide post %d: %v", post.ID, err)
			}
		}
	}

	t.Run("pages walk every visible post exactly once", func(t *testing.T) {
		seen := make(map[uint]bool)
		var cursor *uint
		pages := 0
		for {
			page, err := svc.ListPosts(viewer, cursor, 7)
			if err != nil {
				t.Fatalf("list posts: %v", err)
			}
			prev := uint(0)
			for i, post := range page.Content {
				if post.Hidden {
					t.Errorf("hidden post %d leaked into a non-admin page", post.ID)
				}
				if seen[post.ID] {
					t.Errorf("post %d appeared twice", post.ID)
				}
				seen[post.ID] = true
				if i > 0 && post.ID >= prev {
					t.Errorf("page not strictly descending: %d then %d", prev, post.ID)
				}
				prev = post.ID
			}
			if !page.HasMore {
				break
			}
			cursor = page.NextCursor
			if pages++; pages > 10 {
				t.Fatal("pagination did not terminate")
			}
		}
		if len(seen) != 20 {
			t.Errorf("walked %d posts, want 20 visible", len(seen))
		}
	})

	t.Run("pages stay full despite hidden rows", func(t *testing.T) {
		page, err := svc.ListPosts(viewer, nil, 7)
		if err != nil {
			t.Fatalf("list posts: %v", err)
		}
		if len(page.Content) != 7 {
			t.Errorf("first page holds %d posts, want 7", len(page.Content))
		}
		if !page.HasMore {
			t.Error("first page should report more")
		}
	})

	t.Run("admin walks all posts", func(t *testing.T) {
		total := 0
		var cursor *uint
		for {
			page, err := svc.ListPosts(admin, cursor, 10)
			if err != nil {
				t.Fatalf("list posts: %v", err)
			}
			total += len(page.Content)
			if !page.HasMore {
				break
			}
			cursor = page.NextCursor
		}
		if total != 25 {
			t.Errorf("admin walked %d posts, want 25", total)
		}
	})

	t.Run("rows inserted mid-walk do not shift later pages", func(t *testing.T) {
		first, err := svc.ListPosts(viewer, nil, 5)
		if err != nil {
			t.Fatalf("list posts: %v", err)
		}
		seedPost(t, st, owner, "late arrival")

		second, err := svc.ListPosts(viewer, first.NextCursor, 5)
		if err != nil {
			t.Fatalf("list posts: %v", err)
		}
		firstLast := first.Content[len(first.Content)-1].ID
		for _, post := range second.Content {
			if post.ID >= firstLast {
				t.Errorf("post %d from page 2 should be below cursor %d", post.ID, firstLast)
			}
		}
	})

	t.Run("exhausted walk yields empty page without more", func(t *testing.T) {
		low := uint(1)
		page, err := svc.ListPosts(viewer, &low, 5)
		if err != nil {
			t.Fatalf("list posts: %v", err)
		}
		if len(page.Content) != 0 || page.HasMore {
			t.Errorf("expected empty terminal page, got %d rows, hasMore=%v", len(page.Content), page.HasMore)
		}
		if page.Content == nil {
			t.Error("empty page content should be non-nil")
		}
	})
}

func TestListUserPosts(t *testing.T) {
	st := newTestStore(t)
	svc := NewPostService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)
	other := seedUser(t, st, "other", models.RoleUser)
	viewer := seedUser(t, st, "viewer", models.RoleUser)

	seedPost(t, st, owner, "mine")
	seedHiddenPost(t, st, owner, "mine but hidden")
	seedPost(t, st, other, "not mine")

	page, err := svc.ListUserPosts(owner.ID, viewer, nil, 10)
	if err != nil {
		t.Fatalf("list user posts: %v", err)
	}
	if len(page.Content) != 1 {
		t.Fatalf("got %d posts, want 1", len(page.Content))
	}
	if page.Content[0].Content != "mine" {
		t.Errorf("unexpected post %q", page.Content[0].Content)
	}
}

func TestUpdatePost(t *testing.T) {
	st := newTestStore(t)
	svc := NewPostService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)
	other := seedUser(t, st, "other", models.RoleUser)

	t.Run("owner edits content", func(t *testing.T) {
		post := seedPost(t, st, owner, "before")
		updated, err := svc.UpdatePost(post.ID, owner.ID, models.UpdatePostRequest{Content: "after"})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Content != "after" {
			t.Errorf("content = %q, want %q", updated.Content, "after")
		}
	})

	t.Run("non-owner may not edit", func(t *testing.T) {
		post := seedPost(t, st, owner, "original")
		_, err := svc.UpdatePost(post.ID, other.ID, models.UpdatePostRequest{Content: "hijacked"})
		var forbidden *apperrors.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("expected ForbiddenError, got %v", err)
		}
	})

	t.Run("hidden post is locked against edits", func(t *testing.T) {
		post := seedHiddenPost(t, st, owner, "hidden")
		_, err := svc.UpdatePost(post.ID, owner.ID, models.UpdatePostRequest{Content: "sneaky"})
		var locked *apperrors.ContentLockedError
		if !errors.As(err, &locked) {
			t.Fatalf("expected ContentLockedError, got %v", err)
		}
	})

	t.Run("edit may not strip all substance", func(t *testing.T) {
		post := seedPost(t, st, owner, "something")
		_, err := svc.UpdatePost(post.ID, owner.ID, models.UpdatePostRequest{Content: ""})
		var invalid *apperrors.ValidationError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestDeletePost(t *testing.T) {
	st := newTestStore(t)
	postSvc := NewPostService(st)
	commentSvc := NewCommentService(st)
	likeSvc := NewInteractionService(st)
	owner := seedUser(t, st, "owner", models.RoleUser)
	other := seedUser(t, st, "other", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)

	t.Run("non-owner may not delete", func(t *testing.T) {
		post := seedPost(t, st, owner, "keep out")
		err := postSvc.DeletePost(post.ID, other)
		var forbidden *apperrors.ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("expected ForbiddenError, got %v", err)
		}
	})

	t.Run("owner delete cascades comments and likes", func(t *testing.T) {
		post := seedPost(t, st, owner, "short lived")
		if _, err := commentSvc.AddComment(post.ID, other.ID, "hi"); err != nil {
			t.Fatalf("add comment: %v", err)
		}
		if err := likeSvc.ToggleLike(post.ID, other.ID); err != nil {
			t.Fatalf("toggle like: %v", err)
		}

		if err := postSvc.DeletePost(post.ID, owner); err != nil {
			t.Fatalf("delete: %v", err)
		}

		comments, err := st.Comments().ListByPost(post.ID)
		if err != nil {
			t.Fatalf("list comments: %v", err)
		}
		if len(comments) != 0 {
			t.Errorf("%d comments survive the post, want 0", len(comments))
		}
		count, err := st.Likes().CountByPost(post.ID)
		if err != nil {
			t.Fatalf("count likes: %v", err)
		}
		if count != 0 {
			t.Errorf("%d likes survive the post, want 0", count)
		}
	})

	t.Run("admin may delete any post", func(t *testing.T) {
		post := seedPost(t, st, owner, "moderated away")
		if err := postSvc.DeletePost(post.ID, admin); err != nil {
			t.Fatalf("admin delete: %v", err)
		}
	})

	t.Run("owner may delete their hidden post", func(t *testing.T) {
		post := seedHiddenPost(t, st, owner, "hidden but mine")
		if err := postSvc.DeletePost(post.ID, owner); err != nil {
			t.Fatalf("delete hidden: %v", err)
		}
	})
}
