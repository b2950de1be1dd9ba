package repositories

import (
	"errors"
	"testing"

	"github.com/bloghive/backend/internal/models"
	"gorm.io/gorm"
)

func TestMemoryStoreInTx(t *testing.T) {
	t.Run("commit keeps writes", func(t *testing.T) {
		st := NewMemoryStore()
		err := st.InTx(func(tx Store) error {
			return tx.Users().Create(&models.User{Username: "a", Email: "a@x.com"})
		})
		if err != nil {
			t.Fatalf("tx: %v", err)
		}
		if _, err := st.Users().GetByUsername("a"); err != nil {
			t.Errorf("committed user should exist: %v", err)
		}
	})

	t.Run("error rolls back every table", func(t *testing.T) {
		st := NewMemoryStore()
		user := &models.User{Username: "a", Email: "a@x.com"}
		if err := st.Users().Create(user); err != nil {
			t.Fatalf("create: %v", err)
		}

		boom := errors.New("boom")
		err := st.InTx(func(tx Store) error {
			if err := tx.Posts().Create(&models.Post{Content: "partial", UserID: user.ID}); err != nil {
				return err
			}
			if err := tx.Notifications().Create(&models.Notification{RecipientID: user.ID}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("tx error = %v, want boom", err)
		}

		if _, err := st.Posts().GetByID(1); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("post should have rolled back, got %v", err)
		}
		notifications, err := st.Notifications().ListByRecipient(user.ID)
		if err != nil {
			t.Fatalf("list notifications: %v", err)
		}
		if len(notifications) != 0 {
			t.Errorf("%d notifications survive rollback, want 0", len(notifications))
		}
		// Pre-transaction state is intact.
		if _, err := st.Users().GetByUsername("a"); err != nil {
			t.Errorf("pre-existing user lost in rollback: %v", err)
		}
	})

	t.Run("ids keep increasing across rollbacks", func(t *testing.T) {
		st := NewMemoryStore()
		owner := &models.User{Username: "a", Email: "a@x.com"}
		if err := st.Users().Create(owner); err != nil {
			t.Fatalf("create: %v", err)
		}

		first := &models.Post{Content: "one", UserID: owner.ID}
		if err := st.Posts().Create(first); err != nil {
			t.Fatalf("create post: %v", err)
		}
		second := &models.Post{Content: "two", UserID: owner.ID}
		if err := st.Posts().Create(second); err != nil {
			t.Fatalf("create post: %v", err)
		}
		if second.ID <= first.ID {
			t.Errorf("ids not strictly increasing: %d then %d", first.ID, second.ID)
		}
	})
}

func TestMemoryStoreUniqueEmulation(t *testing.T) {
	st := NewMemoryStore()
	user := &models.User{Username: "a", Email: "a@x.com"}
	if err := st.Users().Create(user); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("duplicate username", func(t *testing.T) {
		err := st.Users().Create(&models.User{Username: "a", Email: "other@x.com"})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Errorf("err = %v, want ErrDuplicatedKey", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := st.Users().Create(&models.User{Username: "b", Email: "a@x.com"})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Errorf("err = %v, want ErrDuplicatedKey", err)
		}
	})

	t.Run("duplicate like pair", func(t *testing.T) {
		if err := st.Likes().Create(&models.Like{PostID: 1, UserID: 1}); err != nil {
			t.Fatalf("create like: %v", err)
		}
		err := st.Likes().Create(&models.Like{PostID: 1, UserID: 1})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Errorf("err = %v, want ErrDuplicatedKey", err)
		}
	})

	t.Run("duplicate follow edge", func(t *testing.T) {
		if err := st.Follows().Create(&models.Follow{FollowerID: 1, FollowingID: 2}); err != nil {
			t.Fatalf("create follow: %v", err)
		}
		err := st.Follows().Create(&models.Follow{FollowerID: 1, FollowingID: 2})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Errorf("err = %v, want ErrDuplicatedKey", err)
		}
	})

	t.Run("absent row", func(t *testing.T) {
		if _, err := st.Users().GetByID(42); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("err = %v, want ErrRecordNotFound", err)
		}
	})
}
