package services

import (
	"errors"
	"testing"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"gorm.io/gorm"
)

// raceStore wraps a Store and makes the like insert lose a duplicate-key
// race a configurable number of times, standing in for a concurrent
// toggle that wins the insert.
type raceStore struct {
	repositories.Store
	failures *int
}

func (s *raceStore) Likes() repositories.LikeRepository {
	return &racingLikeRepository{LikeRepository: s.Store.Likes(), failures: s.failures}
}

func (s *raceStore) InTx(fn func(repositories.Store) error) error {
	return s.Store.InTx(func(tx repositories.Store) error {
		return fn(&raceStore{Store: tx, failures: s.failures})
	})
}

type racingLikeRepository struct {
	repositories.LikeRepository
	failures *int
}

func (r *racingLikeRepository) Create(like *models.Like) error {
	if *r.failures > 0 {
		*r.failures--
		return gorm.ErrDuplicatedKey
	}
	return r.LikeRepository.Create(like)
}

func TestToggleLikeRace(t *testing.T) {
	t.Run("one lost race is retried and succeeds", func(t *testing.T) {
		st := newTestStore(t)
		owner := seedUser(t, st, "owner", models.RoleUser)
		liker := seedUser(t, st, "liker", models.RoleUser)
		post := seedPost(t, st, owner, "contended")

		failures := 1
		svc := NewInteractionService(&raceStore{Store: st, failures: &failures})

		if err := svc.ToggleLike(post.ID, liker.ID); err != nil {
			t.Fatalf("toggle should survive one duplicate-key race: %v", err)
		}
		liked, err := st.Likes().Exists(post.ID, liker.ID)
		if err != nil {
			t.Fatalf("exists: %v", err)
		}
		if !liked {
			t.Error("retry attempt should have inserted the like")
		}
	})

	t.Run("persistent conflict surfaces ConflictError", func(t *testing.T) {
		st := newTestStore(t)
		owner := seedUser(t, st, "owner", models.RoleUser)
		liker := seedUser(t, st, "liker", models.RoleUser)
		post := seedPost(t, st, owner, "contended")

		failures := 10
		svc := NewInteractionService(&raceStore{Store: st, failures: &failures})

		err := svc.ToggleLike(post.ID, liker.ID)
		var conflict *apperrors.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		// The aborted transactions must not leak a notification.
		if got := len(notificationsFor(t, st, owner)); got != 0 {
			t.Errorf("%d notifications after failed toggles, want 0", got)
		}
	})
}
