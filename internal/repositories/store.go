package repositories

import "gorm.io/gorm"

// Store aggregates the per-entity repositories behind one transactional
// boundary. Services never hold a repository directly; they go through the
// Store so multi-entity mutations (edge insert + notification insert,
// like toggle + notification) can share a transaction via InTx.
type Store interface {
	Users() UserRepository
	Posts() PostRepository
	Comments() CommentRepository
	Likes() LikeRepository
	Follows() FollowRepository
	Reports() ReportRepository
	Notifications() NotificationRepository

	// InTx runs fn against a Store whose repositories all operate inside
	// a single transaction. A non-nil error from fn aborts the whole
	// transaction; nothing partial persists.
	InTx(fn func(Store) error) error
}

// PostgresStore implements Store over a GORM Postgres handle
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Users() UserRepository { return NewPostgresUserRepository(s.db) }

func (s *PostgresStore) Posts() PostRepository { return NewPostgresPostRepository(s.db) }

func (s *PostgresStore) Comments() CommentRepository { return NewPostgresCommentRepository(s.db) }

func (s *PostgresStore) Likes() LikeRepository { return NewPostgresLikeRepository(s.db) }

func (s *PostgresStore) Follows() FollowRepository { return NewPostgresFollowRepository(s.db) }

func (s *PostgresStore) Reports() ReportRepository { return NewPostgresReportRepository(s.db) }

func (s *PostgresStore) Notifications() NotificationRepository {
	return NewPostgresNotificationRepository(s.db)
}

func (s *PostgresStore) InTx(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewPostgresStore(tx))
	})
}
