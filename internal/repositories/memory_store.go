package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bloghive/backend/internal/models"
	"gorm.io/gorm"
)

// MemoryStore implements Store in process memory. It backs the test suites
// and the STORAGE=memory development mode. One mutex stands in for the
// database's isolation; unique indexes are emulated and duplicates report
// gorm.ErrDuplicatedKey, matching what the Postgres driver surfaces with
// TranslateError enabled. Absent rows report gorm.ErrRecordNotFound.
type MemoryStore struct {
	mu     *sync.Mutex
	data   *memoryData
	locked bool
}

type memoryData struct {
	userSeq, postSeq, commentSeq, likeSeq, followSeq, reportSeq, notifSeq uint

	users         map[uint]models.User
	posts         map[uint]models.Post
	comments      map[uint]models.Comment
	likes         map[uint]models.Like
	follows       map[uint]models.Follow
	reports       map[uint]models.Report
	notifications map[uint]models.Notification
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu: &sync.Mutex{},
		data: &memoryData{
			users:         make(map[uint]models.User),
			posts:         make(map[uint]models.Post),
			comments:      make(map[uint]models.Comment),
			likes:         make(map[uint]models.Like),
			follows:       make(map[uint]models.Follow),
			reports:       make(map[uint]models.Report),
			notifications: make(map[uint]models.Notification),
		},
	}
}

func (s *MemoryStore) lock() func() {
	if s.locked {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *MemoryStore) Users() UserRepository                 { return &memoryUserRepository{s} }
func (s *MemoryStore) Posts() PostRepository                 { return &memoryPostRepository{s} }
func (s *MemoryStore) Comments() CommentRepository           { return &memoryCommentRepository{s} }
func (s *MemoryStore) Likes() LikeRepository                 { return &memoryLikeRepository{s} }
func (s *MemoryStore) Follows() FollowRepository             { return &memoryFollowRepository{s} }
func (s *MemoryStore) Reports() ReportRepository             { return &memoryReportRepository{s} }
func (s *MemoryStore) Notifications() NotificationRepository { return &memoryNotificationRepository{s} }

// InTx holds the store lock for the whole callback and restores a snapshot
// of every table when fn fails, so partial writes never persist.
func (s *MemoryStore) InTx(fn func(Store) error) error {
	unlock := s.lock()
	defer unlock()

	snapshot := s.data.clone()
	if err := fn(&MemoryStore{mu: s.mu, data: s.data, locked: true}); err != nil {
		*s.data = *snapshot
		return err
	}
	return nil
}

func (d *memoryData) clone() *memoryData {
	c := *d
	c.users = cloneTable(d.users)
	c.posts = cloneTable(d.posts)
	c.comments = cloneTable(d.comments)
	c.likes = cloneTable(d.likes)
	c.follows = cloneTable(d.follows)
	c.reports = cloneTable(d.reports)
	c.notifications = cloneTable(d.notifications)
	return &c
}

func cloneTable[T any](src map[uint]T) map[uint]T {
	dst := make(map[uint]T, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func stampNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// ---- users ----

type memoryUserRepository struct{ s *MemoryStore }

func (r *memoryUserRepository) Create(user *models.User) error {
	defer r.s.lock()()
	d := r.s.data
	for _, u := range d.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	d.userSeq++
	user.ID = d.userSeq
	user.CreatedAt = stampNow(user.CreatedAt)
	user.UpdatedAt = user.CreatedAt
	d.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(id uint) (*models.User, error) {
	defer r.s.lock()()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) GetByUsername(username string) (*models.User, error) {
	defer r.s.lock()()
	for _, u := range r.s.data.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) GetByEmail(email string) (*models.User, error) {
	defer r.s.lock()()
	for _, u := range r.s.data.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) Update(user *models.User) error {
	defer r.s.lock()()
	if _, ok := r.s.data.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	r.s.data.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Delete(id uint) error {
	defer r.s.lock()()
	delete(r.s.data.users, id)
	return nil
}

func (r *memoryUserRepository) Search(query string) ([]models.User, error) {
	defer r.s.lock()()
	q := strings.ToLower(query)
	var out []models.User
	for _, u := range r.s.data.users {
		if strings.Contains(strings.ToLower(u.Username), q) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryUserRepository) ListCursor(cursor *uint, limit int) ([]models.User, error) {
	defer r.s.lock()()
	var out []models.User
	for _, u := range r.s.data.users {
		if cursor == nil || u.ID < *cursor {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryUserRepository) ExistsByUsername(username string) (bool, error) {
	defer r.s.lock()()
	for _, u := range r.s.data.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// ---- posts ----

type memoryPostRepository struct{ s *MemoryStore }

func (r *memoryPostRepository) Create(post *models.Post) error {
	defer r.s.lock()()
	d := r.s.data
	d.postSeq++
	post.ID = d.postSeq
	post.CreatedAt = stampNow(post.CreatedAt)
	post.UpdatedAt = post.CreatedAt
	d.posts[post.ID] = *post
	return nil
}

func (r *memoryPostRepository) GetByID(id uint) (*models.Post, error) {
	defer r.s.lock()()
	p, ok := r.s.data.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *memoryPostRepository) Update(post *models.Post) error {
	defer r.s.lock()()
	if _, ok := r.s.data.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	post.UpdatedAt = time.Now()
	r.s.data.posts[post.ID] = *post
	return nil
}

func (r *memoryPostRepository) Delete(id uint) error {
	defer r.s.lock()()
	delete(r.s.data.posts, id)
	return nil
}

func (r *memoryPostRepository) ListCursor(cursor *uint, limit int, visibleOnly bool) ([]models.Post, error) {
	defer r.s.lock()()
	return listPostsLocked(r.s.data, 0, cursor, limit, visibleOnly), nil
}

func (r *memoryPostRepository) ListByOwnerCursor(ownerID uint, cursor *uint, limit int, visibleOnly bool) ([]models.Post, error) {
	defer r.s.lock()()
	return listPostsLocked(r.s.data, ownerID, cursor, limit, visibleOnly), nil
}

func listPostsLocked(d *memoryData, ownerID uint, cursor *uint, limit int, visibleOnly bool) []models.Post {
	var out []models.Post
	for _, p := range d.posts {
		if ownerID != 0 && p.UserID != ownerID {
			continue
		}
		if cursor != nil && p.ID >= *cursor {
			continue
		}
		if visibleOnly && p.Hidden {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *memoryPostRepository) CountByOwner(ownerID uint, visibleOnly bool) (int64, error) {
	defer r.s.lock()()
	var count int64
	for _, p := range r.s.data.posts {
		if p.UserID == ownerID && (!visibleOnly || !p.Hidden) {
			count++
		}
	}
	return count, nil
}

func (r *memoryPostRepository) DeleteByOwner(ownerID uint) error {
	defer r.s.lock()()
	for id, p := range r.s.data.posts {
		if p.UserID == ownerID {
			delete(r.s.data.posts, id)
		}
	}
	return nil
}

func (r *memoryPostRepository) ListIDsByOwner(ownerID uint) ([]uint, error) {
	defer r.s.lock()()
	var ids []uint
	for id, p := range r.s.data.posts {
		if p.UserID == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// ---- comments ----

type memoryCommentRepository struct{ s *MemoryStore }

func (r *memoryCommentRepository) Create(comment *models.Comment) error {
	defer r.s.lock()()
	d := r.s.data
	d.commentSeq++
	comment.ID = d.commentSeq
	comment.CreatedAt = stampNow(comment.CreatedAt)
	d.comments[comment.ID] = *comment
	return nil
}

func (r *memoryCommentRepository) GetByID(id uint) (*models.Comment, error) {
	defer r.s.lock()()
	c, ok := r.s.data.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *memoryCommentRepository) ListByPost(postID uint) ([]models.Comment, error) {
	defer r.s.lock()()
	var out []models.Comment
	for _, c := range r.s.data.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryCommentRepository) Delete(id uint) error {
	defer r.s.lock()()
	delete(r.s.data.comments, id)
	return nil
}

func (r *memoryCommentRepository) DeleteByOwner(ownerID uint) error {
	defer r.s.lock()()
	for id, c := range r.s.data.comments {
		if c.UserID == ownerID {
			delete(r.s.data.comments, id)
		}
	}
	return nil
}

func (r *memoryCommentRepository) DeleteByPost(postID uint) error {
	defer r.s.lock()()
	for id, c := range r.s.data.comments {
		if c.PostID == postID {
			delete(r.s.data.comments, id)
		}
	}
	return nil
}

// ---- likes ----

type memoryLikeRepository struct{ s *MemoryStore }

func (r *memoryLikeRepository) Create(like *models.Like) error {
	defer r.s.lock()()
	d := r.s.data
	for _, l := range d.likes {
		if l.PostID == like.PostID && l.UserID == like.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	d.likeSeq++
	like.ID = d.likeSeq
	like.CreatedAt = stampNow(like.CreatedAt)
	d.likes[like.ID] = *like
	return nil
}

func (r *memoryLikeRepository) Delete(postID, userID uint) (bool, error) {
	defer r.s.lock()()
	for id, l := range r.s.data.likes {
		if l.PostID == postID && l.UserID == userID {
			delete(r.s.data.likes, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryLikeRepository) Exists(postID, userID uint) (bool, error) {
	defer r.s.lock()()
	for _, l := range r.s.data.likes {
		if l.PostID == postID && l.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryLikeRepository) CountByPost(postID uint) (int64, error) {
	defer r.s.lock()()
	var count int64
	for _, l := range r.s.data.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (r *memoryLikeRepository) DeleteByOwner(ownerID uint) error {
	defer r.s.lock()()
	for id, l := range r.s.data.likes {
		if l.UserID == ownerID {
			delete(r.s.data.likes, id)
		}
	}
	return nil
}

func (r *memoryLikeRepository) DeleteByPost(postID uint) error {
	defer r.s.lock()()
	for id, l := range r.s.data.likes {
		if l.PostID == postID {
			delete(r.s.data.likes, id)
		}
	}
	return nil
}

// ---- follows ----

type memoryFollowRepository struct{ s *MemoryStore }

func (r *memoryFollowRepository) Create(follow *models.Follow) error {
	defer r.s.lock()()
	d := r.s.data
	for _, f := range d.follows {
		if f.FollowerID == follow.FollowerID && f.FollowingID == follow.FollowingID {
			return gorm.ErrDuplicatedKey
		}
	}
	d.followSeq++
	follow.ID = d.followSeq
	follow.CreatedAt = stampNow(follow.CreatedAt)
	d.follows[follow.ID] = *follow
	return nil
}

func (r *memoryFollowRepository) Delete(followerID, followingID uint) (bool, error) {
	defer r.s.lock()()
	for id, f := range r.s.data.follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			delete(r.s.data.follows, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryFollowRepository) Exists(followerID, followingID uint) (bool, error) {
	defer r.s.lock()()
	for _, f := range r.s.data.follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	defer r.s.lock()()
	var out []models.User
	for _, f := range r.s.data.follows {
		if f.FollowingID == userID {
			if u, ok := r.s.data.users[f.FollowerID]; ok {
				out = append(out, u)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	defer r.s.lock()()
	var out []models.User
	for _, f := range r.s.data.follows {
		if f.FollowerID == userID {
			if u, ok := r.s.data.users[f.FollowingID]; ok {
				out = append(out, u)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryFollowRepository) CountFollowers(userID uint) (int64, error) {
	defer r.s.lock()()
	var count int64
	for _, f := range r.s.data.follows {
		if f.FollowingID == userID {
			count++
		}
	}
	return count, nil
}

func (r *memoryFollowRepository) CountFollowing(userID uint) (int64, error) {
	defer r.s.lock()()
	var count int64
	for _, f := range r.s.data.follows {
		if f.FollowerID == userID {
			count++
		}
	}
	return count, nil
}

func (r *memoryFollowRepository) DeleteAllFor(userID uint) error {
	defer r.s.lock()()
	for id, f := range r.s.data.follows {
		if f.FollowerID == userID || f.FollowingID == userID {
			delete(r.s.data.follows, id)
		}
	}
	return nil
}

// ---- reports ----

type memoryReportRepository struct{ s *MemoryStore }

func (r *memoryReportRepository) Create(report *models.Report) error {
	defer r.s.lock()()
	d := r.s.data
	d.reportSeq++
	report.ID = d.reportSeq
	report.CreatedAt = stampNow(report.CreatedAt)
	d.reports[report.ID] = *report
	return nil
}

func (r *memoryReportRepository) GetByID(id uint) (*models.Report, error) {
	defer r.s.lock()()
	rep, ok := r.s.data.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rep, nil
}

func (r *memoryReportRepository) Update(report *models.Report) error {
	defer r.s.lock()()
	if _, ok := r.s.data.reports[report.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.data.reports[report.ID] = *report
	return nil
}

func (r *memoryReportRepository) ListCursor(cursor *uint, limit int) ([]models.Report, error) {
	defer r.s.lock()()
	var out []models.Report
	for _, rep := range r.s.data.reports {
		if cursor == nil || rep.ID < *cursor {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryReportRepository) DeleteFor(userID uint) error {
	defer r.s.lock()()
	for id, rep := range r.s.data.reports {
		if rep.ReporterID == userID || (rep.ReportedUserID != nil && *rep.ReportedUserID == userID) {
			delete(r.s.data.reports, id)
		}
	}
	return nil
}

func (r *memoryReportRepository) DeleteByPost(postID uint) error {
	defer r.s.lock()()
	for id, rep := range r.s.data.reports {
		if rep.ReportedPostID != nil && *rep.ReportedPostID == postID {
			delete(r.s.data.reports, id)
		}
	}
	return nil
}

// ---- notifications ----

type memoryNotificationRepository struct{ s *MemoryStore }

func (r *memoryNotificationRepository) Create(notification *models.Notification) error {
	defer r.s.lock()()
	d := r.s.data
	d.notifSeq++
	notification.ID = d.notifSeq
	notification.CreatedAt = stampNow(notification.CreatedAt)
	d.notifications[notification.ID] = *notification
	return nil
}

func (r *memoryNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	defer r.s.lock()()
	n, ok := r.s.data.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &n, nil
}

func (r *memoryNotificationRepository) ListByRecipient(recipientID uint) ([]models.Notification, error) {
	defer r.s.lock()()
	var out []models.Notification
	for _, n := range r.s.data.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryNotificationRepository) CountUnread(recipientID uint) (int64, error) {
	defer r.s.lock()()
	var count int64
	for _, n := range r.s.data.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *memoryNotificationRepository) SetRead(id uint, read bool) (bool, error) {
	defer r.s.lock()()
	n, ok := r.s.data.notifications[id]
	if !ok {
		return false, nil
	}
	n.IsRead = read
	r.s.data.notifications[id] = n
	return true, nil
}

func (r *memoryNotificationRepository) MarkAllRead(recipientID uint) error {
	defer r.s.lock()()
	for id, n := range r.s.data.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			n.IsRead = true
			r.s.data.notifications[id] = n
		}
	}
	return nil
}

func (r *memoryNotificationRepository) DeleteFor(userID uint) error {
	defer r.s.lock()()
	for id, n := range r.s.data.notifications {
		if n.RecipientID == userID || n.ActorID == userID {
			delete(r.s.data.notifications, id)
		}
	}
	return nil
}
