package repositories

import (
	"github.com/bloghive/backend/internal/models"
	"gorm.io/gorm"
)

// ReportRepository defines the interface for abuse-report operations
type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id uint) (*models.Report, error)
	Update(report *models.Report) error
	ListCursor(cursor *uint, limit int) ([]models.Report, error)
	DeleteFor(userID uint) error
	DeleteByPost(postID uint) error
}

// PostgresReportRepository implements ReportRepository for PostgreSQL
type PostgresReportRepository struct {
	db *gorm.DB
}

// NewPostgresReportRepository creates a new PostgresReportRepository
func NewPostgresReportRepository(db *gorm.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *PostgresReportRepository) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *PostgresReportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

// ListCursor returns up to limit reports with id below cursor, newest first.
func (r *PostgresReportRepository) ListCursor(cursor *uint, limit int) ([]models.Report, error) {
	var reports []models.Report
	q := r.db.Order("id DESC").Limit(limit)
	if cursor != nil {
		q = q.Where("id < ?", *cursor)
	}
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// DeleteFor removes reports the user filed or is the target of.
func (r *PostgresReportRepository) DeleteFor(userID uint) error {
	return r.db.Where("reporter_id = ? OR reported_user_id = ?", userID, userID).Delete(&models.Report{}).Error
}

func (r *PostgresReportRepository) DeleteByPost(postID uint) error {
	return r.db.Where("reported_post_id = ?", postID).Delete(&models.Report{}).Error
}
