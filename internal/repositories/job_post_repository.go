package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobPostNotFound = errors.New("job post not found")

// PublicJobFilter narrows the public listing. Zero values mean "no filter";
// the predicates compose with AND.
type PublicJobFilter struct {
	Search   string
	JobType  models.JobType
	Location string
}

type JobPostRepository interface {
	FindByID(id string) (*models.JobPost, error)
	// FindByCompany returns every row of the company, soft-deleted included,
	// newest-first. The employer board partitions them by state itself.
	FindByCompany(companyID string) ([]models.JobPost, error)
	// FindPublic returns non-deleted, non-closed rows newest-first with the
	// owning company preloaded.
	FindPublic(filter PublicJobFilter) ([]models.JobPost, error)
	// FindPublicByID resolves a single row under the public visibility rules:
	// a closed or deleted id behaves as if it did not exist.
	FindPublicByID(id string) (*models.JobPost, error)
	Create(job *models.JobPost) error
	// UpdateFields overwrites the four editable fields and nothing else.
	UpdateFields(id string, title, description string, location *string, jobType models.JobType) error
	SetClosedAt(id string, closedAt *time.Time) error
	SetDeletedAt(id string, deletedAt time.Time) error
}

type JobPostRepositoryImpl struct {
	db *gorm.DB
}

func NewJobPostRepository(db *gorm.DB) JobPostRepository {
	return &JobPostRepositoryImpl{db: db}
}

func (r *JobPostRepositoryImpl) FindByID(id string) (*models.JobPost, error) {
	var job models.JobPost
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobPostRepositoryImpl) FindByCompany(companyID string) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := r.db.
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobPostRepositoryImpl) FindPublic(filter PublicJobFilter) ([]models.JobPost, error) {
	query := r.db.
		Preload("Company").
		Where("deleted_at IS NULL AND closed_at IS NULL")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}

	var jobs []models.JobPost
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobPostRepositoryImpl) FindPublicByID(id string) (*models.JobPost, error) {
	var job models.JobPost
	err := r.db.
		Preload("Company").
		First(&job, "id = ? AND deleted_at IS NULL AND closed_at IS NULL", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobPostRepositoryImpl) Create(job *models.JobPost) error {
	return r.db.Create(job).Error
}

func (r *JobPostRepositoryImpl) UpdateFields(id string, title, description string, location *string, jobType models.JobType) error {
	result := r.db.Model(&models.JobPost{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
		"location":    location,
		"job_type":    jobType,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPostNotFound
	}
	return nil
}

func (r *JobPostRepositoryImpl) SetClosedAt(id string, closedAt *time.Time) error {
	result := r.db.Model(&models.JobPost{}).Where("id = ?", id).
		Update("closed_at", closedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPostNotFound
	}
	return nil
}

func (r *JobPostRepositoryImpl) SetDeletedAt(id string, deletedAt time.Time) error {
	result := r.db.Model(&models.JobPost{}).Where("id = ?", id).
		Update("deleted_at", deletedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPostNotFound
	}
	return nil
}
