package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmployerProfileNotFound = errors.New("employer profile not found")

type EmployerProfileRepository interface {
	FindByUser(userID string) ([]models.EmployerProfile, error)
	// Administers reports whether the user has a non-deleted employer profile
	// for the given company. Job mutations hinge on this check.
	Administers(userID, companyID string) (bool, error)
	Create(profile *models.EmployerProfile) error
}

type EmployerProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployerProfileRepository(db *gorm.DB) EmployerProfileRepository {
	return &EmployerProfileRepositoryImpl{db: db}
}

func (r *EmployerProfileRepositoryImpl) FindByUser(userID string) ([]models.EmployerProfile, error) {
	var profiles []models.EmployerProfile
	err := r.db.
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *EmployerProfileRepositoryImpl) Administers(userID, companyID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.EmployerProfile{}).
		Where("user_id = ? AND company_id = ? AND deleted_at IS NULL", userID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *EmployerProfileRepositoryImpl) Create(profile *models.EmployerProfile) error {
	return r.db.Create(profile).Error
}
