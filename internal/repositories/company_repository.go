package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	FindByID(id string) (*models.Company, error)
	// FindOwnedBy returns the caller's non-deleted companies oldest-first, so
	// callers that need "the" company of an owner pick a deterministic one.
	FindOwnedBy(userID string) ([]models.Company, error)
	ExistsByDisplayName(displayName string) (bool, error)
	Create(company *models.Company) error
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindOwnedBy(userID string) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.
		Where("company_owner = ? AND deleted_at IS NULL", userID).
		Order("created_at ASC").
		Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) ExistsByDisplayName(displayName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Company{}).
		Where("display_name = ? AND deleted_at IS NULL", displayName).
		Count(&count).Error
	return count > 0, err
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	return r.db.Create(company).Error
}
