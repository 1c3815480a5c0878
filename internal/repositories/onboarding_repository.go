package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OnboardingRepository performs the user → company → employer profile write
// sequence atomically. The original flow issued the three inserts one by one
// and could strand a profile-only user when a later insert failed; a single
// transaction removes that partial state.
type OnboardingRepository interface {
	CreateEmployer(user *models.User, company *models.Company, profile *models.EmployerProfile) error
}

type OnboardingRepositoryImpl struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &OnboardingRepositoryImpl{db: db}
}

func (r *OnboardingRepositoryImpl) CreateEmployer(user *models.User, company *models.Company, profile *models.EmployerProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Аккаунт мог остаться с профилем без компании после старого
		// нетранзакционного флоу - повторный онбординг не должен падать
		// на дубликате id.
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
			return err
		}
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		profile.CompanyID = company.ID
		return tx.Create(profile).Error
	})
}
