package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

type AccountRepository interface {
	FindByID(id string) (*models.Account, error)
	FindByEmail(email string) (*models.Account, error)
	FindByVerificationToken(token string) (*models.Account, error)
	Create(account *models.Account) error
	UpdateStatus(accountID string, status models.AccountStatus) error
	Verify(accountID string) error

	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshToken(token string) (*models.RefreshToken, error)
	DeleteRefreshToken(token string) error
	DeleteAccountRefreshTokens(accountID string) error
}

type AccountRepositoryImpl struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

func (r *AccountRepositoryImpl) FindByID(id string) (*models.Account, error) {
	var account models.Account
	err := r.db.Preload("User").First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByVerificationToken(token string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "verification_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) Create(account *models.Account) error {
	var existing models.Account
	if err := r.db.Where("email = ?", account.Email).First(&existing).Error; err == nil {
		return ErrAccountAlreadyExists
	}

	return r.db.Create(account).Error
}

func (r *AccountRepositoryImpl) UpdateStatus(accountID string, status models.AccountStatus) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", accountID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) Verify(accountID string) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", accountID).Updates(map[string]interface{}{
		"is_verified":        true,
		"status":             models.AccountStatusActive,
		"verification_token": "",
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// RefreshToken operations

func (r *AccountRepositoryImpl) CreateRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *AccountRepositoryImpl) FindRefreshToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := r.db.First(&rt, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *AccountRepositoryImpl) DeleteRefreshToken(token string) error {
	return r.db.Delete(&models.RefreshToken{}, "token = ?", token).Error
}

func (r *AccountRepositoryImpl) DeleteAccountRefreshTokens(accountID string) error {
	return r.db.Delete(&models.RefreshToken{}, "account_id = ?", accountID).Error
}
