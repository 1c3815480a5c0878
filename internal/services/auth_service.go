package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token string) error
}

type AuthServiceImpl struct {
	accountRepo   repositories.AccountRepository
	emailProvider email.Provider
}

func NewAuthService(accountRepo repositories.AccountRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		accountRepo:   accountRepo,
		emailProvider: emailProvider,
	}
}

// Register - регистрация нового аккаунта. Профиль и компания появляются
// позже, на онбординге.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ValidationError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	verificationToken := generateRandomToken()

	account := &models.Account{
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		Status:            models.AccountStatusPending,
		IsVerified:        false,
		VerificationToken: verificationToken,
	}

	if err := s.accountRepo.Create(account); err != nil {
		if apperrors.Is(err, repositories.ErrAccountAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.WriteFailure(err)
	}

	if err := s.emailProvider.SendVerification(account.Email, verificationToken); err != nil {
		// Письмо не критично: аккаунт создан, код можно выслать повторно.
		logger.Warn("failed to send verification email", "email", account.Email, "error", err)
	}

	return nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.accountRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if account.Status == models.AccountStatusSuspended {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	accessToken, err := auth.GenerateToken(account.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(account.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      buildAccountDTO(account),
	}, nil
}

// RefreshToken - обновление access token с ротацией refresh token
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.accountRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.accountRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	account, err := s.accountRepo.FindByID(token.AccountID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	accessToken, err := auth.GenerateToken(account.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Ротация: старый токен умирает вместе с выдачей нового
	if err := s.accountRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	newRefreshToken, err := s.createRefreshToken(account.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		Account:      buildAccountDTO(account),
	}, nil
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	token, err := s.accountRepo.FindRefreshToken(refreshToken)
	if err != nil {
		// Уже невалиден - logout идемпотентен
		return nil
	}
	return s.accountRepo.DeleteAccountRefreshTokens(token.AccountID)
}

func (s *AuthServiceImpl) VerifyEmail(token string) error {
	account, err := s.accountRepo.FindByVerificationToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if err := s.accountRepo.Verify(account.ID); err != nil {
		return apperrors.WriteFailure(err)
	}
	return nil
}

func (s *AuthServiceImpl) createRefreshToken(accountID string) (string, error) {
	token := generateRandomToken()
	rt := &models.RefreshToken{
		AccountID: accountID,
		Token:     token,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.accountRepo.CreateRefreshToken(rt); err != nil {
		return "", err
	}
	return token, nil
}

func buildAccountDTO(account *models.Account) dto.AccountDTO {
	return dto.AccountDTO{
		ID:         account.ID,
		Email:      account.Email,
		IsVerified: account.IsVerified,
		CreatedAt:  account.CreatedAt,
	}
}

func generateRandomToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
