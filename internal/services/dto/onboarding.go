package dto

import "time"

// OnboardingRequest - финальный сабмит двухшаговой формы: имя профиля с
// первого шага и название компании со второго приходят вместе.
type OnboardingRequest struct {
	Name        string `json:"name" binding:"required" validate:"notblank"`
	CompanyName string `json:"company_name" binding:"required" validate:"notblank"`
}

// Session gate outcomes. "unauthenticated" is produced by the auth
// middleware itself (401), so only the two authenticated outcomes appear here.
const (
	SessionNeedsOnboarding = "needs_onboarding"
	SessionAuthorized      = "authorized"
)

// SessionResponse - результат session gate для залогиненного аккаунта.
// User и Company заполнены только при status == authorized.
type SessionResponse struct {
	Status  string      `json:"status"`
	User    *UserDTO    `json:"user,omitempty"`
	Company *CompanyDTO `json:"company,omitempty"`
}

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CompanyDTO struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
