package models

import "time"

// Account is the auth identity. A User profile row is created for it later,
// during onboarding, so a freshly registered account has no User yet.
type Account struct {
	BaseModel
	Email             string        `gorm:"uniqueIndex;not null"`
	PasswordHash      string        `gorm:"not null"`
	Status            AccountStatus `gorm:"type:varchar(20);default:'pending'"`
	IsVerified        bool          `gorm:"default:false"`
	VerificationToken string

	// Relations
	User          *User          `gorm:"foreignKey:ID;references:ID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:AccountID"`
}

type RefreshToken struct {
	BaseModel
	AccountID string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
