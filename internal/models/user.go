package models

// User is the profile row for an account. Its ID equals the account ID and is
// written explicitly during onboarding, never generated.
type User struct {
	BaseModelSoftDeleted
	Name string `gorm:"not null"`
}

func (User) TableName() string { return "users" }
