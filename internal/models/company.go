package models

// Company display names must be unique among non-deleted companies. The check
// is an application-level pre-check, not a DB constraint: a deleted company
// keeps its name, so a plain unique index would block reuse.
type Company struct {
	BaseModelSoftDeleted
	DisplayName  string `gorm:"not null;index"`
	CompanyOwner string `gorm:"type:uuid;not null;index"`
	CreatedBy    string `gorm:"type:uuid;not null"`

	// Relations
	Owner *User `gorm:"foreignKey:CompanyOwner"`
}

type EmployerProfile struct {
	BaseModelSoftDeleted
	UserID    string `gorm:"type:uuid;not null;index"`
	CompanyID string `gorm:"type:uuid;not null;index"`

	// Relations
	User    *User    `gorm:"foreignKey:UserID"`
	Company *Company `gorm:"foreignKey:CompanyID"`
}
