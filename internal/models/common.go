package models

import (
	"time"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CreatedAt time.Time `gorm:"default:now()"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// BaseModelSoftDeleted keeps deleted_at as a plain nullable timestamp instead
// of gorm.DeletedAt: soft-deleted rows must stay visible to their owners
// (the employer board lists them under a Deleted tab), so gorm's automatic
// query scoping would get in the way.
type BaseModelSoftDeleted struct {
	BaseModel
	DeletedAt *time.Time `gorm:"index"`
}

func (m *BaseModelSoftDeleted) IsDeleted() bool {
	return m.DeletedAt != nil
}
