package models

import "time"

type JobPost struct {
	BaseModel
	Title       string  `gorm:"not null"`
	Description string  `gorm:"type:text;not null"`
	Location    *string `gorm:"index"`
	JobType     JobType `gorm:"type:varchar(20);not null;index"`
	CompanyID   string  `gorm:"type:uuid;not null;index"`
	CreatedByID string  `gorm:"type:uuid;not null"`
	ClosedAt    *time.Time
	DeletedAt   *time.Time `gorm:"index"`

	// Relations
	Company *Company `gorm:"foreignKey:CompanyID"`
}

// State derives the lifecycle state from the (closed_at, deleted_at) pair.
// Deleted dominates closed, so every row is in exactly one state.
func (j *JobPost) State() JobState {
	switch {
	case j.DeletedAt != nil:
		return JobStateDeleted
	case j.ClosedAt != nil:
		return JobStateClosed
	default:
		return JobStateActive
	}
}

func (j *JobPost) IsActive() bool  { return j.State() == JobStateActive }
func (j *JobPost) IsClosed() bool  { return j.State() == JobStateClosed }
func (j *JobPost) IsDeleted() bool { return j.State() == JobStateDeleted }
