package models

type AccountStatus string
type JobType string
type JobState string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"

	JobTypeFullTime JobType = "FULL_TIME"
	JobTypePartTime JobType = "PART_TIME"
	JobTypeContract JobType = "CONTRACT"

	JobStateActive  JobState = "active"
	JobStateClosed  JobState = "closed"
	JobStateDeleted JobState = "deleted"
)

func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract:
		return true
	default:
		return false
	}
}
