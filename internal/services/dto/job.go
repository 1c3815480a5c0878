package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// JobRequest покрывает и создание, и редактирование: форма одна, режим
// определяется наличием id в маршруте.
type JobRequest struct {
	Title       string `json:"title" binding:"required" validate:"notblank"`
	Description string `json:"description" binding:"required" validate:"notblank"`
	Location    string `json:"location"`
	JobType     string `json:"job_type" binding:"required" validate:"is-job-type"`
}

// PublicJobQuery - фильтры публичного листинга (query string)
type PublicJobQuery struct {
	Search   string `form:"search"`
	JobType  string `form:"job_type" validate:"is-job-type"`
	Location string `form:"location"`
}

type JobResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    *string         `json:"location,omitempty"`
	JobType     models.JobType  `json:"job_type"`
	State       models.JobState `json:"state"`
	CompanyID   string          `json:"company_id"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Company     *CompanyDTO     `json:"company,omitempty"`
}

// EmployerBoardResponse - все вакансии компании, разложенные по вкладкам
type EmployerBoardResponse struct {
	Active  []JobResponse `json:"active"`
	Closed  []JobResponse `json:"closed"`
	Deleted []JobResponse `json:"deleted"`
}

// JobFacets - доступные фильтры, всегда по нефильтрованной выборке
type JobFacets struct {
	JobTypes  []string `json:"job_types"`
	Locations []string `json:"locations"`
}

type PublicJobListResponse struct {
	Jobs   []JobResponse `json:"jobs"`
	Total  int           `json:"total"`
	Facets JobFacets     `json:"facets"`
}
