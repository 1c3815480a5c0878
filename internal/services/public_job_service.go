package services

import (
	"strings"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// PublicJobService - публичная витрина. Аутентификации не требует,
// показывает только активные вакансии.
type PublicJobService interface {
	List(query *dto.PublicJobQuery) (*dto.PublicJobListResponse, error)
	Get(jobID string) (*dto.JobResponse, error)
}

type PublicJobServiceImpl struct {
	jobRepo repositories.JobPostRepository
}

func NewPublicJobService(jobRepo repositories.JobPostRepository) PublicJobService {
	return &PublicJobServiceImpl{jobRepo: jobRepo}
}

func (s *PublicJobServiceImpl) List(query *dto.PublicJobQuery) (*dto.PublicJobListResponse, error) {
	filter := repositories.PublicJobFilter{
		Search:   strings.TrimSpace(query.Search),
		Location: query.Location,
	}
	if query.JobType != "" {
		jobType := models.JobType(query.JobType)
		if !models.ValidJobType(jobType) {
			return nil, apperrors.ValidationError(map[string]string{"job_type": "Invalid job type"})
		}
		filter.JobType = jobType
	}

	jobs, err := s.jobRepo.FindPublic(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Фасеты всегда считаются по нефильтрованной активной выборке, чтобы
	// чипсы не исчезали после выбора одного из них.
	population := jobs
	if filter.Search != "" || filter.JobType != "" || filter.Location != "" {
		population, err = s.jobRepo.FindPublic(repositories.PublicJobFilter{})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	resp := &dto.PublicJobListResponse{
		Jobs:   make([]dto.JobResponse, 0, len(jobs)),
		Total:  len(jobs),
		Facets: buildJobFacets(population),
	}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, *buildJobResponse(&jobs[i]))
	}
	return resp, nil
}

func (s *PublicJobServiceImpl) Get(jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindPublicByID(jobID)
	if err != nil {
		// Закрытые и удаленные вакансии для публики неотличимы от
		// несуществующих.
		if apperrors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

// buildJobFacets собирает уникальные значения в порядке первого появления
// (выборка уже отсортирована по created_at DESC).
func buildJobFacets(jobs []models.JobPost) dto.JobFacets {
	facets := dto.JobFacets{
		JobTypes:  []string{},
		Locations: []string{},
	}
	seenTypes := make(map[string]bool)
	seenLocations := make(map[string]bool)
	for i := range jobs {
		jt := string(jobs[i].JobType)
		if !seenTypes[jt] {
			seenTypes[jt] = true
			facets.JobTypes = append(facets.JobTypes, jt)
		}
		if jobs[i].Location != nil && *jobs[i].Location != "" && !seenLocations[*jobs[i].Location] {
			seenLocations[*jobs[i].Location] = true
			facets.Locations = append(facets.Locations, *jobs[i].Location)
		}
	}
	return facets
}
