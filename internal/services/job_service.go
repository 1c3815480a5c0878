package services

import (
	"strings"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// JobService - CRUD вакансий со стороны работодателя. Все операции
// привязаны к компании вызывающего аккаунта.
type JobService interface {
	Create(accountID string, req *dto.JobRequest) (*dto.JobResponse, error)
	Update(accountID, jobID string, req *dto.JobRequest) (*dto.JobResponse, error)
	// Board возвращает все вакансии компании (включая удаленные),
	// разложенные по вкладкам Active/Closed/Deleted.
	Board(accountID string) (*dto.EmployerBoardResponse, error)
	// ToggleStatus переключает Active <-> Closed. Для удаленной вакансии
	// операция запрещена.
	ToggleStatus(accountID, jobID string) (*dto.JobResponse, error)
	// Delete - мягкое удаление; операция необратима через API.
	Delete(accountID, jobID string) error
}

type JobServiceImpl struct {
	jobRepo     repositories.JobPostRepository
	companyRepo repositories.CompanyRepository
	profileRepo repositories.EmployerProfileRepository
}

func NewJobService(
	jobRepo repositories.JobPostRepository,
	companyRepo repositories.CompanyRepository,
	profileRepo repositories.EmployerProfileRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		profileRepo: profileRepo,
	}
}

func (s *JobServiceImpl) Create(accountID string, req *dto.JobRequest) (*dto.JobResponse, error) {
	title, description, location, jobType, err := normalizeJobRequest(req)
	if err != nil {
		return nil, err
	}

	company, err := s.callerCompany(accountID)
	if err != nil {
		return nil, err
	}

	job := &models.JobPost{
		Title:       title,
		Description: description,
		Location:    location,
		JobType:     jobType,
		CompanyID:   company.ID,
		CreatedByID: accountID,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.WriteFailure(err)
	}

	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) Update(accountID, jobID string, req *dto.JobRequest) (*dto.JobResponse, error) {
	title, description, location, jobType, err := normalizeJobRequest(req)
	if err != nil {
		return nil, err
	}

	job, err := s.ownedJob(accountID, jobID)
	if err != nil {
		return nil, err
	}
	if job.IsDeleted() {
		return nil, apperrors.ErrJobDeleted
	}

	// Перезаписываются только четыре поля формы; статусы и таймстемпы
	// жизненного цикла не трогаем.
	if err := s.jobRepo.UpdateFields(job.ID, title, description, location, jobType); err != nil {
		return nil, apperrors.WriteFailure(err)
	}

	job.Title = title
	job.Description = description
	job.Location = location
	job.JobType = jobType
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) Board(accountID string) (*dto.EmployerBoardResponse, error) {
	company, err := s.callerCompany(accountID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindByCompany(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Разбиение исчерпывающее и непересекающееся: у каждой строки ровно
	// одно состояние.
	board := &dto.EmployerBoardResponse{
		Active:  []dto.JobResponse{},
		Closed:  []dto.JobResponse{},
		Deleted: []dto.JobResponse{},
	}
	for i := range jobs {
		resp := *buildJobResponse(&jobs[i])
		switch jobs[i].State() {
		case models.JobStateActive:
			board.Active = append(board.Active, resp)
		case models.JobStateClosed:
			board.Closed = append(board.Closed, resp)
		case models.JobStateDeleted:
			board.Deleted = append(board.Deleted, resp)
		}
	}
	return board, nil
}

func (s *JobServiceImpl) ToggleStatus(accountID, jobID string) (*dto.JobResponse, error) {
	job, err := s.ownedJob(accountID, jobID)
	if err != nil {
		return nil, err
	}

	switch job.State() {
	case models.JobStateDeleted:
		return nil, apperrors.ErrJobDeleted
	case models.JobStateActive:
		now := time.Now()
		if err := s.jobRepo.SetClosedAt(job.ID, &now); err != nil {
			return nil, apperrors.WriteFailure(err)
		}
		job.ClosedAt = &now
	case models.JobStateClosed:
		if err := s.jobRepo.SetClosedAt(job.ID, nil); err != nil {
			return nil, apperrors.WriteFailure(err)
		}
		job.ClosedAt = nil
	}

	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) Delete(accountID, jobID string) error {
	job, err := s.ownedJob(accountID, jobID)
	if err != nil {
		return err
	}
	if job.IsDeleted() {
		return apperrors.ErrJobDeleted
	}

	if err := s.jobRepo.SetDeletedAt(job.ID, time.Now()); err != nil {
		return apperrors.WriteFailure(err)
	}
	return nil
}

// callerCompany возвращает компанию вызывающего аккаунта (через session
// gate порядок: старейшая из принадлежащих).
func (s *JobServiceImpl) callerCompany(accountID string) (*models.Company, error) {
	companies, err := s.companyRepo.FindOwnedBy(accountID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(companies) == 0 {
		return nil, apperrors.ErrCompanyNotFound
	}
	return &companies[0], nil
}

// ownedJob загружает вакансию и проверяет, что вызывающий администрирует
// ее компанию. RLS внешнего стора у нас нет, поэтому проверка обязательна.
func (s *JobServiceImpl) ownedJob(accountID, jobID string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	ok, err := s.profileRepo.Administers(accountID, job.CompanyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !ok {
		return nil, apperrors.ErrNotCompanyAdmin
	}
	return job, nil
}

func normalizeJobRequest(req *dto.JobRequest) (title, description string, location *string, jobType models.JobType, err error) {
	title = strings.TrimSpace(req.Title)
	description = strings.TrimSpace(req.Description)

	if title == "" {
		err = apperrors.ValidationError(map[string]string{"title": "Job title is required"})
		return
	}
	if description == "" {
		err = apperrors.ValidationError(map[string]string{"description": "Job description is required"})
		return
	}

	jobType = models.JobType(req.JobType)
	if !models.ValidJobType(jobType) {
		err = apperrors.ValidationError(map[string]string{"job_type": "Invalid job type"})
		return
	}

	if loc := strings.TrimSpace(req.Location); loc != "" {
		location = &loc
	}
	return
}

func buildJobResponse(job *models.JobPost) *dto.JobResponse {
	resp := &dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		JobType:     job.JobType,
		State:       job.State(),
		CompanyID:   job.CompanyID,
		ClosedAt:    job.ClosedAt,
		DeletedAt:   job.DeletedAt,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
	if job.Company != nil {
		resp.Company = buildCompanyDTO(job.Company)
	}
	return resp
}
