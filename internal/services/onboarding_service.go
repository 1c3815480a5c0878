package services

import (
	"strings"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// OnboardingService владеет session gate и финальным шагом онбординга.
type OnboardingService interface {
	// Resolve - session gate: по залогиненному аккаунту решает, куда его
	// отправить. Профиль и непустой список компаний -> authorized, иначе
	// needs_onboarding. Только чтение, без побочных эффектов.
	Resolve(accountID string) (*dto.SessionResponse, error)

	// Complete выполняет финальный сабмит онбординга: профиль, компания и
	// employer profile создаются одной транзакцией.
	Complete(accountID string, req *dto.OnboardingRequest) (*dto.SessionResponse, error)
}

type OnboardingServiceImpl struct {
	userRepo       repositories.UserRepository
	companyRepo    repositories.CompanyRepository
	profileRepo    repositories.EmployerProfileRepository
	onboardingRepo repositories.OnboardingRepository
}

func NewOnboardingService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	profileRepo repositories.EmployerProfileRepository,
	onboardingRepo repositories.OnboardingRepository,
) OnboardingService {
	return &OnboardingServiceImpl{
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		profileRepo:    profileRepo,
		onboardingRepo: onboardingRepo,
	}
}

func (s *OnboardingServiceImpl) Resolve(accountID string) (*dto.SessionResponse, error) {
	user, err := s.userRepo.FindByID(accountID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return &dto.SessionResponse{Status: dto.SessionNeedsOnboarding}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	companies, err := s.companyRepo.FindOwnedBy(accountID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(companies) == 0 {
		return &dto.SessionResponse{Status: dto.SessionNeedsOnboarding}, nil
	}

	// Владельцев с несколькими компаниями модель не предполагает, но если
	// такое случилось - детерминированно берем старейшую (список упорядочен
	// по created_at).
	return &dto.SessionResponse{
		Status:  dto.SessionAuthorized,
		User:    buildUserDTO(user),
		Company: buildCompanyDTO(&companies[0]),
	}, nil
}

func (s *OnboardingServiceImpl) Complete(accountID string, req *dto.OnboardingRequest) (*dto.SessionResponse, error) {
	name := strings.TrimSpace(req.Name)
	companyName := strings.TrimSpace(req.CompanyName)

	// Проверяем до любых записей
	if name == "" {
		return nil, apperrors.ValidationError(map[string]string{"name": "Name is required"})
	}
	if companyName == "" {
		return nil, apperrors.ValidationError(map[string]string{"company_name": "Company name is required"})
	}

	session, err := s.Resolve(accountID)
	if err != nil {
		return nil, err
	}
	if session.Status == dto.SessionAuthorized {
		return nil, apperrors.ErrAlreadyOnboarded
	}

	// Уникальность имени - только pre-check, без констрейнта в БД:
	// параллельный сабмит с тем же именем эта проверка не ловит.
	taken, err := s.companyRepo.ExistsByDisplayName(companyName)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrDuplicateCompanyName
	}

	user := &models.User{Name: name}
	user.ID = accountID
	company := &models.Company{
		DisplayName:  companyName,
		CompanyOwner: accountID,
		CreatedBy:    accountID,
	}
	profile := &models.EmployerProfile{}

	if err := s.onboardingRepo.CreateEmployer(user, company, profile); err != nil {
		return nil, apperrors.WriteFailure(err)
	}

	return &dto.SessionResponse{
		Status:  dto.SessionAuthorized,
		User:    buildUserDTO(user),
		Company: buildCompanyDTO(company),
	}, nil
}

func buildUserDTO(user *models.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func buildCompanyDTO(company *models.Company) *dto.CompanyDTO {
	return &dto.CompanyDTO{
		ID:          company.ID,
		DisplayName: company.DisplayName,
		CreatedAt:   company.CreatedAt,
	}
}
