package services

import (
	"errors"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onboardingFixture struct {
	userRepo       *fakeUserRepo
	companyRepo    *fakeCompanyRepo
	profileRepo    *fakeProfileRepo
	onboardingRepo *fakeOnboardingRepo
	service        OnboardingService
}

func newOnboardingFixture() *onboardingFixture {
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	profileRepo := newFakeProfileRepo()
	onboardingRepo := &fakeOnboardingRepo{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		profileRepo: profileRepo,
	}
	return &onboardingFixture{
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		profileRepo:    profileRepo,
		onboardingRepo: onboardingRepo,
		service:        NewOnboardingService(userRepo, companyRepo, profileRepo, onboardingRepo),
	}
}

func (f *onboardingFixture) seedOnboarded(accountID, name, companyName string) *models.Company {
	user := &models.User{Name: name}
	user.ID = accountID
	f.userRepo.Create(user)

	company := &models.Company{
		DisplayName:  companyName,
		CompanyOwner: accountID,
		CreatedBy:    accountID,
	}
	f.companyRepo.Create(company)
	f.profileRepo.Create(&models.EmployerProfile{UserID: accountID, CompanyID: company.ID})
	return company
}

func TestResolveNoProfile(t *testing.T) {
	f := newOnboardingFixture()

	session, err := f.service.Resolve("acc-1")

	require.NoError(t, err)
	assert.Equal(t, dto.SessionNeedsOnboarding, session.Status)
	assert.Nil(t, session.User)
	assert.Nil(t, session.Company)
}

func TestResolveProfileWithoutCompany(t *testing.T) {
	f := newOnboardingFixture()
	user := &models.User{Name: "Anna"}
	user.ID = "acc-1"
	f.userRepo.Create(user)

	session, err := f.service.Resolve("acc-1")

	require.NoError(t, err)
	assert.Equal(t, dto.SessionNeedsOnboarding, session.Status)
}

func TestResolveAuthorized(t *testing.T) {
	f := newOnboardingFixture()
	company := f.seedOnboarded("acc-1", "Anna", "Acme")

	session, err := f.service.Resolve("acc-1")

	require.NoError(t, err)
	assert.Equal(t, dto.SessionAuthorized, session.Status)
	require.NotNil(t, session.User)
	assert.Equal(t, "Anna", session.User.Name)
	require.NotNil(t, session.Company)
	assert.Equal(t, company.ID, session.Company.ID)
}

func TestResolvePicksOldestCompany(t *testing.T) {
	f := newOnboardingFixture()
	user := &models.User{Name: "Anna"}
	user.ID = "acc-1"
	f.userRepo.Create(user)

	older := &models.Company{DisplayName: "Older", CompanyOwner: "acc-1", CreatedBy: "acc-1"}
	older.CreatedAt = time.Now().Add(-time.Hour)
	f.companyRepo.Create(older)
	newer := &models.Company{DisplayName: "Newer", CompanyOwner: "acc-1", CreatedBy: "acc-1"}
	f.companyRepo.Create(newer)

	session, err := f.service.Resolve("acc-1")

	require.NoError(t, err)
	assert.Equal(t, "Older", session.Company.DisplayName)
}

func TestCompleteSuccess(t *testing.T) {
	f := newOnboardingFixture()

	session, err := f.service.Complete("acc-1", &dto.OnboardingRequest{
		Name:        "  Anna  ",
		CompanyName: "  Acme  ",
	})

	require.NoError(t, err)
	assert.Equal(t, dto.SessionAuthorized, session.Status)
	assert.Equal(t, "Anna", session.User.Name)
	assert.Equal(t, "Acme", session.Company.DisplayName)

	// Три строки созданы, профиль связан с пользователем и компанией
	user, err := f.userRepo.FindByID("acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.Name)

	profiles, err := f.profileRepo.FindByUser("acc-1")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, session.Company.ID, profiles[0].CompanyID)
}

func TestCompleteBlankNameWritesNothing(t *testing.T) {
	f := newOnboardingFixture()

	_, err := f.service.Complete("acc-1", &dto.OnboardingRequest{
		Name:        "   ",
		CompanyName: "Acme",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Zero(t, f.onboardingRepo.calls)
}

func TestCompleteBlankCompanyNameWritesNothing(t *testing.T) {
	f := newOnboardingFixture()

	_, err := f.service.Complete("acc-1", &dto.OnboardingRequest{
		Name:        "Anna",
		CompanyName: "\t ",
	})

	require.Error(t, err)
	assert.Zero(t, f.onboardingRepo.calls)
}

func TestCompleteDuplicateCompanyName(t *testing.T) {
	f := newOnboardingFixture()
	f.seedOnboarded("acc-other", "Bob", "Acme")

	_, err := f.service.Complete("acc-1", &dto.OnboardingRequest{
		Name:        "Anna",
		CompanyName: "Acme",
	})

	assert.ErrorIs(t, err, apperrors.ErrDuplicateCompanyName)
	assert.Zero(t, f.onboardingRepo.calls)
}

func TestCompleteDeletedCompanyNameReusable(t *testing.T) {
	f := newOnboardingFixture()
	company := f.seedOnboarded("acc-other", "Bob", "Acme")
	now := time.Now()
	company.DeletedAt = &now

	session, err := f.service.Complete("acc-1", &dto.OnboardingRequest{
		Name:        "Anna",
		CompanyName: "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, dto.SessionAuthorized, session.Status)
}

func TestCompleteAlreadyOnboarded(t *testing.T) {
	f := newOnboardingFixture()
	f.seedOnboarded("acc-1", "Anna", "Acme")

	_, err := f.service.Complete("acc-1", &dto.OnboardingRequest{
		Name:        "Anna",
		CompanyName: "Another",
	})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyOnboarded)
}

func TestCompleteWriteFailure(t *testing.T) {
	f := newOnboardingFixture()
	f.onboardingRepo.failWith = errors.New("connection reset")

	_, err := f.service.Complete("acc-1", &dto.OnboardingRequest{
		Name:        "Anna",
		CompanyName: "Acme",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode)

	// Транзакция откатилась - gate по-прежнему needs_onboarding
	session, err := f.service.Resolve("acc-1")
	require.NoError(t, err)
	assert.Equal(t, dto.SessionNeedsOnboarding, session.Status)
}

func TestCompletePartialOnboardingRetry(t *testing.T) {
	// Пользователь уже существует (ретрай после сбоя), компании нет
	f := newOnboardingFixture()
	user := &models.User{Name: "Anna"}
	user.ID = "acc-1"
	f.userRepo.Create(user)

	session, err := f.service.Complete("acc-1", &dto.OnboardingRequest{
		Name:        "Anna",
		CompanyName: "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, dto.SessionAuthorized, session.Status)
}
