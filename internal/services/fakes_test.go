package services

import (
	"sort"
	"strings"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory фейки репозиториев. Повторяют контракт gorm-реализаций,
// включая sentinel-ошибки и порядок сортировки.

type fakeAccountRepo struct {
	accounts map[string]*models.Account
	tokens   map[string]*models.RefreshToken
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*models.Account),
		tokens:   make(map[string]*models.RefreshToken),
	}
}

func (f *fakeAccountRepo) FindByID(id string) (*models.Account, error) {
	if acc, ok := f.accounts[id]; ok {
		return acc, nil
	}
	return nil, repositories.ErrAccountNotFound
}

func (f *fakeAccountRepo) FindByEmail(email string) (*models.Account, error) {
	for _, acc := range f.accounts {
		if acc.Email == email {
			return acc, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (f *fakeAccountRepo) FindByVerificationToken(token string) (*models.Account, error) {
	for _, acc := range f.accounts {
		if acc.VerificationToken == token && token != "" {
			return acc, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (f *fakeAccountRepo) Create(account *models.Account) error {
	for _, acc := range f.accounts {
		if acc.Email == account.Email {
			return repositories.ErrAccountAlreadyExists
		}
	}
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.CreatedAt = time.Now()
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) UpdateStatus(accountID string, status models.AccountStatus) error {
	acc, ok := f.accounts[accountID]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	acc.Status = status
	return nil
}

func (f *fakeAccountRepo) Verify(accountID string) error {
	acc, ok := f.accounts[accountID]
	if !ok {
		return repositories.ErrAccountNotFound
	}
	acc.IsVerified = true
	acc.Status = models.AccountStatusActive
	acc.VerificationToken = ""
	return nil
}

func (f *fakeAccountRepo) CreateRefreshToken(token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeAccountRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	if rt, ok := f.tokens[token]; ok {
		return rt, nil
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (f *fakeAccountRepo) DeleteRefreshToken(token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeAccountRepo) DeleteAccountRefreshTokens(accountID string) error {
	for key, rt := range f.tokens {
		if rt.AccountID == accountID {
			delete(f.tokens, key)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if user, ok := f.users[id]; ok && !user.IsDeleted() {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateName(userID, name string) error {
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Name = name
	return nil
}

type fakeCompanyRepo struct {
	companies []*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{}
}

func (f *fakeCompanyRepo) FindByID(id string) (*models.Company, error) {
	for _, c := range f.companies {
		if c.ID == id && !c.IsDeleted() {
			return c, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) FindOwnedBy(userID string) ([]models.Company, error) {
	var owned []models.Company
	for _, c := range f.companies {
		if c.CompanyOwner == userID && !c.IsDeleted() {
			owned = append(owned, *c)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})
	return owned, nil
}

func (f *fakeCompanyRepo) ExistsByDisplayName(displayName string) (bool, error) {
	for _, c := range f.companies {
		if c.DisplayName == displayName && !c.IsDeleted() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompanyRepo) Create(company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now()
	}
	f.companies = append(f.companies, company)
	return nil
}

type fakeProfileRepo struct {
	profiles []*models.EmployerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{}
}

func (f *fakeProfileRepo) FindByUser(userID string) ([]models.EmployerProfile, error) {
	var out []models.EmployerProfile
	for _, p := range f.profiles {
		if p.UserID == userID && !p.IsDeleted() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Administers(userID, companyID string) (bool, error) {
	for _, p := range f.profiles {
		if p.UserID == userID && p.CompanyID == companyID && !p.IsDeleted() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileRepo) Create(profile *models.EmployerProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	f.profiles = append(f.profiles, profile)
	return nil
}

// fakeOnboardingRepo прогоняет три вставки через остальные фейки; failWith
// имитирует откат транзакции.
type fakeOnboardingRepo struct {
	userRepo    *fakeUserRepo
	companyRepo *fakeCompanyRepo
	profileRepo *fakeProfileRepo
	failWith    error
	calls       int
}

func (f *fakeOnboardingRepo) CreateEmployer(user *models.User, company *models.Company, profile *models.EmployerProfile) error {
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}
	if _, err := f.userRepo.FindByID(user.ID); err != nil {
		f.userRepo.Create(user)
	}
	f.companyRepo.Create(company)
	profile.UserID = user.ID
	profile.CompanyID = company.ID
	f.profileRepo.Create(profile)
	return nil
}

type fakeJobRepo struct {
	jobs []*models.JobPost
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{}
}

func (f *fakeJobRepo) find(id string) *models.JobPost {
	for _, j := range f.jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.JobPost, error) {
	if job := f.find(id); job != nil {
		copied := *job
		return &copied, nil
	}
	return nil, repositories.ErrJobPostNotFound
}

func (f *fakeJobRepo) FindByCompany(companyID string) ([]models.JobPost, error) {
	var out []models.JobPost
	for _, j := range f.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeJobRepo) FindPublic(filter repositories.PublicJobFilter) ([]models.JobPost, error) {
	var out []models.JobPost
	for _, j := range f.jobs {
		if j.DeletedAt != nil || j.ClosedAt != nil {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			title := strings.ToLower(j.Title)
			desc := strings.ToLower(j.Description)
			if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
				continue
			}
		}
		if filter.JobType != "" && j.JobType != filter.JobType {
			continue
		}
		if filter.Location != "" && (j.Location == nil || *j.Location != filter.Location) {
			continue
		}
		out = append(out, *j)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeJobRepo) FindPublicByID(id string) (*models.JobPost, error) {
	job := f.find(id)
	if job == nil || job.DeletedAt != nil || job.ClosedAt != nil {
		return nil, repositories.ErrJobPostNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) Create(job *models.JobPost) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeJobRepo) UpdateFields(id string, title, description string, location *string, jobType models.JobType) error {
	job := f.find(id)
	if job == nil {
		return repositories.ErrJobPostNotFound
	}
	job.Title = title
	job.Description = description
	job.Location = location
	job.JobType = jobType
	job.UpdatedAt = time.Now()
	return nil
}

func (f *fakeJobRepo) SetClosedAt(id string, closedAt *time.Time) error {
	job := f.find(id)
	if job == nil {
		return repositories.ErrJobPostNotFound
	}
	job.ClosedAt = closedAt
	return nil
}

func (f *fakeJobRepo) SetDeletedAt(id string, deletedAt time.Time) error {
	job := f.find(id)
	if job == nil {
		return repositories.ErrJobPostNotFound
	}
	job.DeletedAt = &deletedAt
	return nil
}

type fakeEmailProvider struct {
	sent []string
}

func (f *fakeEmailProvider) Send(to, subject, body string) error {
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeEmailProvider) SendVerification(to, token string) error {
	f.sent = append(f.sent, to)
	return nil
}
