package apperrors

import "net/http"

// Factories and predefined variables for the job-board domain.

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with this email already exists",
	http.StatusConflict,
)

// --- Onboarding ---

// ErrDuplicateCompanyName - имя компании уже занято (среди не удаленных)
var ErrDuplicateCompanyName = New(
	CodeAlreadyExists,
	"onboarding",
	"A company with this name already exists",
	http.StatusConflict,
)

var ErrAlreadyOnboarded = New(
	CodeInvalidOperation,
	"onboarding",
	"Profile and company already exist for this account",
	http.StatusConflict,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job post not found",
	http.StatusNotFound,
)

var ErrCompanyNotFound = New(
	CodeNotFound,
	"company",
	"Company not found",
	http.StatusNotFound,
)

// ErrJobDeleted - операция над удаленной вакансией запрещена
var ErrJobDeleted = New(
	CodeInvalidStatus,
	"jobs",
	"Job post has been deleted",
	http.StatusBadRequest,
)

var ErrNotCompanyAdmin = New(
	CodeForbidden,
	"jobs",
	"Caller does not administer the owning company",
	http.StatusForbidden,
)
