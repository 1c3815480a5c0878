package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService       AuthService
	OnboardingService OnboardingService
	JobService        JobService
	PublicJobService  PublicJobService
}
