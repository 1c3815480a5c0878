package routes

import (
	"jobboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.OnboardingHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
	}
}
