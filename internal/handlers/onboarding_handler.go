package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler обслуживает session gate и сабмит онбординга.
type OnboardingHandler struct {
	*BaseHandler
	onboardingService services.OnboardingService
}

func NewOnboardingHandler(base *BaseHandler, onboardingService services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		BaseHandler:       base,
		onboardingService: onboardingService,
	}
}

func (h *OnboardingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/session", h.GetSession)
		protected.POST("/onboarding", h.CompleteOnboarding)
	}
}

// GetSession - session gate: фронт вызывает его на каждом охраняемом
// переходе и редиректит по полю status.
func (h *OnboardingHandler) GetSession(c *gin.Context) {
	accountID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	session, err := h.onboardingService.Resolve(accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *OnboardingHandler) CompleteOnboarding(c *gin.Context) {
	accountID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.OnboardingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	session, err := h.onboardingService.Complete(accountID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}
