package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobHandler обслуживает обе стороны доски: публичный листинг и
// управление вакансиями со стороны работодателя.
type JobHandler struct {
	*BaseHandler
	jobService       services.JobService
	publicJobService services.PublicJobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, publicJobService services.PublicJobService) *JobHandler {
	return &JobHandler{
		BaseHandler:      base,
		jobService:       jobService,
		publicJobService: publicJobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Публичная витрина — без аутентификации
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListPublicJobs)
		jobs.GET("/:jobId", h.GetPublicJob)
	}

	// Кабинет работодателя
	my := rg.Group("/companies/my/jobs")
	my.Use(middleware.AuthMiddleware())
	{
		my.GET("", h.GetBoard)
		my.POST("", h.CreateJob)
		my.PUT("/:jobId", h.UpdateJob)
		my.PUT("/:jobId/status", h.ToggleJobStatus)
		my.DELETE("/:jobId", h.DeleteJob)
	}
}

func (h *JobHandler) ListPublicJobs(c *gin.Context) {
	var query dto.PublicJobQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.publicJobService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) GetPublicJob(c *gin.Context) {
	response, err := h.publicJobService.Get(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) GetBoard(c *gin.Context) {
	accountID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	board, err := h.jobService.Board(accountID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	accountID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.jobService.Create(accountID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	accountID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.jobService.Update(accountID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) ToggleJobStatus(c *gin.Context) {
	accountID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	response, err := h.jobService.ToggleStatus(accountID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	accountID, ok := h.GetAndAuthorizeAccountID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(accountID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
