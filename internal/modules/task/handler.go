package task

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"buildboard/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/tasks")
	{
		g.GET("", h.List)
		g.GET("/grouped", h.ListGrouped)
		g.GET("/summary", h.Summary)
		g.GET("/:id", h.Get)
		g.POST("", h.Create)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	var q ListTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	// grouped=true switches to by-project buckets.
	if c.Query("grouped") == "true" {
		groups, err := h.service.ListGrouped(c.Request.Context(), companyID, q)
		if err != nil {
			h.writeError(c, err, "Failed to group tasks")
			return
		}
		response.Success(c, http.StatusOK, groups)
		return
	}

	tasks, err := h.service.List(c.Request.Context(), companyID, q)
	if err != nil {
		h.writeError(c, err, "Failed to list tasks")
		return
	}
	response.Success(c, http.StatusOK, tasks)
}

func (h *Handler) ListGrouped(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	var q ListTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	groups, err := h.service.ListGrouped(c.Request.Context(), companyID, q)
	if err != nil {
		h.writeError(c, err, "Failed to group tasks")
		return
	}
	response.Success(c, http.StatusOK, groups)
}

func (h *Handler) Summary(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	sum, err := h.service.Summary(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build task summary")
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func (h *Handler) Get(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid task ID")
		return
	}

	t, err := h.service.Get(c.Request.Context(), companyID, id)
	if err != nil {
		h.writeError(c, err, "Failed to load task")
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Create(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	userID := c.GetInt64("user_id")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.service.Create(c.Request.Context(), companyID, userID, req)
	if err != nil {
		h.writeError(c, err, "Failed to create task")
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) Update(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	t, err := h.service.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update task")
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid task ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), companyID, id); err != nil {
		h.writeError(c, err, "Failed to delete task")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrTaskNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Task not found")
	case errors.Is(err, ErrProjectNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_PROJECT", "Referenced project does not exist")
	case errors.Is(err, ErrAssigneeNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_ASSIGNEE", "Referenced assignee does not exist")
	case errors.Is(err, ErrInvalidCategory):
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown task category")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown task status")
	case errors.Is(err, ErrInvalidPriority):
		response.Error(c, http.StatusBadRequest, "INVALID_PRIORITY", "Unknown task priority")
	case errors.Is(err, ErrProjectRequired):
		response.Error(c, http.StatusBadRequest, "PROJECT_REQUIRED", "Project tasks require a project_id")
	case errors.Is(err, ErrAssigneeRequired):
		response.Error(c, http.StatusBadRequest, "ASSIGNEE_REQUIRED", "Subcontractor tasks require an assignee_id")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
