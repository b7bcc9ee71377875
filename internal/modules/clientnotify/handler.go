package clientnotify

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
	g := rg.Group("/client-notifications")
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.POST("", h.Create)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	var projectID int64
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid project_id")
			return
		}
		projectID = id
	}

	settings, err := h.service.List(c.Request.Context(), companyID, projectID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list notification settings")
		return
	}
	response.Success(c, http.StatusOK, settings)
}

func (h *Handler) Get(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid setting ID")
		return
	}

	setting, err := h.service.Get(c.Request.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notification setting")
		return
	}
	response.Success(c, http.StatusOK, setting)
}

func (h *Handler) Create(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	var req CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	setting, err := h.service.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeError(c, err, "Failed to create notification setting")
		return
	}
	response.Success(c, http.StatusCreated, setting)
}

func (h *Handler) Update(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid setting ID")
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	setting, err := h.service.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update notification setting")
		return
	}
	response.Success(c, http.StatusOK, setting)
}

func (h *Handler) Delete(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid setting ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), companyID, id); err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete notification setting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrSettingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification setting not found")
	case errors.Is(err, ErrProjectNotFound):
		response.Error(c, http.StatusBadRequest, "INVALID_PROJECT", "Referenced project does not exist")
	case errors.Is(err, ErrTargetRequired):
		response.Error(c, http.StatusBadRequest, "TARGET_REQUIRED", "Either material_id or group_name is required")
	case errors.Is(err, ErrInvalidFrequency):
		response.Error(c, http.StatusBadRequest, "INVALID_FREQUENCY", "Frequency must be a positive value of day, week or month")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
