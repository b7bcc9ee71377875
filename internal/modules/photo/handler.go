package photo

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
	g := rg.Group("/photos")
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.POST("", h.Create)
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

	photos, err := h.service.List(c.Request.Context(), companyID, projectID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list photos")
		return
	}
	response.Success(c, http.StatusOK, photos)
}

func (h *Handler) Get(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid photo ID")
		return
	}

	p, err := h.service.Get(c.Request.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Photo not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load photo")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	userID := c.GetInt64("user_id")

	var req CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), companyID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProjectNotFound):
			response.Error(c, http.StatusBadRequest, "INVALID_PROJECT", "Referenced project does not exist")
		case errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", "file_id must reference an uploaded file")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create photo")
		}
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Delete(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid photo ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), companyID, id); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Photo not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete photo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
