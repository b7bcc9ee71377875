package objects

import (
	"errors"
	"net/http"

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
	g := rg.Group("/objects")
	{
		g.POST("/upload", h.CreateUploadURL)
		g.PUT("/upload/:token", h.Upload)
		g.POST("/download", h.Download)
	}
}

type downloadRequest struct {
	FilePath string `json:"filePath" binding:"required"`
}

func (h *Handler) CreateUploadURL(c *gin.Context) {
	userID := c.GetInt64("user_id")
	companyID := c.GetInt64("company_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	url := h.service.CreateUploadURL(companyID, userID)
	response.Success(c, http.StatusOK, gin.H{"uploadURL": url})
}

func (h *Handler) Upload(c *gin.Context) {
	token := c.Param("token")

	upload, err := h.service.Store(
		c.Request.Context(),
		token,
		c.ContentType(),
		c.GetHeader("X-Original-Name"),
		c.Request.Body,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			response.Error(c, http.StatusForbidden, "INVALID_UPLOAD_TOKEN", "Upload URL is invalid or expired")
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", "File is empty")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds maximum allowed size")
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "File type is not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store file")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":        upload.ID,
		"file_path": upload.FilePath,
		"url":       upload.FileURL,
		"mime_type": upload.MimeType,
		"size":      upload.Size,
	})
}

func (h *Handler) Download(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "filePath is required")
		return
	}

	url, err := h.service.ResolveDownload(c.Request.Context(), companyID, req.FilePath)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Object not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve download")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"downloadURL": url})
}
