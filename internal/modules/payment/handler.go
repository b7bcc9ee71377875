package payment

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
	rg.GET("/projects/:id/payments", h.GetProjectPayments)
	rg.GET("/payment-totals", h.GetTotals)

	rg.POST("/payment-schedules", h.EnsureSchedule)

	inst := rg.Group("/payment-installments")
	{
		inst.POST("", h.CreateInstallment)
		inst.PATCH("/:id", h.UpdateInstallment)
		inst.DELETE("/:id", h.DeleteInstallment)
		inst.POST("/:id/mark-paid", h.MarkPaid)
	}

	rg.POST("/payment-receipts", h.CreateReceipt)

	docs := rg.Group("/payment-documents")
	{
		docs.POST("", h.CreateDocument)
		docs.DELETE("/:id", h.DeleteDocument)
	}
}

func (h *Handler) GetProjectPayments(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	payments, err := h.service.GetProjectPayments(c.Request.Context(), companyID, projectID)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payments")
		return
	}
	response.Success(c, http.StatusOK, payments)
}

func (h *Handler) GetTotals(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	projectID, err := strconv.ParseInt(c.Query("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "project_id query parameter is required")
		return
	}

	totals, err := h.service.GetTotals(c.Request.Context(), companyID, projectID)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute totals")
		return
	}
	response.Success(c, http.StatusOK, totals)
}

func (h *Handler) EnsureSchedule(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sched, created, err := h.service.EnsureSchedule(c.Request.Context(), companyID, req)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create schedule")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, sched)
}

func (h *Handler) CreateInstallment(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	var req CreateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if *req.Amount < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "amount must not be negative")
		return
	}

	inst, err := h.service.CreateInstallment(c.Request.Context(), companyID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrScheduleNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment schedule not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Installment status must be planned or payable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create installment")
		}
		return
	}
	response.Success(c, http.StatusCreated, inst)
}

func (h *Handler) UpdateInstallment(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid installment ID")
		return
	}

	var req UpdateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "amount must not be negative")
		return
	}

	inst, err := h.service.UpdateInstallment(c.Request.Context(), companyID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInstallmentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Installment not found")
		case errors.Is(err, ErrInstallmentPaid):
			response.Error(c, http.StatusConflict, "INSTALLMENT_PAID", "Paid installments cannot be edited")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Installment status must be planned or payable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update installment")
		}
		return
	}
	response.Success(c, http.StatusOK, inst)
}

func (h *Handler) DeleteInstallment(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid installment ID")
		return
	}

	if err := h.service.DeleteInstallment(c.Request.Context(), companyID, id); err != nil {
		switch {
		case errors.Is(err, ErrInstallmentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Installment not found")
		case errors.Is(err, ErrInstallmentPaid):
			response.Error(c, http.StatusConflict, "INSTALLMENT_PAID", "Paid installments cannot be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete installment")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) MarkPaid(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	userID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid installment ID")
		return
	}

	// Body is optional; tax defaults to zero.
	var req MarkPaidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
	}
	if req.Tax < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "tax must not be negative")
		return
	}

	inst, invoice, err := h.service.MarkPaid(c.Request.Context(), companyID, userID, id, req.Tax)
	if err != nil {
		switch {
		case errors.Is(err, ErrInstallmentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Installment not found")
		case errors.Is(err, ErrInstallmentPaid):
			response.Error(c, http.StatusConflict, "INSTALLMENT_PAID", "Installment is already paid")
		case errors.Is(err, ErrNotPayable):
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Only payable installments can be marked paid")
		case errors.Is(err, ErrReceiptRequired):
			response.Error(c, http.StatusUnprocessableEntity, "RECEIPT_REQUIRED", "Upload a payment receipt before marking this installment paid")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark installment paid")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"installment": inst,
		"invoice":     invoice,
	})
}

func (h *Handler) CreateReceipt(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	userID := c.GetInt64("user_id")

	var req CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rc, err := h.service.CreateReceipt(c.Request.Context(), companyID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInstallmentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Installment not found")
		case errors.Is(err, ErrInstallmentPaid):
			response.Error(c, http.StatusConflict, "INSTALLMENT_PAID", "Paid installments do not accept new receipts")
		case errors.Is(err, ErrInvalidReceiptType):
			response.Error(c, http.StatusBadRequest, "INVALID_RECEIPT_TYPE", "Unknown receipt type")
		case errors.Is(err, ErrFileRequired), errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", "file_id must reference an uploaded file")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create receipt")
		}
		return
	}
	response.Success(c, http.StatusCreated, rc)
}

func (h *Handler) CreateDocument(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	userID := c.GetInt64("user_id")

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	doc, err := h.service.CreateDocument(c.Request.Context(), companyID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProjectNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", "file_id must reference an uploaded file")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create document")
		}
		return
	}
	response.Success(c, http.StatusCreated, doc)
}

func (h *Handler) DeleteDocument(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid document ID")
		return
	}

	if err := h.service.DeleteDocument(c.Request.Context(), companyID, id); err != nil {
		switch {
		case errors.Is(err, ErrDocumentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
		case errors.Is(err, ErrInvoiceImmutable):
			response.Error(c, http.StatusConflict, "INVOICE_IMMUTABLE", "Generated invoices cannot be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete document")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
