package handler

import (
	planningapp "github.com/expenze/backend/internal/application/planning"
	"github.com/expenze/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SalaryHandler handles monthly salary endpoints
type SalaryHandler struct {
	BaseHandler
	salaryService *planningapp.SalaryService
}

// NewSalaryHandler creates a new SalaryHandler
func NewSalaryHandler(salaryService *planningapp.SalaryService) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService}
}

// Get returns the salary for a month, zero when never recorded
func (h *SalaryHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.MonthKeyRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid month key, expected YYYY-MM")
		return
	}

	salary, err := h.salaryService.Get(c.Request.Context(), userID, uri.MonthKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, salary)
}

// Upsert records or replaces the salary for a month
func (h *SalaryHandler) Upsert(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req planningapp.UpsertSalaryInput
	if !h.BindJSON(c, &req) {
		return
	}

	salary, err := h.salaryService.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, salary)
}

// RegisterRoutes registers all salary routes
func (h *SalaryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	salary := rg.Group("/salary")
	{
		salary.GET("/:monthKey", h.Get)
		salary.POST("", h.Upsert)
	}
}
