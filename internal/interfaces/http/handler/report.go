package handler

import (
	planningapp "github.com/expenze/backend/internal/application/planning"
	"github.com/expenze/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves dashboard aggregates
type ReportHandler struct {
	BaseHandler
	reportService *planningapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *planningapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Last6Summary returns per-month totals for the six months ending at monthKey,
// zero-filled so the chart always has six points.
func (h *ReportHandler) Last6Summary(c *gin.Context) {
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

	summary, err := h.reportService.Last6Summary(c.Request.Context(), userID, uri.MonthKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// CategoryExpenses returns actual spend per category for one month
func (h *ReportHandler) CategoryExpenses(c *gin.Context) {
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

	expenses, err := h.reportService.CategoryExpenses(c.Request.Context(), userID, uri.MonthKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expenses)
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/summary/:monthKey", h.Last6Summary)
		reports.GET("/category-expenses/:monthKey", h.CategoryExpenses)
	}
}
