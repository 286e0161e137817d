package handler

import (
	planningapp "github.com/expenze/backend/internal/application/planning"
	"github.com/expenze/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// MonthHandler serves the assembled month view and plan generation
type MonthHandler struct {
	BaseHandler
	monthService *planningapp.MonthService
	planService  *planningapp.PlanService
}

// NewMonthHandler creates a new MonthHandler
func NewMonthHandler(monthService *planningapp.MonthService, planService *planningapp.PlanService) *MonthHandler {
	return &MonthHandler{monthService: monthService, planService: planService}
}

// Get returns the month view. A month that was never generated and has
// no manual items comes back as null data rather than 404.
func (h *MonthHandler) Get(c *gin.Context) {
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

	view, err := h.monthService.GetMonth(c.Request.Context(), userID, uri.MonthKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Generate materializes applicable templates into the month's plan.
// Safe to call repeatedly; existing items are never touched.
func (h *MonthHandler) Generate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req planningapp.GenerateInput
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.planService.Generate(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RegisterRoutes registers all month routes
func (h *MonthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	months := rg.Group("/months")
	{
		months.GET("/:monthKey", h.Get)
		months.POST("/generate", h.Generate)
	}
}
