package handler

import (
	planningapp "github.com/expenze/backend/internal/application/planning"
	"github.com/expenze/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ItemHandler handles payment item endpoints
type ItemHandler struct {
	BaseHandler
	itemService *planningapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *planningapp.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create adds a manual item to a month, creating the plan on demand
func (h *ItemHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req planningapp.CreateItemInput
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update edits an item owned by the caller
func (h *ItemHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req planningapp.UpdateItemInput
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), userID, uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete removes an item owned by the caller
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), userID, uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers all item routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	{
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
