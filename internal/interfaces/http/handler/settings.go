package handler

import (
	settingsapp "github.com/expenze/backend/internal/application/settings"
	"github.com/expenze/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes individual settings reads. The route is open
// so the frontend can fetch public flags before login; private keys
// still require an admin token.
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns one setting. Non-admin and anonymous callers get 404 for
// private keys so key names are not enumerable.
func (h *SettingsHandler) Get(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		h.BadRequest(c, "Setting key is required")
		return
	}

	isAdmin := middleware.GetJWTRole(c) == middleware.AdminRole

	setting, err := h.settingsService.Get(c.Request.Context(), key, isAdmin)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, setting)
}

// RegisterRoutes registers all settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/:key", h.Get)
}
