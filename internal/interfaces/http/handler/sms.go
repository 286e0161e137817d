package handler

import (
	"github.com/expenze/backend/internal/application/sms"
	"github.com/gin-gonic/gin"
)

// SMSHandler parses bank notification text into expense suggestions
type SMSHandler struct {
	BaseHandler
	parser *sms.Parser
}

// NewSMSHandler creates a new SMSHandler
func NewSMSHandler(parser *sms.Parser) *SMSHandler {
	return &SMSHandler{parser: parser}
}

// Parse extracts candidate expenses from raw SMS text. Parsing is
// best-effort; lines that yield nothing are silently skipped.
func (h *SMSHandler) Parse(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req sms.ParseInput
	if !h.BindJSON(c, &req) {
		return
	}

	h.Success(c, h.parser.Parse(req))
}

// RegisterRoutes registers all SMS routes
func (h *SMSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sms/parse", h.Parse)
}
