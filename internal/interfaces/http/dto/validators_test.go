package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMonthKeyBinding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		MonthKey string `json:"month_key" binding:"required,monthkey"`
	}

	bind := func(body string) error {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var p payload
		return c.ShouldBindJSON(&p)
	}

	assert.NoError(t, bind(`{"month_key":"2025-03"}`))
	assert.Error(t, bind(`{"month_key":"2025-3"}`))
	assert.Error(t, bind(`{"month_key":"2025-13"}`))
	assert.Error(t, bind(`{"month_key":"march"}`))
	assert.Error(t, bind(`{"month_key":""}`))
}
