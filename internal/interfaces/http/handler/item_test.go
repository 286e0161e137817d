package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	planningapp "github.com/expenze/backend/internal/application/planning"
	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupItemHandler(userID uuid.UUID) (*itemHandlerMocks, http.Handler) {
	m := &itemHandlerMocks{
		planRepo:     new(mockPlanRepo),
		itemRepo:     new(mockItemRepo),
		categoryRepo: new(mockCategoryRepo),
	}
	handler := NewItemHandler(planningapp.NewItemService(m.planRepo, m.itemRepo, m.categoryRepo, testLogger()))
	router := authRouter(userID, "user")
	handler.RegisterRoutes(router.Group("/api/v1"))
	return m, router
}

type itemHandlerMocks struct {
	planRepo     *mockPlanRepo
	itemRepo     *mockItemRepo
	categoryRepo *mockCategoryRepo
}

func postItem(t *testing.T, router http.Handler, input planningapp.CreateItemInput) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(input)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestItemHandler_Create(t *testing.T) {
	t.Run("creates manual item", func(t *testing.T) {
		userID := uuid.New()
		m, router := setupItemHandler(userID)
		plan := planning.NewMonthPlan(userID, planning.MonthKey("2025-03"))

		m.planRepo.On("GetOrCreate", mock.Anything, userID, planning.MonthKey("2025-03")).Return(plan, nil)
		m.itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*planning.Item")).Return(nil)

		w := postItem(t, router, planningapp.CreateItemInput{MonthKey: "2025-03", Name: "Coffee"})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		m.itemRepo.AssertExpectations(t)
	})

	t.Run("colliding write answers conflict", func(t *testing.T) {
		userID := uuid.New()
		m, router := setupItemHandler(userID)
		plan := planning.NewMonthPlan(userID, planning.MonthKey("2025-03"))

		m.planRepo.On("GetOrCreate", mock.Anything, userID, planning.MonthKey("2025-03")).Return(plan, nil)
		m.itemRepo.On("Save", mock.Anything, mock.Anything).Return(planning.ErrDuplicateItem)

		w := postItem(t, router, planningapp.CreateItemInput{MonthKey: "2025-03", Name: "Rent"})

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	})
}
