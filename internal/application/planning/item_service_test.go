package planning

import (
	"context"
	"testing"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newItemFixture() (*ItemService, *mockPlanRepo, *mockItemRepo, *mockCategoryRepo) {
	planRepo := new(mockPlanRepo)
	itemRepo := new(mockItemRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewItemService(planRepo, itemRepo, categoryRepo, zap.NewNop())
	return svc, planRepo, itemRepo, categoryRepo
}

func TestCreateItemCreatesPlanOnDemand(t *testing.T) {
	svc, planRepo, itemRepo, _ := newItemFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	itemRepo.On("Save", mock.Anything, mock.MatchedBy(func(i *planning.Item) bool {
		return i.MonthPlanID == plan.ID && i.TemplateID == nil
	})).Return(nil)

	dto, err := svc.Create(context.Background(), userID, CreateItemInput{
		MonthKey:      "2025-03",
		Name:          "Concert tickets",
		PlannedAmount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "Concert tickets", dto.Name)
	assert.Nil(t, dto.TemplateID, "manual items carry no origin reference")
	itemRepo.AssertExpectations(t)
}

func TestCreateItemForeignCategory(t *testing.T) {
	svc, planRepo, _, categoryRepo := newItemFixture()
	userID := uuid.New()
	foreignID := uuid.New().String()

	categoryRepo.On("FindOwned", mock.Anything, mock.Anything, userID).Return(nil, shared.ErrNotFound)

	_, err := svc.Create(context.Background(), userID, CreateItemInput{
		MonthKey:   "2025-03",
		CategoryID: &foreignID,
		Name:       "Rent",
	})
	assert.ErrorIs(t, err, planning.ErrCategoryNotOwned)
	planRepo.AssertNotCalled(t, "GetOrCreate")
}

func TestUpdateItem(t *testing.T) {
	svc, _, itemRepo, _ := newItemFixture()
	userID := uuid.New()
	planID := uuid.New()

	item, err := planning.NewItem(planID, nil, "Groceries", decimal.NewFromInt(400), decimal.Zero, "")
	require.NoError(t, err)
	itemRepo.On("FindOwned", mock.Anything, item.ID, userID).Return(item, nil)
	itemRepo.On("Update", mock.Anything, item).Return(nil)

	dto, err := svc.Update(context.Background(), userID, item.ID, UpdateItemInput{
		Name:          "Groceries",
		PlannedAmount: decimal.NewFromInt(400),
		ActualAmount:  decimal.NewFromInt(362),
		IsPaid:        true,
	})
	require.NoError(t, err)
	assert.True(t, dto.ActualAmount.Equal(decimal.NewFromInt(362)))
	assert.True(t, dto.IsPaid)
}

func TestCreateItemAllowsRepeatedExpense(t *testing.T) {
	svc, planRepo, itemRepo, _ := newItemFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	itemRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Logging the same expense twice in a month is a normal workflow
	// for manual items.
	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), userID, CreateItemInput{
			MonthKey:     "2025-03",
			Name:         "Coffee",
			ActualAmount: decimal.NewFromInt(4),
		})
		require.NoError(t, err)
	}
	itemRepo.AssertNumberOfCalls(t, "Save", 2)
}

func TestCreateItemAllowsNegativeActual(t *testing.T) {
	svc, planRepo, itemRepo, _ := newItemFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	itemRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Negative actuals record refunds.
	dto, err := svc.Create(context.Background(), userID, CreateItemInput{
		MonthKey:     "2025-03",
		Name:         "Returned jacket",
		ActualAmount: decimal.NewFromInt(-60),
	})
	require.NoError(t, err)
	assert.True(t, dto.ActualAmount.Equal(decimal.NewFromInt(-60)))
}

func TestCreateItemDuplicateConflict(t *testing.T) {
	svc, planRepo, itemRepo, _ := newItemFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	itemRepo.On("Save", mock.Anything, mock.Anything).Return(planning.ErrDuplicateItem)

	_, err := svc.Create(context.Background(), userID, CreateItemInput{
		MonthKey: "2025-03",
		Name:     "Rent",
	})
	assert.ErrorIs(t, err, planning.ErrDuplicateItem)
}

func TestUpdateItemScoped(t *testing.T) {
	svc, _, itemRepo, _ := newItemFixture()
	userID := uuid.New()

	itemRepo.On("FindOwned", mock.Anything, mock.Anything, userID).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), userID, uuid.New(), UpdateItemInput{Name: "Rent"})
	assert.ErrorIs(t, err, planning.ErrItemNotFound)
}

func TestDeleteItemScoped(t *testing.T) {
	svc, _, itemRepo, _ := newItemFixture()
	userID := uuid.New()
	itemID := uuid.New()

	itemRepo.On("Delete", mock.Anything, itemID, userID).Return(shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), userID, itemID), planning.ErrItemNotFound)
}
