package planning

import (
	"context"
	"testing"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPlanFixture() (*PlanService, *mockPlanRepo, *mockTemplateRepo, *mockItemRepo) {
	planRepo := new(mockPlanRepo)
	templateRepo := new(mockTemplateRepo)
	itemRepo := new(mockItemRepo)
	svc := NewPlanService(planRepo, templateRepo, itemRepo, zap.NewNop())
	return svc, planRepo, templateRepo, itemRepo
}

func mustTemplate(t *testing.T, userID uuid.UUID, name string, categoryID *uuid.UUID, amount int64, start string, end *string) *planning.Template {
	t.Helper()
	var endKey *planning.MonthKey
	if end != nil {
		k := planning.MonthKey(*end)
		endKey = &k
	}
	template, err := planning.NewTemplate(userID, name, categoryID,
		decimal.NewFromInt(amount), "", planning.MonthKey(start), endKey, planning.FrequencyMonthly)
	require.NoError(t, err)
	return template
}

func TestGenerateInstantiatesEveryApplicableTemplate(t *testing.T) {
	svc, planRepo, templateRepo, itemRepo := newPlanFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	rentCategory := uuid.New()
	templates := []*planning.Template{
		mustTemplate(t, userID, "Rent", &rentCategory, 1200, "2025-01", nil),
		mustTemplate(t, userID, "Internet", nil, 40, "2024-06", nil),
		mustTemplate(t, userID, "Gym", nil, 30, "2025-03", nil),
	}

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	templateRepo.On("FindApplicable", mock.Anything, userID, key).Return(templates, nil)
	itemRepo.On("ListByPlan", mock.Anything, plan.ID).Return([]*planning.Item{}, nil)
	itemRepo.On("SaveIfAbsent", mock.Anything, mock.Anything).Return(true, nil).Times(3)

	result, err := svc.Generate(context.Background(), userID, GenerateInput{MonthKey: "2025-03"})
	require.NoError(t, err)
	assert.Equal(t, plan.ID.String(), result.PlanID)
	assert.Equal(t, 3, result.CreatedCount)
	itemRepo.AssertExpectations(t)

	// every inserted item is seeded from its template
	for i, call := range itemRepo.Calls {
		if call.Method != "SaveIfAbsent" {
			continue
		}
		item := call.Arguments.Get(1).(*planning.Item)
		assert.Equal(t, plan.ID, item.MonthPlanID)
		assert.True(t, item.ActualAmount.IsZero())
		assert.False(t, item.IsPaid)
		require.NotNil(t, item.TemplateID, "call %d", i)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	svc, planRepo, templateRepo, itemRepo := newPlanFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	rent := mustTemplate(t, userID, "Rent", nil, 1200, "2025-01", nil)
	existing := planning.InstantiateTemplate(plan.ID, rent)

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	templateRepo.On("FindApplicable", mock.Anything, userID, key).Return([]*planning.Template{rent}, nil)
	itemRepo.On("ListByPlan", mock.Anything, plan.ID).Return([]*planning.Item{existing}, nil)

	result, err := svc.Generate(context.Background(), userID, GenerateInput{MonthKey: "2025-03"})
	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount)
	itemRepo.AssertNotCalled(t, "SaveIfAbsent")
}

func TestGenerateSkipsRenamedGeneratedItem(t *testing.T) {
	// The Rent scenario: the user renames the generated "Rent" item to
	// "Rent (March)" and marks it paid. Re-running generation must not
	// bring "Rent" back, because the item still carries the origin ref.
	svc, planRepo, templateRepo, itemRepo := newPlanFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	rent := mustTemplate(t, userID, "Rent", nil, 1200, "2025-01", nil)
	item := planning.InstantiateTemplate(plan.ID, rent)
	require.NoError(t, item.Update(nil, "Rent (March)", item.PlannedAmount, decimal.NewFromInt(1200), true, ""))

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	templateRepo.On("FindApplicable", mock.Anything, userID, key).Return([]*planning.Template{rent}, nil)
	itemRepo.On("ListByPlan", mock.Anything, plan.ID).Return([]*planning.Item{item}, nil)

	result, err := svc.Generate(context.Background(), userID, GenerateInput{MonthKey: "2025-03"})
	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount)
	itemRepo.AssertNotCalled(t, "SaveIfAbsent")
}

func TestGenerateMatchesManualItemByNameAndCategory(t *testing.T) {
	svc, planRepo, templateRepo, itemRepo := newPlanFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	rent := mustTemplate(t, userID, "Rent", nil, 1200, "2025-01", nil)
	manual, err := planning.NewItem(plan.ID, nil, "Rent", decimal.NewFromInt(1100), decimal.Zero, "")
	require.NoError(t, err)

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	templateRepo.On("FindApplicable", mock.Anything, userID, key).Return([]*planning.Template{rent}, nil)
	itemRepo.On("ListByPlan", mock.Anything, plan.ID).Return([]*planning.Item{manual}, nil)

	result, err := svc.Generate(context.Background(), userID, GenerateInput{MonthKey: "2025-03"})
	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount, "a manual item with the template's name and category covers it")
}

func TestGenerateLostInsertRaceNotCounted(t *testing.T) {
	svc, planRepo, templateRepo, itemRepo := newPlanFixture()
	userID := uuid.New()
	key := planning.MonthKey("2025-03")
	plan := planning.NewMonthPlan(userID, key)

	rent := mustTemplate(t, userID, "Rent", nil, 1200, "2025-01", nil)

	planRepo.On("GetOrCreate", mock.Anything, userID, key).Return(plan, nil)
	templateRepo.On("FindApplicable", mock.Anything, userID, key).Return([]*planning.Template{rent}, nil)
	itemRepo.On("ListByPlan", mock.Anything, plan.ID).Return([]*planning.Item{}, nil)
	// a concurrent generation won the insert
	itemRepo.On("SaveIfAbsent", mock.Anything, mock.Anything).Return(false, nil)

	result, err := svc.Generate(context.Background(), userID, GenerateInput{MonthKey: "2025-03"})
	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount)
}

func TestGenerateRejectsMalformedMonthKey(t *testing.T) {
	svc, planRepo, _, _ := newPlanFixture()

	_, err := svc.Generate(context.Background(), uuid.New(), GenerateInput{MonthKey: "2025-3"})
	assert.ErrorIs(t, err, planning.ErrInvalidMonthKey)
	planRepo.AssertNotCalled(t, "GetOrCreate")
}

func TestTemplateWindowBoundaries(t *testing.T) {
	userID := uuid.New()
	end := "2025-06"
	template := mustTemplate(t, userID, "Lease", nil, 900, "2025-01", &end)

	assert.False(t, template.AppliesTo("2024-12"))
	assert.True(t, template.AppliesTo("2025-01"), "start month is inclusive")
	assert.True(t, template.AppliesTo("2025-06"), "end month is inclusive")
	assert.False(t, template.AppliesTo("2025-07"))
}
