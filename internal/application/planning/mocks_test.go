package planning

import (
	"context"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Save(ctx context.Context, c *planning.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) FindOwned(ctx context.Context, id, userID uuid.UUID) (*planning.Category, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.Category), args.Error(1)
}

func (m *mockCategoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*planning.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planning.Category), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *planning.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type mockTemplateRepo struct {
	mock.Mock
}

func (m *mockTemplateRepo) Save(ctx context.Context, t *planning.Template) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTemplateRepo) FindOwned(ctx context.Context, id, userID uuid.UUID) (*planning.Template, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.Template), args.Error(1)
}

func (m *mockTemplateRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*planning.Template, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planning.Template), args.Error(1)
}

func (m *mockTemplateRepo) FindApplicable(ctx context.Context, userID uuid.UUID, key planning.MonthKey) ([]*planning.Template, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planning.Template), args.Error(1)
}

func (m *mockTemplateRepo) Update(ctx context.Context, t *planning.Template) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type mockPlanRepo struct {
	mock.Mock
}

func (m *mockPlanRepo) GetOrCreate(ctx context.Context, userID uuid.UUID, key planning.MonthKey) (*planning.MonthPlan, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.MonthPlan), args.Error(1)
}

func (m *mockPlanRepo) FindByKey(ctx context.Context, userID uuid.UUID, key planning.MonthKey) (*planning.MonthPlan, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.MonthPlan), args.Error(1)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Save(ctx context.Context, item *planning.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) SaveIfAbsent(ctx context.Context, item *planning.Item) (bool, error) {
	args := m.Called(ctx, item)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemRepo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*planning.Item, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planning.Item), args.Error(1)
}

func (m *mockItemRepo) FindOwned(ctx context.Context, id, userID uuid.UUID) (*planning.Item, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.Item), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *planning.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type mockSalaryRepo struct {
	mock.Mock
}

func (m *mockSalaryRepo) Upsert(ctx context.Context, s *planning.Salary) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSalaryRepo) FindByMonth(ctx context.Context, userID uuid.UUID, key planning.MonthKey) (*planning.Salary, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.Salary), args.Error(1)
}

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) SummaryByMonths(ctx context.Context, userID uuid.UUID, keys []planning.MonthKey) ([]planning.MonthTotals, error) {
	args := m.Called(ctx, userID, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]planning.MonthTotals), args.Error(1)
}

func (m *mockReportRepo) CategoryExpenses(ctx context.Context, userID uuid.UUID, key planning.MonthKey) ([]planning.CategoryTotal, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]planning.CategoryTotal), args.Error(1)
}
