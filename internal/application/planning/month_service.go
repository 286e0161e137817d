package planning

import (
	"context"
	"errors"
	"sort"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MonthService assembles the month screen.
type MonthService struct {
	planRepo     planning.MonthPlanRepository
	itemRepo     planning.ItemRepository
	categoryRepo planning.CategoryRepository
	salaryRepo   planning.SalaryRepository
	logger       *zap.Logger
}

func NewMonthService(
	planRepo planning.MonthPlanRepository,
	itemRepo planning.ItemRepository,
	categoryRepo planning.CategoryRepository,
	salaryRepo planning.SalaryRepository,
	logger *zap.Logger,
) *MonthService {
	return &MonthService{
		planRepo:     planRepo,
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		salaryRepo:   salaryRepo,
		logger:       logger,
	}
}

// GetMonth returns the plan with its items, ordered by category sort
// order then item name. A month that was never generated returns nil
// without error.
func (s *MonthService) GetMonth(ctx context.Context, userID uuid.UUID, monthKey string) (*MonthViewDTO, error) {
	key, err := planning.ParseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindByKey(ctx, userID, key)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	items, err := s.itemRepo.ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	order := make(map[uuid.UUID]int, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
		order[c.ID] = c.SortOrder
	}

	sort.SliceStable(items, func(a, b int) bool {
		oa, ob := itemOrder(items[a], order), itemOrder(items[b], order)
		if oa != ob {
			return oa < ob
		}
		return items[a].Name < items[b].Name
	})

	view := &MonthViewDTO{
		PlanID:       plan.ID.String(),
		MonthKey:     key.String(),
		Items:        make([]ItemDTO, 0, len(items)),
		PlannedTotal: decimal.Zero,
		ActualTotal:  decimal.Zero,
	}
	for _, item := range items {
		name := ""
		if item.CategoryID != nil {
			name = names[*item.CategoryID]
		}
		view.Items = append(view.Items, toItemDTO(item, name))
		view.PlannedTotal = view.PlannedTotal.Add(item.PlannedAmount)
		view.ActualTotal = view.ActualTotal.Add(item.ActualAmount)
	}

	salary, err := s.salaryRepo.FindByMonth(ctx, userID, key)
	switch {
	case err == nil:
		view.Salary = salary.Amount
	case errors.Is(err, shared.ErrNotFound):
		view.Salary = decimal.Zero
	default:
		return nil, err
	}

	return view, nil
}

// itemOrder sorts categorized items by their category's sort order and
// pushes uncategorized ones to the end.
func itemOrder(item *planning.Item, order map[uuid.UUID]int) int {
	if item.CategoryID == nil {
		return int(^uint(0) >> 1)
	}
	if o, ok := order[*item.CategoryID]; ok {
		return o
	}
	return int(^uint(0) >> 1)
}
