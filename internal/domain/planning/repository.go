package planning

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRepository persists user-owned categories. Every finder is
// scoped by owner; Delete clears the category reference on items and
// templates instead of cascading.
type CategoryRepository interface {
	Save(ctx context.Context, c *Category) error
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type TemplateRepository interface {
	Save(ctx context.Context, t *Template) error
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*Template, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Template, error)
	// FindApplicable returns active templates whose window covers key.
	FindApplicable(ctx context.Context, userID uuid.UUID, key MonthKey) ([]*Template, error)
	Update(ctx context.Context, t *Template) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type MonthPlanRepository interface {
	// GetOrCreate inserts the plan row if absent and returns the winning
	// row either way. Concurrent callers for the same (user, month) all
	// end up with the same plan.
	GetOrCreate(ctx context.Context, userID uuid.UUID, key MonthKey) (*MonthPlan, error)
	FindByKey(ctx context.Context, userID uuid.UUID, key MonthKey) (*MonthPlan, error)
}

type ItemRepository interface {
	Save(ctx context.Context, item *Item) error
	// SaveIfAbsent inserts unless an item with the same plan, name, and
	// category already exists. Reports whether a row was written.
	SaveIfAbsent(ctx context.Context, item *Item) (bool, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]*Item, error)
	// FindOwned resolves an item through its plan's owner.
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type SalaryRepository interface {
	// Upsert writes the amount for (user, month), overwriting any
	// previous record.
	Upsert(ctx context.Context, s *Salary) error
	FindByMonth(ctx context.Context, userID uuid.UUID, key MonthKey) (*Salary, error)
}

// MonthTotals is one month's aggregate for the trailing summary.
type MonthTotals struct {
	MonthKey MonthKey
	Planned  decimal.Decimal
	Actual   decimal.Decimal
}

// CategoryTotal is one slice of the category spending breakdown.
type CategoryTotal struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Actual       decimal.Decimal
}

// ReportRepository serves the dashboard aggregates. Months without a
// plan are simply absent from SummaryByMonths; the service zero-fills.
type ReportRepository interface {
	SummaryByMonths(ctx context.Context, userID uuid.UUID, keys []MonthKey) ([]MonthTotals, error)
	// CategoryExpenses returns per-category actual spend for the month,
	// omitting categories with nothing spent, largest first.
	CategoryExpenses(ctx context.Context, userID uuid.UUID, key MonthKey) ([]CategoryTotal, error)
}
