package planning

import (
	"time"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/shopspring/decimal"
)

// CategoryDTO is the API projection of a category
type CategoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCategoryInput creates a category for the caller
type CreateCategoryInput struct {
	Name      string `json:"name" binding:"required,max=100"`
	Icon      string `json:"icon" binding:"max=50"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryInput replaces a category's mutable fields
type UpdateCategoryInput struct {
	Name      string `json:"name" binding:"required,max=100"`
	Icon      string `json:"icon" binding:"max=50"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// TemplateDTO is the API projection of a payment template
type TemplateDTO struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	CategoryID           *string         `json:"category_id,omitempty"`
	DefaultPlannedAmount decimal.Decimal `json:"default_planned_amount"`
	Notes                string          `json:"notes,omitempty"`
	StartMonth           string          `json:"start_month"`
	EndMonth             *string         `json:"end_month,omitempty"`
	Frequency            string          `json:"frequency"`
	IsActive             bool            `json:"is_active"`
	CreatedAt            time.Time       `json:"created_at"`
}

// TemplateInput is shared by create and update
type TemplateInput struct {
	Name                 string          `json:"name" binding:"required,max=100"`
	CategoryID           *string         `json:"category_id" binding:"omitempty,uuid"`
	DefaultPlannedAmount decimal.Decimal `json:"default_planned_amount"`
	Notes                string          `json:"notes" binding:"max=500"`
	StartMonth           string          `json:"start_month" binding:"required,monthkey"`
	EndMonth             *string         `json:"end_month" binding:"omitempty,monthkey"`
	Frequency            string          `json:"frequency" binding:"omitempty,oneof=monthly quarterly yearly once"`
	IsActive             *bool           `json:"is_active"`
}

// GenerateInput requests plan generation for one month
type GenerateInput struct {
	MonthKey string `json:"month_key" binding:"required,monthkey"`
}

// GenerateResult reports what generation did. Generation is idempotent;
// CreatedCount is zero when everything was already in place.
type GenerateResult struct {
	PlanID       string `json:"plan_id"`
	MonthKey     string `json:"month_key"`
	CreatedCount int    `json:"created_count"`
}

// ItemDTO is the API projection of a payment item
type ItemDTO struct {
	ID            string          `json:"id"`
	MonthPlanID   string          `json:"month_plan_id"`
	CategoryID    *string         `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	TemplateID    *string         `json:"template_id,omitempty"`
	Name          string          `json:"name"`
	PlannedAmount decimal.Decimal `json:"planned_amount"`
	ActualAmount  decimal.Decimal `json:"actual_amount"`
	IsPaid        bool            `json:"is_paid"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateItemInput adds a manual item to a month
type CreateItemInput struct {
	MonthKey      string          `json:"month_key" binding:"required,monthkey"`
	CategoryID    *string         `json:"category_id" binding:"omitempty,uuid"`
	Name          string          `json:"name" binding:"required,max=100"`
	PlannedAmount decimal.Decimal `json:"planned_amount"`
	ActualAmount  decimal.Decimal `json:"actual_amount"`
	Notes         string          `json:"notes" binding:"max=500"`
}

// UpdateItemInput replaces an item's mutable fields
type UpdateItemInput struct {
	CategoryID    *string         `json:"category_id" binding:"omitempty,uuid"`
	Name          string          `json:"name" binding:"required,max=100"`
	PlannedAmount decimal.Decimal `json:"planned_amount"`
	ActualAmount  decimal.Decimal `json:"actual_amount"`
	IsPaid        bool            `json:"is_paid"`
	Notes         string          `json:"notes" binding:"max=500"`
}

// MonthViewDTO is the month screen: the plan, its items, the salary, and
// the running totals. A month that was never generated comes back nil.
type MonthViewDTO struct {
	PlanID       string          `json:"plan_id"`
	MonthKey     string          `json:"month_key"`
	Items        []ItemDTO       `json:"items"`
	Salary       decimal.Decimal `json:"salary"`
	PlannedTotal decimal.Decimal `json:"planned_total"`
	ActualTotal  decimal.Decimal `json:"actual_total"`
}

// SalaryDTO is the API projection of a month's salary
type SalaryDTO struct {
	MonthKey string          `json:"month_key"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes,omitempty"`
}

// UpsertSalaryInput records the salary for one month
type UpsertSalaryInput struct {
	MonthKey string          `json:"month_key" binding:"required,monthkey"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes" binding:"max=500"`
}

// MonthSummaryDTO is one month of the trailing dashboard trend
type MonthSummaryDTO struct {
	MonthKey string          `json:"month_key"`
	Planned  decimal.Decimal `json:"planned"`
	Actual   decimal.Decimal `json:"actual"`
}

// CategoryExpenseDTO is one slice of the spending breakdown
type CategoryExpenseDTO struct {
	CategoryID   *string         `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name"`
	Actual       decimal.Decimal `json:"actual"`
}

func toCategoryDTO(c *planning.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID.String(),
		Name:      c.Name,
		Icon:      c.Icon,
		SortOrder: c.SortOrder,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func toTemplateDTO(t *planning.Template) TemplateDTO {
	dto := TemplateDTO{
		ID:                   t.ID.String(),
		Name:                 t.Name,
		DefaultPlannedAmount: t.DefaultPlannedAmount,
		Notes:                t.Notes,
		StartMonth:           t.StartMonth.String(),
		Frequency:            string(t.Frequency),
		IsActive:             t.IsActive,
		CreatedAt:            t.CreatedAt,
	}
	if t.CategoryID != nil {
		id := t.CategoryID.String()
		dto.CategoryID = &id
	}
	if t.EndMonth != nil {
		end := t.EndMonth.String()
		dto.EndMonth = &end
	}
	return dto
}

func toItemDTO(i *planning.Item, categoryName string) ItemDTO {
	dto := ItemDTO{
		ID:            i.ID.String(),
		MonthPlanID:   i.MonthPlanID.String(),
		CategoryName:  categoryName,
		Name:          i.Name,
		PlannedAmount: i.PlannedAmount,
		ActualAmount:  i.ActualAmount,
		IsPaid:        i.IsPaid,
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
	}
	if i.CategoryID != nil {
		id := i.CategoryID.String()
		dto.CategoryID = &id
	}
	if i.TemplateID != nil {
		id := i.TemplateID.String()
		dto.TemplateID = &id
	}
	return dto
}

func toSalaryDTO(s *planning.Salary) SalaryDTO {
	return SalaryDTO{
		MonthKey: s.MonthKey.String(),
		Amount:   s.Amount,
		Notes:    s.Notes,
	}
}
