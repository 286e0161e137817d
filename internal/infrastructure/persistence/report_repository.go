package persistence

import (
	"context"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements planning.ReportRepository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

type monthTotalsRow struct {
	MonthKey string
	Planned  decimal.Decimal
	Actual   decimal.Decimal
}

// SummaryByMonths aggregates planned and actual totals per month for the
// given keys. Months without a plan produce no row.
func (r *GormReportRepository) SummaryByMonths(ctx context.Context, userID uuid.UUID, keys []planning.MonthKey) ([]planning.MonthTotals, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	keyStrings := make([]string, len(keys))
	for i, k := range keys {
		keyStrings[i] = k.String()
	}

	var rows []monthTotalsRow
	if err := r.db.WithContext(ctx).
		Table("month_plans").
		Select("month_plans.month_key AS month_key, "+
			"COALESCE(SUM(payment_items.planned_amount), 0) AS planned, "+
			"COALESCE(SUM(payment_items.actual_amount), 0) AS actual").
		Joins("LEFT JOIN payment_items ON payment_items.month_plan_id = month_plans.id").
		Where("month_plans.user_id = ? AND month_plans.month_key IN ?", userID, keyStrings).
		Group("month_plans.month_key").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]planning.MonthTotals, len(rows))
	for i, row := range rows {
		totals[i] = planning.MonthTotals{
			MonthKey: planning.MonthKey(row.MonthKey),
			Planned:  row.Planned,
			Actual:   row.Actual,
		}
	}
	return totals, nil
}

type categoryTotalRow struct {
	CategoryID   *uuid.UUID
	CategoryName *string
	Actual       decimal.Decimal
}

// CategoryExpenses returns per-category actual spend for the month,
// omitting empty groups, largest first. Items without a category land in
// an unnamed group.
func (r *GormReportRepository) CategoryExpenses(ctx context.Context, userID uuid.UUID, key planning.MonthKey) ([]planning.CategoryTotal, error) {
	var rows []categoryTotalRow
	if err := r.db.WithContext(ctx).
		Table("payment_items").
		Select("payment_items.category_id AS category_id, "+
			"categories.name AS category_name, "+
			"SUM(payment_items.actual_amount) AS actual").
		Joins("JOIN month_plans ON month_plans.id = payment_items.month_plan_id").
		Joins("LEFT JOIN categories ON categories.id = payment_items.category_id").
		Where("month_plans.user_id = ? AND month_plans.month_key = ?", userID, key.String()).
		Group("payment_items.category_id, categories.name").
		Having("SUM(payment_items.actual_amount) > 0").
		Order("actual DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]planning.CategoryTotal, len(rows))
	for i, row := range rows {
		name := "Uncategorized"
		if row.CategoryName != nil {
			name = *row.CategoryName
		}
		totals[i] = planning.CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: name,
			Actual:       row.Actual,
		}
	}
	return totals, nil
}

var _ planning.ReportRepository = (*GormReportRepository)(nil)
