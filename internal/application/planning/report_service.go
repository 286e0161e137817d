package planning

import (
	"context"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const trailingMonths = 6

// ReportService serves the dashboard aggregates.
type ReportService struct {
	reportRepo planning.ReportRepository
	logger     *zap.Logger
}

func NewReportService(reportRepo planning.ReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

// Last6Summary returns the trailing six months ending at monthKey,
// oldest first. Months without a plan come back with zero totals so the
// chart always has six points.
func (s *ReportService) Last6Summary(ctx context.Context, userID uuid.UUID, monthKey string) ([]MonthSummaryDTO, error) {
	key, err := planning.ParseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}
	keys := key.LastN(trailingMonths)

	totals, err := s.reportRepo.SummaryByMonths(ctx, userID, keys)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[planning.MonthKey]planning.MonthTotals, len(totals))
	for _, t := range totals {
		byMonth[t.MonthKey] = t
	}

	out := make([]MonthSummaryDTO, 0, len(keys))
	for _, k := range keys {
		dto := MonthSummaryDTO{MonthKey: k.String(), Planned: decimal.Zero, Actual: decimal.Zero}
		if t, ok := byMonth[k]; ok {
			dto.Planned = t.Planned
			dto.Actual = t.Actual
		}
		out = append(out, dto)
	}
	return out, nil
}

// CategoryExpenses returns the month's actual spend per category,
// largest first, skipping categories with nothing spent.
func (s *ReportService) CategoryExpenses(ctx context.Context, userID uuid.UUID, monthKey string) ([]CategoryExpenseDTO, error) {
	key, err := planning.ParseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}
	totals, err := s.reportRepo.CategoryExpenses(ctx, userID, key)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryExpenseDTO, 0, len(totals))
	for _, t := range totals {
		dto := CategoryExpenseDTO{CategoryName: t.CategoryName, Actual: t.Actual}
		if t.CategoryID != nil {
			id := t.CategoryID.String()
			dto.CategoryID = &id
		}
		out = append(out, dto)
	}
	return out, nil
}
