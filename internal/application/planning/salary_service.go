package planning

import (
	"context"
	"errors"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SalaryService records monthly income. One row per month; writing
// again overwrites.
type SalaryService struct {
	salaryRepo planning.SalaryRepository
	logger     *zap.Logger
}

func NewSalaryService(salaryRepo planning.SalaryRepository, logger *zap.Logger) *SalaryService {
	return &SalaryService{salaryRepo: salaryRepo, logger: logger}
}

// Get returns the month's salary, zero when none was recorded.
func (s *SalaryService) Get(ctx context.Context, userID uuid.UUID, monthKey string) (*SalaryDTO, error) {
	key, err := planning.ParseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}
	salary, err := s.salaryRepo.FindByMonth(ctx, userID, key)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &SalaryDTO{MonthKey: key.String(), Amount: decimal.Zero}, nil
		}
		return nil, err
	}
	dto := toSalaryDTO(salary)
	return &dto, nil
}

func (s *SalaryService) Upsert(ctx context.Context, userID uuid.UUID, input UpsertSalaryInput) (*SalaryDTO, error) {
	key, err := planning.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, err
	}
	salary, err := planning.NewSalary(userID, key, input.Amount, input.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.salaryRepo.Upsert(ctx, salary); err != nil {
		return nil, err
	}
	s.logger.Info("Salary recorded",
		zap.String("user_id", userID.String()),
		zap.String("month_key", key.String()))
	dto := toSalaryDTO(salary)
	return &dto, nil
}
