package planning

import (
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Salary records one user's income for one month. One row per
// (user, month); writing again overwrites the amount.
type Salary struct {
	shared.OwnedEntity
	MonthKey MonthKey
	Amount   decimal.Decimal
	Notes    string
}

func NewSalary(userID uuid.UUID, key MonthKey, amount decimal.Decimal, notes string) (*Salary, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Salary{
		OwnedEntity: shared.NewOwnedEntity(userID),
		MonthKey:    key,
		Amount:      amount,
		Notes:       notes,
	}, nil
}

func (s *Salary) Update(amount decimal.Decimal, notes string) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	s.Amount = amount
	s.Notes = notes
	s.Touch()
	return nil
}
