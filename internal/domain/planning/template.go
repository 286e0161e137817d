package planning

import (
	"strings"

	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is an informational tag on a template. It does not affect
// which months a template instantiates into; the start/end window does.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyOnce      Frequency = "once"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyOnce:
		return true
	}
	return false
}

// Template is a recurring payment definition. Generation instantiates it
// into every plan whose month falls inside [StartMonth, EndMonth]; a nil
// EndMonth means open-ended.
type Template struct {
	shared.OwnedEntity
	Name                 string
	CategoryID           *uuid.UUID
	DefaultPlannedAmount decimal.Decimal
	Notes                string
	StartMonth           MonthKey
	EndMonth             *MonthKey
	Frequency            Frequency
	IsActive             bool
}

func NewTemplate(userID uuid.UUID, name string, categoryID *uuid.UUID, amount decimal.Decimal, notes string, start MonthKey, end *MonthKey, freq Frequency) (*Template, error) {
	t := &Template{
		OwnedEntity: shared.NewOwnedEntity(userID),
		IsActive:    true,
	}
	if err := t.apply(name, categoryID, amount, notes, start, end, freq, true); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) Update(name string, categoryID *uuid.UUID, amount decimal.Decimal, notes string, start MonthKey, end *MonthKey, freq Frequency, isActive bool) error {
	if err := t.apply(name, categoryID, amount, notes, start, end, freq, isActive); err != nil {
		return err
	}
	t.Touch()
	return nil
}

func (t *Template) apply(name string, categoryID *uuid.UUID, amount decimal.Decimal, notes string, start MonthKey, end *MonthKey, freq Frequency, isActive bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !start.Valid() {
		return ErrInvalidMonthKey
	}
	if end != nil {
		if !end.Valid() {
			return ErrInvalidMonthKey
		}
		if start.After(*end) {
			return ErrInvertedWindow
		}
	}
	if freq == "" {
		freq = FrequencyMonthly
	}
	if !freq.Valid() {
		return ErrInvalidFrequency
	}
	t.Name = name
	t.CategoryID = categoryID
	t.DefaultPlannedAmount = amount
	t.Notes = notes
	t.StartMonth = start
	t.EndMonth = end
	t.Frequency = freq
	t.IsActive = isActive
	return nil
}

// AppliesTo reports whether the template's window covers the month. Both
// boundaries are inclusive; comparison is plain string order.
func (t *Template) AppliesTo(key MonthKey) bool {
	if !t.IsActive {
		return false
	}
	if key.Before(t.StartMonth) {
		return false
	}
	if t.EndMonth != nil && key.After(*t.EndMonth) {
		return false
	}
	return true
}
