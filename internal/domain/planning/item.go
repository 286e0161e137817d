package planning

import (
	"strings"

	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a single payment line inside a month plan. TemplateID records
// which template instantiated it, if any; manual items leave it nil. The
// origin reference keeps generation idempotent even after the item or its
// template is renamed.
type Item struct {
	shared.BaseEntity
	MonthPlanID   uuid.UUID
	CategoryID    *uuid.UUID
	TemplateID    *uuid.UUID
	Name          string
	PlannedAmount decimal.Decimal
	ActualAmount  decimal.Decimal
	IsPaid        bool
	Notes         string
}

// NewItem creates a manually entered item. Amounts are not sign-checked:
// a negative actual records a refund.
func NewItem(planID uuid.UUID, categoryID *uuid.UUID, name string, planned, actual decimal.Decimal, notes string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Item{
		BaseEntity:    shared.NewBaseEntity(),
		MonthPlanID:   planID,
		CategoryID:    categoryID,
		Name:          name,
		PlannedAmount: planned,
		ActualAmount:  actual,
		Notes:         notes,
	}, nil
}

// InstantiateTemplate seeds an item from a template: planned amount from
// the template, nothing spent, unpaid.
func InstantiateTemplate(planID uuid.UUID, t *Template) *Item {
	templateID := t.ID
	return &Item{
		BaseEntity:    shared.NewBaseEntity(),
		MonthPlanID:   planID,
		CategoryID:    t.CategoryID,
		TemplateID:    &templateID,
		Name:          t.Name,
		PlannedAmount: t.DefaultPlannedAmount,
		ActualAmount:  decimal.Zero,
		Notes:         t.Notes,
	}
}

func (i *Item) Update(categoryID *uuid.UUID, name string, planned, actual decimal.Decimal, isPaid bool, notes string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i.CategoryID = categoryID
	i.Name = name
	i.PlannedAmount = planned
	i.ActualAmount = actual
	i.IsPaid = isPaid
	i.Notes = notes
	i.Touch()
	return nil
}

// MatchesTemplate reports whether the item already covers the template,
// either by origin reference or by the (name, category) pair.
func (i *Item) MatchesTemplate(t *Template) bool {
	if i.TemplateID != nil && *i.TemplateID == t.ID {
		return true
	}
	if i.Name != t.Name {
		return false
	}
	return uuidPtrEqual(i.CategoryID, t.CategoryID)
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
