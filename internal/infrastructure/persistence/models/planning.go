package models

import (
	"github.com/expenze/backend/internal/domain/planning"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel maps planning.Category to the categories table
type CategoryModel struct {
	OwnedModel
	Name      string `gorm:"size:100;not null"`
	Icon      string `gorm:"size:64"`
	SortOrder int    `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"not null;default:true"`
}

func (CategoryModel) TableName() string { return "categories" }

func (m *CategoryModel) ToDomain() *planning.Category {
	return &planning.Category{
		OwnedEntity: m.OwnedModel.ToDomainOwned(),
		Name:        m.Name,
		Icon:        m.Icon,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
	}
}

func (m *CategoryModel) FromDomainCategory(c *planning.Category) {
	m.OwnedModel.FromDomainOwned(c.OwnedEntity)
	m.Name = c.Name
	m.Icon = c.Icon
	m.SortOrder = c.SortOrder
	m.IsActive = c.IsActive
}

// TemplateModel maps planning.Template to the payment_templates table
type TemplateModel struct {
	OwnedModel
	Name                 string          `gorm:"size:100;not null"`
	CategoryID           *uuid.UUID      `gorm:"type:uuid;index"`
	DefaultPlannedAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Notes                string          `gorm:"size:512"`
	StartMonth           string          `gorm:"size:7;not null;index"`
	EndMonth             *string         `gorm:"size:7;index"`
	Frequency            string          `gorm:"size:16;not null;default:monthly"`
	IsActive             bool            `gorm:"not null;default:true"`
}

func (TemplateModel) TableName() string { return "payment_templates" }

func (m *TemplateModel) ToDomain() *planning.Template {
	var end *planning.MonthKey
	if m.EndMonth != nil {
		k := planning.MonthKey(*m.EndMonth)
		end = &k
	}
	return &planning.Template{
		OwnedEntity:          m.OwnedModel.ToDomainOwned(),
		Name:                 m.Name,
		CategoryID:           m.CategoryID,
		DefaultPlannedAmount: m.DefaultPlannedAmount,
		Notes:                m.Notes,
		StartMonth:           planning.MonthKey(m.StartMonth),
		EndMonth:             end,
		Frequency:            planning.Frequency(m.Frequency),
		IsActive:             m.IsActive,
	}
}

func (m *TemplateModel) FromDomainTemplate(t *planning.Template) {
	m.OwnedModel.FromDomainOwned(t.OwnedEntity)
	m.Name = t.Name
	m.CategoryID = t.CategoryID
	m.DefaultPlannedAmount = t.DefaultPlannedAmount
	m.Notes = t.Notes
	m.StartMonth = t.StartMonth.String()
	if t.EndMonth != nil {
		end := t.EndMonth.String()
		m.EndMonth = &end
	} else {
		m.EndMonth = nil
	}
	m.Frequency = string(t.Frequency)
	m.IsActive = t.IsActive
}

// MonthPlanModel maps planning.MonthPlan to the month_plans table.
// The (user_id, month_key) pair is unique.
type MonthPlanModel struct {
	OwnedModel
	MonthKey string `gorm:"size:7;not null;uniqueIndex:idx_month_plans_user_month,priority:2"`
}

func (MonthPlanModel) TableName() string { return "month_plans" }

func (m *MonthPlanModel) ToDomain() *planning.MonthPlan {
	return &planning.MonthPlan{
		OwnedEntity: m.OwnedModel.ToDomainOwned(),
		MonthKey:    planning.MonthKey(m.MonthKey),
	}
}

func (m *MonthPlanModel) FromDomainPlan(p *planning.MonthPlan) {
	m.OwnedModel.FromDomainOwned(p.OwnedEntity)
	m.MonthKey = p.MonthKey.String()
}

// ItemModel maps planning.Item to the payment_items table. The
// (month_plan_id, name, category_id) triple is unique for generated
// rows only (template_id set), so repeated generation cannot insert
// duplicates while manual items may repeat freely.
type ItemModel struct {
	BaseModel
	MonthPlanID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_payment_items_identity,priority:1,where:template_id IS NOT NULL"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index;uniqueIndex:idx_payment_items_identity,priority:3"`
	TemplateID    *uuid.UUID      `gorm:"type:uuid;index"`
	Name          string          `gorm:"size:100;not null;uniqueIndex:idx_payment_items_identity,priority:2"`
	PlannedAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ActualAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	IsPaid        bool            `gorm:"not null;default:false"`
	Notes         string          `gorm:"size:512"`
}

func (ItemModel) TableName() string { return "payment_items" }

func (m *ItemModel) ToDomain() *planning.Item {
	return &planning.Item{
		BaseEntity:    m.BaseModel.ToDomain(),
		MonthPlanID:   m.MonthPlanID,
		CategoryID:    m.CategoryID,
		TemplateID:    m.TemplateID,
		Name:          m.Name,
		PlannedAmount: m.PlannedAmount,
		ActualAmount:  m.ActualAmount,
		IsPaid:        m.IsPaid,
		Notes:         m.Notes,
	}
}

func (m *ItemModel) FromDomainItem(i *planning.Item) {
	m.BaseModel.FromDomain(i.BaseEntity)
	m.MonthPlanID = i.MonthPlanID
	m.CategoryID = i.CategoryID
	m.TemplateID = i.TemplateID
	m.Name = i.Name
	m.PlannedAmount = i.PlannedAmount
	m.ActualAmount = i.ActualAmount
	m.IsPaid = i.IsPaid
	m.Notes = i.Notes
}

// SalaryModel maps planning.Salary to the salaries table. The
// (user_id, month_key) pair is unique; writes upsert on it.
type SalaryModel struct {
	OwnedModel
	MonthKey string          `gorm:"size:7;not null;uniqueIndex:idx_salaries_user_month,priority:2"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Notes    string          `gorm:"size:512"`
}

func (SalaryModel) TableName() string { return "salaries" }

func (m *SalaryModel) ToDomain() *planning.Salary {
	return &planning.Salary{
		OwnedEntity: m.OwnedModel.ToDomainOwned(),
		MonthKey:    planning.MonthKey(m.MonthKey),
		Amount:      m.Amount,
		Notes:       m.Notes,
	}
}

func (m *SalaryModel) FromDomainSalary(s *planning.Salary) {
	m.OwnedModel.FromDomainOwned(s.OwnedEntity)
	m.MonthKey = s.MonthKey.String()
	m.Amount = s.Amount
	m.Notes = s.Notes
}
