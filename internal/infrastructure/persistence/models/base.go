package models

import (
	"time"

	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomain(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// OwnedModel extends BaseModel with the owning user. Maps to the
// domain's OwnedEntity.
type OwnedModel struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// ToDomainOwned converts OwnedModel to domain OwnedEntity
func (m *OwnedModel) ToDomainOwned() shared.OwnedEntity {
	return shared.OwnedEntity{
		BaseEntity: m.ToDomain(),
		UserID:     m.UserID,
	}
}

// FromDomainOwned populates OwnedModel from domain OwnedEntity
func (m *OwnedModel) FromDomainOwned(e shared.OwnedEntity) {
	m.FromDomain(e.BaseEntity)
	m.UserID = e.UserID
}
