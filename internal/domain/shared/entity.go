package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the common behavior shared by all domain entities.
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides the identity and timestamp fields every entity carries.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// Touch updates the modification timestamp.
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}

// OwnedEntity is a BaseEntity that belongs to a single user. All
// per-user resources (categories, templates, plans, items, salaries)
// embed it; repositories scope every query by the owner.
type OwnedEntity struct {
	BaseEntity
	UserID uuid.UUID
}

func NewOwnedEntity(userID uuid.UUID) OwnedEntity {
	return OwnedEntity{
		BaseEntity: NewBaseEntity(),
		UserID:     userID,
	}
}

// BelongsTo reports whether the entity is owned by the given user.
func (e *OwnedEntity) BelongsTo(userID uuid.UUID) bool {
	return e.UserID == userID
}
