package planning

import (
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MonthPlan is the container for one user's items in one month. At most
// one plan exists per (user, month); the repository enforces this with a
// unique index and insert-on-conflict semantics.
type MonthPlan struct {
	shared.OwnedEntity
	MonthKey MonthKey
}

func NewMonthPlan(userID uuid.UUID, key MonthKey) *MonthPlan {
	return &MonthPlan{
		OwnedEntity: shared.NewOwnedEntity(userID),
		MonthKey:    key,
	}
}
