package persistence

import (
	"context"
	"errors"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/expenze/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSalaryRepository implements planning.SalaryRepository using GORM
type GormSalaryRepository struct {
	db *gorm.DB
}

// NewGormSalaryRepository creates a new GormSalaryRepository
func NewGormSalaryRepository(db *gorm.DB) *GormSalaryRepository {
	return &GormSalaryRepository{db: db}
}

// Upsert writes the amount for (user, month), overwriting a previous row.
func (r *GormSalaryRepository) Upsert(ctx context.Context, s *planning.Salary) error {
	var model models.SalaryModel
	model.FromDomainSalary(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "notes", "updated_at"}),
		}).
		Create(&model).Error
}

func (r *GormSalaryRepository) FindByMonth(ctx context.Context, userID uuid.UUID, key planning.MonthKey) (*planning.Salary, error) {
	var model models.SalaryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND month_key = ?", userID, key.String()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var _ planning.SalaryRepository = (*GormSalaryRepository)(nil)
