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

// GormMonthPlanRepository implements planning.MonthPlanRepository using GORM
type GormMonthPlanRepository struct {
	db *gorm.DB
}

// NewGormMonthPlanRepository creates a new GormMonthPlanRepository
func NewGormMonthPlanRepository(db *gorm.DB) *GormMonthPlanRepository {
	return &GormMonthPlanRepository{db: db}
}

// GetOrCreate inserts the plan with conflict-do-nothing on the
// (user_id, month_key) unique index, then reads back the winning row.
// Concurrent callers converge on the same plan without a race.
func (r *GormMonthPlanRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, key planning.MonthKey) (*planning.MonthPlan, error) {
	var model models.MonthPlanModel
	model.FromDomainPlan(planning.NewMonthPlan(userID, key))

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month_key"}},
			DoNothing: true,
		}).
		Create(&model).Error; err != nil {
		return nil, err
	}

	return r.FindByKey(ctx, userID, key)
}

func (r *GormMonthPlanRepository) FindByKey(ctx context.Context, userID uuid.UUID, key planning.MonthKey) (*planning.MonthPlan, error) {
	var model models.MonthPlanModel
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

var _ planning.MonthPlanRepository = (*GormMonthPlanRepository)(nil)

// GormItemRepository implements planning.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Save(ctx context.Context, item *planning.Item) error {
	var model models.ItemModel
	model.FromDomainItem(item)
	return translateDuplicate(r.db.WithContext(ctx).Create(&model).Error)
}

// SaveIfAbsent inserts with conflict-do-nothing on the partial
// (month_plan_id, name, category_id) unique index over generated rows
// and reports whether a row was written.
func (r *GormItemRepository) SaveIfAbsent(ctx context.Context, item *planning.Item) (bool, error) {
	var model models.ItemModel
	model.FromDomainItem(item)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "month_plan_id"}, {Name: "name"}, {Name: "category_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "template_id IS NOT NULL"}}},
			DoNothing:   true,
		}).
		Create(&model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// translateDuplicate maps unique-index violations to the conflict
// domain error so colliding writes answer 409 instead of 500.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return planning.ErrDuplicateItem
	}
	return err
}

func (r *GormItemRepository) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*planning.Item, error) {
	var rows []models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("month_plan_id = ?", planID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]*planning.Item, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return items, nil
}

// FindOwned resolves the item through its plan's owner so users cannot
// touch items in another user's plan.
func (r *GormItemRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*planning.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN month_plans ON month_plans.id = payment_items.month_plan_id").
		Where("payment_items.id = ? AND month_plans.user_id = ?", id, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormItemRepository) Update(ctx context.Context, item *planning.Item) error {
	var model models.ItemModel
	model.FromDomainItem(item)
	result := r.db.WithContext(ctx).Model(&models.ItemModel{}).
		Where("id = ?", model.ID).
		Select("category_id", "name", "planned_amount", "actual_amount", "is_paid", "notes", "updated_at").
		Updates(&model)
	if result.Error != nil {
		return translateDuplicate(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormItemRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND month_plan_id IN (?)",
			id,
			r.db.Model(&models.MonthPlanModel{}).Select("id").Where("user_id = ?", userID),
		).
		Delete(&models.ItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ planning.ItemRepository = (*GormItemRepository)(nil)
