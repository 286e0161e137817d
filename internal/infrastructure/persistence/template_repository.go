package persistence

import (
	"context"
	"errors"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/expenze/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTemplateRepository implements planning.TemplateRepository using GORM
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GormTemplateRepository
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

func (r *GormTemplateRepository) Save(ctx context.Context, t *planning.Template) error {
	var model models.TemplateModel
	model.FromDomainTemplate(t)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *GormTemplateRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*planning.Template, error) {
	var model models.TemplateModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormTemplateRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*planning.Template, error) {
	var rows []models.TemplateModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_month ASC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainTemplates(rows), nil
}

// FindApplicable returns active templates whose window covers the month.
// Month keys are zero-padded, so string comparison is chronological.
func (r *GormTemplateRepository) FindApplicable(ctx context.Context, userID uuid.UUID, key planning.MonthKey) ([]*planning.Template, error) {
	var rows []models.TemplateModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND start_month <= ? AND (end_month IS NULL OR end_month >= ?)",
			userID, true, key.String(), key.String()).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainTemplates(rows), nil
}

func (r *GormTemplateRepository) Update(ctx context.Context, t *planning.Template) error {
	var model models.TemplateModel
	model.FromDomainTemplate(t)
	result := r.db.WithContext(ctx).Model(&models.TemplateModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Select("name", "category_id", "default_planned_amount", "notes",
			"start_month", "end_month", "frequency", "is_active", "updated_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormTemplateRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.TemplateModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainTemplates(rows []models.TemplateModel) []*planning.Template {
	templates := make([]*planning.Template, len(rows))
	for i := range rows {
		templates[i] = rows[i].ToDomain()
	}
	return templates
}

var _ planning.TemplateRepository = (*GormTemplateRepository)(nil)
