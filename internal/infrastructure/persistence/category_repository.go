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

// GormCategoryRepository implements planning.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Save(ctx context.Context, c *planning.Category) error {
	var model models.CategoryModel
	model.FromDomainCategory(c)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *GormCategoryRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*planning.Category, error) {
	var model models.CategoryModel
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

func (r *GormCategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*planning.Category, error) {
	var rows []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	categories := make([]*planning.Category, len(rows))
	for i := range rows {
		categories[i] = rows[i].ToDomain()
	}
	return categories, nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, c *planning.Category) error {
	var model models.CategoryModel
	model.FromDomainCategory(c)
	result := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Select("name", "icon", "sort_order", "is_active", "updated_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the category and clears references from items and
// templates, all in one transaction.
func (r *GormCategoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.CategoryModel{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if err := tx.Model(&models.TemplateModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Model(&models.ItemModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error
	})
}

var _ planning.CategoryRepository = (*GormCategoryRepository)(nil)
