package persistence

import (
	"context"
	"errors"

	"github.com/expenze/backend/internal/domain/settings"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/expenze/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements settings.Repository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

func (r *GormSettingRepository) List(ctx context.Context) ([]*settings.Setting, error) {
	var rows []models.SettingModel
	if err := r.db.WithContext(ctx).
		Order("category ASC, key ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*settings.Setting, len(rows))
	for i := range rows {
		result[i] = rows[i].ToDomain()
	}
	return result, nil
}

func (r *GormSettingRepository) FindByKey(ctx context.Context, key string) (*settings.Setting, error) {
	var model models.SettingModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormSettingRepository) Upsert(ctx context.Context, s *settings.Setting) error {
	var model models.SettingModel
	model.FromDomainSetting(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "type", "description", "category", "is_public", "updated_at"}),
		}).
		Create(&model).Error
}

var _ settings.Repository = (*GormSettingRepository)(nil)
