package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/expenze/backend/internal/domain/identity"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/expenze/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVerificationRepository implements identity.VerificationRepository
// using GORM. Pending registrations are keyed by email.
type GormVerificationRepository struct {
	db *gorm.DB
}

func NewGormVerificationRepository(db *gorm.DB) *GormVerificationRepository {
	return &GormVerificationRepository{db: db}
}

// Save inserts the pending registration, replacing any previous record
// for the same email.
func (r *GormVerificationRepository) Save(ctx context.Context, v *identity.Verification) error {
	var model models.VerificationModel
	model.FromDomainVerification(v)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			UpdateAll: true,
		}).
		Create(&model).Error
}

func (r *GormVerificationRepository) FindByEmail(ctx context.Context, email string) (*identity.Verification, error) {
	var model models.VerificationModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormVerificationRepository) Update(ctx context.Context, v *identity.Verification) error {
	var model models.VerificationModel
	model.FromDomainVerification(v)
	result := r.db.WithContext(ctx).Model(&models.VerificationModel{}).
		Where("id = ?", model.ID).
		Select("otp_code", "expires_at", "delivery_status", "delivery_error", "updated_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormVerificationRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Delete(&models.VerificationModel{}, "email = ?", strings.ToLower(email)).Error
}

var _ identity.VerificationRepository = (*GormVerificationRepository)(nil)

// GormEmailChangeRepository implements identity.EmailChangeRepository
// using GORM. At most one pending request per user.
type GormEmailChangeRepository struct {
	db *gorm.DB
}

func NewGormEmailChangeRepository(db *gorm.DB) *GormEmailChangeRepository {
	return &GormEmailChangeRepository{db: db}
}

func (r *GormEmailChangeRepository) Save(ctx context.Context, req *identity.EmailChangeRequest) error {
	var model models.EmailChangeModel
	model.FromDomainRequest(req)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&model).Error
}

func (r *GormEmailChangeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.EmailChangeRequest, error) {
	var model models.EmailChangeModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormEmailChangeRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.EmailChangeModel{}, "user_id = ?", userID).Error
}

var _ identity.EmailChangeRepository = (*GormEmailChangeRepository)(nil)
