package planning

import (
	"context"
	"errors"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService manages a user's expense categories.
type CategoryService struct {
	categoryRepo planning.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo planning.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, input CreateCategoryInput) (*CategoryDTO, error) {
	category, err := planning.NewCategory(userID, input.Name, input.Icon, input.SortOrder)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Info("Category created",
		zap.String("user_id", userID.String()),
		zap.String("category_id", category.ID.String()))
	dto := toCategoryDTO(category)
	return &dto, nil
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]CategoryDTO, error) {
	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}
	return dtos, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, categoryID uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error) {
	category, err := s.categoryRepo.FindOwned(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, planning.ErrCategoryNotFound
		}
		return nil, err
	}
	if err := category.Update(input.Name, input.Icon, input.SortOrder, input.IsActive); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	dto := toCategoryDTO(category)
	return &dto, nil
}

// Delete removes the category. Items and templates that referenced it
// keep their rows with the category cleared.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, categoryID, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return planning.ErrCategoryNotFound
		}
		return err
	}
	s.logger.Info("Category deleted",
		zap.String("user_id", userID.String()),
		zap.String("category_id", categoryID.String()))
	return nil
}
