package planning

import (
	"context"
	"errors"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ItemService manages manual payment items. Generated items go through
// the same update and delete paths once they exist.
type ItemService struct {
	planRepo     planning.MonthPlanRepository
	itemRepo     planning.ItemRepository
	categoryRepo planning.CategoryRepository
	logger       *zap.Logger
}

func NewItemService(
	planRepo planning.MonthPlanRepository,
	itemRepo planning.ItemRepository,
	categoryRepo planning.CategoryRepository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		planRepo:     planRepo,
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create adds a manual item. The month's plan is created on the fly if
// the user never generated it.
func (s *ItemService) Create(ctx context.Context, userID uuid.UUID, input CreateItemInput) (*ItemDTO, error) {
	key, err := planning.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, err
	}
	categoryID, err := s.resolveCategory(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetOrCreate(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	item, err := planning.NewItem(plan.ID, categoryID, input.Name,
		input.PlannedAmount, input.ActualAmount, input.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Item created",
		zap.String("user_id", userID.String()),
		zap.String("item_id", item.ID.String()),
		zap.String("month_key", key.String()))
	dto := toItemDTO(item, "")
	return &dto, nil
}

func (s *ItemService) Update(ctx context.Context, userID, itemID uuid.UUID, input UpdateItemInput) (*ItemDTO, error) {
	item, err := s.itemRepo.FindOwned(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, planning.ErrItemNotFound
		}
		return nil, err
	}
	categoryID, err := s.resolveCategory(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := item.Update(categoryID, input.Name, input.PlannedAmount,
		input.ActualAmount, input.IsPaid, input.Notes); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	dto := toItemDTO(item, "")
	return &dto, nil
}

func (s *ItemService) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := s.itemRepo.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return planning.ErrItemNotFound
		}
		return err
	}
	s.logger.Info("Item deleted",
		zap.String("user_id", userID.String()),
		zap.String("item_id", itemID.String()))
	return nil
}

func (s *ItemService) resolveCategory(ctx context.Context, userID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, planning.ErrCategoryNotFound
	}
	if _, err := s.categoryRepo.FindOwned(ctx, id, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, planning.ErrCategoryNotOwned
		}
		return nil, err
	}
	return &id, nil
}
