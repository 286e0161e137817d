package planning

import (
	"context"
	"errors"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TemplateService manages recurring payment templates.
type TemplateService struct {
	templateRepo planning.TemplateRepository
	categoryRepo planning.CategoryRepository
	logger       *zap.Logger
}

func NewTemplateService(templateRepo planning.TemplateRepository, categoryRepo planning.CategoryRepository, logger *zap.Logger) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *TemplateService) Create(ctx context.Context, userID uuid.UUID, input TemplateInput) (*TemplateDTO, error) {
	start, end, err := parseWindow(input.StartMonth, input.EndMonth)
	if err != nil {
		return nil, err
	}
	categoryID, err := s.resolveCategory(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	template, err := planning.NewTemplate(userID, input.Name, categoryID,
		input.DefaultPlannedAmount, input.Notes, start, end, planning.Frequency(input.Frequency))
	if err != nil {
		return nil, err
	}
	if err := s.templateRepo.Save(ctx, template); err != nil {
		return nil, err
	}
	s.logger.Info("Template created",
		zap.String("user_id", userID.String()),
		zap.String("template_id", template.ID.String()))
	dto := toTemplateDTO(template)
	return &dto, nil
}

func (s *TemplateService) List(ctx context.Context, userID uuid.UUID) ([]TemplateDTO, error) {
	templates, err := s.templateRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	dtos := make([]TemplateDTO, 0, len(templates))
	for _, t := range templates {
		dtos = append(dtos, toTemplateDTO(t))
	}
	return dtos, nil
}

func (s *TemplateService) Update(ctx context.Context, userID, templateID uuid.UUID, input TemplateInput) (*TemplateDTO, error) {
	template, err := s.templateRepo.FindOwned(ctx, templateID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, planning.ErrTemplateNotFound
		}
		return nil, err
	}

	start, end, err := parseWindow(input.StartMonth, input.EndMonth)
	if err != nil {
		return nil, err
	}
	categoryID, err := s.resolveCategory(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	isActive := template.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	if err := template.Update(input.Name, categoryID, input.DefaultPlannedAmount,
		input.Notes, start, end, planning.Frequency(input.Frequency), isActive); err != nil {
		return nil, err
	}
	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}
	dto := toTemplateDTO(template)
	return &dto, nil
}

func (s *TemplateService) Delete(ctx context.Context, userID, templateID uuid.UUID) error {
	if err := s.templateRepo.Delete(ctx, templateID, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return planning.ErrTemplateNotFound
		}
		return err
	}
	s.logger.Info("Template deleted",
		zap.String("user_id", userID.String()),
		zap.String("template_id", templateID.String()))
	return nil
}

// resolveCategory parses and ownership-checks an optional category
// reference. A template may carry no category at all.
func (s *TemplateService) resolveCategory(ctx context.Context, userID uuid.UUID, raw *string) (*uuid.UUID, error) {
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

func parseWindow(start string, end *string) (planning.MonthKey, *planning.MonthKey, error) {
	startKey, err := planning.ParseMonthKey(start)
	if err != nil {
		return "", nil, err
	}
	if end == nil || *end == "" {
		return startKey, nil, nil
	}
	endKey, err := planning.ParseMonthKey(*end)
	if err != nil {
		return "", nil, err
	}
	return startKey, &endKey, nil
}
