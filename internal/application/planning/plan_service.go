package planning

import (
	"context"

	"github.com/expenze/backend/internal/domain/planning"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlanService owns month-plan generation. Generate is idempotent: it
// only ever inserts, never updates or deletes, so user edits to
// generated items survive any number of re-runs.
type PlanService struct {
	planRepo     planning.MonthPlanRepository
	templateRepo planning.TemplateRepository
	itemRepo     planning.ItemRepository
	logger       *zap.Logger
}

func NewPlanService(
	planRepo planning.MonthPlanRepository,
	templateRepo planning.TemplateRepository,
	itemRepo planning.ItemRepository,
	logger *zap.Logger,
) *PlanService {
	return &PlanService{
		planRepo:     planRepo,
		templateRepo: templateRepo,
		itemRepo:     itemRepo,
		logger:       logger,
	}
}

// Generate ensures the month's plan exists and instantiates every
// applicable template that is not already represented by an item. An
// item counts as representing a template when it carries the template's
// ID, so renamed items are not re-created, or when it matches the
// template's name and category pair.
func (s *PlanService) Generate(ctx context.Context, userID uuid.UUID, input GenerateInput) (*GenerateResult, error) {
	key, err := planning.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetOrCreate(ctx, userID, key)
	if err != nil {
		return nil, err
	}

	templates, err := s.templateRepo.FindApplicable(ctx, userID, key)
	if err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.ListByPlan(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	created := 0
	for _, template := range templates {
		if covered(existing, template) {
			continue
		}
		item := planning.InstantiateTemplate(plan.ID, template)
		// The unique index on (plan, name, category) makes concurrent
		// generations race safely: one wins, the rest insert nothing.
		inserted, err := s.itemRepo.SaveIfAbsent(ctx, item)
		if err != nil {
			return nil, err
		}
		if inserted {
			created++
		}
	}

	s.logger.Info("Month plan generated",
		zap.String("user_id", userID.String()),
		zap.String("month_key", key.String()),
		zap.Int("templates", len(templates)),
		zap.Int("created", created))

	return &GenerateResult{
		PlanID:       plan.ID.String(),
		MonthKey:     key.String(),
		CreatedCount: created,
	}, nil
}

func covered(items []*planning.Item, t *planning.Template) bool {
	for _, item := range items {
		if item.MatchesTemplate(t) {
			return true
		}
	}
	return false
}
