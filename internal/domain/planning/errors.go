package planning

import "github.com/expenze/backend/internal/domain/shared"

var (
	ErrInvalidMonthKey   = shared.NewDomainError("ERR_INVALID_MONTH_KEY", "month key must be in YYYY-MM format")
	ErrEmptyName         = shared.NewDomainError("ERR_EMPTY_NAME", "name cannot be empty")
	ErrNegativeAmount    = shared.NewDomainError("ERR_NEGATIVE_AMOUNT", "amount cannot be negative")
	ErrInvertedWindow    = shared.NewDomainError("ERR_INVERTED_WINDOW", "start month must not be after end month")
	ErrInvalidFrequency  = shared.NewDomainError("ERR_INVALID_FREQUENCY", "unknown frequency")
	ErrCategoryNotFound  = shared.NewDomainError("ERR_CATEGORY_NOT_FOUND", "category not found")
	ErrTemplateNotFound  = shared.NewDomainError("ERR_TEMPLATE_NOT_FOUND", "payment template not found")
	ErrItemNotFound      = shared.NewDomainError("ERR_ITEM_NOT_FOUND", "payment item not found")
	ErrDuplicateItem     = shared.NewDomainError("ERR_ALREADY_EXISTS", "an identical payment item already exists")
	ErrPlanNotFound      = shared.NewDomainError("ERR_PLAN_NOT_FOUND", "month plan not found")
	ErrCategoryNotOwned  = shared.NewDomainError("ERR_CATEGORY_NOT_OWNED", "category belongs to another user")
)
