package shared

import "context"

// Repository is the generic persistence contract entity repositories build on.
type Repository[T Entity] interface {
	Save(ctx context.Context, entity T) error
	FindByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
}

// Filter narrows list queries. Zero values mean "no constraint".
type Filter struct {
	Limit  int
	Offset int
	Search string
}

func NewFilter() Filter {
	return Filter{Limit: 50}
}

func (f Filter) WithLimit(limit int) Filter {
	f.Limit = limit
	return f
}

func (f Filter) WithOffset(offset int) Filter {
	f.Offset = offset
	return f
}

func (f Filter) WithSearch(search string) Filter {
	f.Search = search
	return f
}
