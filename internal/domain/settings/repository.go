package settings

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Setting, error)
	FindByKey(ctx context.Context, key string) (*Setting, error)
	// Upsert writes the setting, replacing any row with the same key.
	Upsert(ctx context.Context, s *Setting) error
}
