package planning

import (
	"strings"

	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category groups payment items and templates for one user. Deleting a
// category leaves referencing rows in place with a cleared category.
type Category struct {
	shared.OwnedEntity
	Name      string
	Icon      string
	SortOrder int
	IsActive  bool
}

func NewCategory(userID uuid.UUID, name, icon string, sortOrder int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Category{
		OwnedEntity: shared.NewOwnedEntity(userID),
		Name:        name,
		Icon:        icon,
		SortOrder:   sortOrder,
		IsActive:    true,
	}, nil
}

func (c *Category) Update(name, icon string, sortOrder int, isActive bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.Icon = icon
	c.SortOrder = sortOrder
	c.IsActive = isActive
	c.Touch()
	return nil
}
