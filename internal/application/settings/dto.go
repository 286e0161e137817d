package settings

import (
	"time"

	"github.com/expenze/backend/internal/domain/settings"
)

// SettingDTO is the API representation of a system setting
type SettingDTO struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	IsPublic    bool      `json:"is_public"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpsertSettingInput is the write payload for a setting
type UpsertSettingInput struct {
	Key         string `json:"key" binding:"required,max=100"`
	Value       string `json:"value" binding:"max=1024"`
	Type        string `json:"type" binding:"omitempty,oneof=string number boolean"`
	Description string `json:"description" binding:"max=512"`
	Category    string `json:"category" binding:"max=64"`
	IsPublic    bool   `json:"is_public"`
}

func toSettingDTO(s *settings.Setting) SettingDTO {
	return SettingDTO{
		Key:         s.Key,
		Value:       s.Value,
		Type:        string(s.Type),
		Description: s.Description,
		Category:    s.Category,
		IsPublic:    s.IsPublic,
		UpdatedAt:   s.UpdatedAt,
	}
}
