package models

import (
	"github.com/expenze/backend/internal/domain/settings"
)

// SettingModel maps settings.Setting to the system_settings table
type SettingModel struct {
	BaseModel
	Key         string `gorm:"size:100;not null;uniqueIndex"`
	Value       string `gorm:"size:1024"`
	Type        string `gorm:"size:16;not null;default:string"`
	Description string `gorm:"size:512"`
	Category    string `gorm:"size:64"`
	IsPublic    bool   `gorm:"not null;default:false"`
}

func (SettingModel) TableName() string { return "system_settings" }

func (m *SettingModel) ToDomain() *settings.Setting {
	return &settings.Setting{
		BaseEntity:  m.BaseModel.ToDomain(),
		Key:         m.Key,
		Value:       m.Value,
		Type:        settings.ValueType(m.Type),
		Description: m.Description,
		Category:    m.Category,
		IsPublic:    m.IsPublic,
	}
}

func (m *SettingModel) FromDomainSetting(s *settings.Setting) {
	m.BaseModel.FromDomain(s.BaseEntity)
	m.Key = s.Key
	m.Value = s.Value
	m.Type = string(s.Type)
	m.Description = s.Description
	m.Category = s.Category
	m.IsPublic = s.IsPublic
}
