package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/expenze/backend/internal/domain/shared"
)

// ValueType tells clients how to interpret the stored string value.
type ValueType string

const (
	TypeString ValueType = "string"
	TypeNumber ValueType = "number"
	TypeBool   ValueType = "boolean"
)

// Well-known setting keys read by the application itself.
const (
	KeyOTPTimeout    = "otp_timeout"
	KeyEmailProvider = "email_provider"
	KeyEmailFrom     = "email_from"
	KeyEmailHost     = "email_host"
	KeyEmailPort     = "email_port"
	KeyEmailUser     = "email_user"
	KeyEmailPassword = "email_password"
)

// DefaultOTPTimeout applies when otp_timeout is unset or unparseable.
const DefaultOTPTimeout = 2 * time.Minute

// Setting is a system-wide key/value pair. IsPublic controls whether
// unauthenticated clients may read it.
type Setting struct {
	shared.BaseEntity
	Key         string
	Value       string
	Type        ValueType
	Description string
	Category    string
	IsPublic    bool
}

func NewSetting(key, value string, valueType ValueType, description, category string, isPublic bool) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}
	if valueType == "" {
		valueType = TypeString
	}
	return &Setting{
		BaseEntity:  shared.NewBaseEntity(),
		Key:         key,
		Value:       value,
		Type:        valueType,
		Description: description,
		Category:    category,
		IsPublic:    isPublic,
	}, nil
}

func (s *Setting) UpdateValue(value string, valueType ValueType, description, category string, isPublic bool) {
	s.Value = value
	if valueType != "" {
		s.Type = valueType
	}
	s.Description = description
	s.Category = category
	s.IsPublic = isPublic
	s.Touch()
}

// IntValue parses the value as an integer, falling back to def.
func (s *Setting) IntValue(def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s.Value))
	if err != nil {
		return def
	}
	return n
}

var ErrEmptyKey = shared.NewDomainError("ERR_EMPTY_SETTING_KEY", "setting key cannot be empty")
var ErrSettingNotFound = shared.NewDomainError("ERR_SETTING_NOT_FOUND", "setting not found")
