package settings

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/expenze/backend/internal/domain/settings"
	"github.com/expenze/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Snapshot is a typed view of the settings the application itself reads.
// It is rebuilt from the store on demand and cached until a write.
type Snapshot struct {
	OTPTimeout    time.Duration
	EmailProvider string
	EmailFrom     string
	EmailHost     string
	EmailPort     int
	EmailUser     string
	EmailPassword string
}

// Service handles system settings. Reads of the snapshot are served from
// cache; every write invalidates it so the next read sees fresh values.
type Service struct {
	repo   settings.Repository
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewService creates a new settings service
func NewService(repo settings.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns all settings. Admin only, enforced at the HTTP layer.
func (s *Service) List(ctx context.Context) ([]SettingDTO, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]SettingDTO, len(all))
	for i, setting := range all {
		result[i] = toSettingDTO(setting)
	}
	return result, nil
}

// Get returns a single setting. Non-admin callers only see public keys;
// a private key reads as not found for them.
func (s *Service) Get(ctx context.Context, key string, isAdmin bool) (*SettingDTO, error) {
	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if !setting.IsPublic && !isAdmin {
		return nil, shared.ErrNotFound
	}
	dto := toSettingDTO(setting)
	return &dto, nil
}

// Upsert writes a setting and invalidates the snapshot.
func (s *Service) Upsert(ctx context.Context, input UpsertSettingInput) (*SettingDTO, error) {
	setting, err := s.repo.FindByKey(ctx, input.Key)
	switch {
	case err == nil:
		setting.UpdateValue(input.Value, settings.ValueType(input.Type), input.Description, input.Category, input.IsPublic)
	case err == shared.ErrNotFound:
		setting, err = settings.NewSetting(input.Key, input.Value, settings.ValueType(input.Type), input.Description, input.Category, input.IsPublic)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	s.Invalidate()

	s.logger.Info("Setting updated", zap.String("key", setting.Key))
	dto := toSettingDTO(setting)
	return &dto, nil
}

// Snapshot returns the cached typed view, rebuilding it if needed.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	s.mu.RLock()
	if s.snapshot != nil {
		snap := *s.snapshot
		s.mu.RUnlock()
		return snap
	}
	s.mu.RUnlock()

	snap := s.build(ctx)

	s.mu.Lock()
	s.snapshot = &snap
	s.mu.Unlock()
	return snap
}

// Invalidate drops the cached snapshot.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
}

// build reads all settings and folds the well-known keys into a
// Snapshot. Missing or unparseable values fall back to defaults.
func (s *Service) build(ctx context.Context) Snapshot {
	snap := Snapshot{OTPTimeout: settings.DefaultOTPTimeout}

	all, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("Failed to load settings, using defaults", zap.Error(err))
		return snap
	}

	for _, setting := range all {
		switch setting.Key {
		case settings.KeyOTPTimeout:
			if minutes := setting.IntValue(0); minutes > 0 {
				snap.OTPTimeout = time.Duration(minutes) * time.Minute
			}
		case settings.KeyEmailProvider:
			snap.EmailProvider = setting.Value
		case settings.KeyEmailFrom:
			snap.EmailFrom = setting.Value
		case settings.KeyEmailHost:
			snap.EmailHost = setting.Value
		case settings.KeyEmailPort:
			if port, err := strconv.Atoi(setting.Value); err == nil {
				snap.EmailPort = port
			}
		case settings.KeyEmailUser:
			snap.EmailUser = setting.Value
		case settings.KeyEmailPassword:
			snap.EmailPassword = setting.Value
		}
	}
	return snap
}
