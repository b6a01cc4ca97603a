package services

import (
	"fmt"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
	"github.com/custodia-labs/weld-cli/internal/core/ports/driven"
	"github.com/custodia-labs/weld-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMaxDepth    = "resolver.max_depth"
	keyOutputColor = "output.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Resolver: domain.ResolverSettings{
			MaxDepth: s.getMaxDepth(defaults.Resolver.MaxDepth),
		},
		Output: domain.OutputSettings{
			Color: s.getBool(keyOutputColor, defaults.Output.Color),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Resolver.IsValid() {
		return fmt.Errorf("%w: max depth must be positive", domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyMaxDepth, settings.Resolver.MaxDepth); err != nil {
		return fmt.Errorf("save max depth: %w", err)
	}
	if err := s.configStore.Set(keyOutputColor, settings.Output.Color); err != nil {
		return fmt.Errorf("save output color: %w", err)
	}

	return nil
}

// SetMaxDepth updates the resolver depth limit.
func (s *SettingsService) SetMaxDepth(depth int) error {
	if depth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", domain.ErrInvalidInput, depth)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Resolver.MaxDepth = depth
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getMaxDepth(defaultVal int) int {
	val := s.configStore.GetInt(keyMaxDepth)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
