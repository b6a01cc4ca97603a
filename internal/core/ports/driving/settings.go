package driving

import "github.com/custodia-labs/weld-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetMaxDepth updates the resolver depth limit.
	SetMaxDepth(depth int) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
